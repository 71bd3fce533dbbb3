package simple

type PlayerColor int
const (
    NonePlayerColor PlayerColor = iota
    TealPlayerColor
    OrangePlayerColor
    PurplePlayerColor
    RedPlayerColor
)

var PlayerColorNames = map[PlayerColor]string{
    NonePlayerColor: "None",
    TealPlayerColor: "Teal",
    OrangePlayerColor: "Orange",
    PurplePlayerColor: "Purple",
    RedPlayerColor: "Red",
}
