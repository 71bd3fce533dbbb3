package simple

type Era int
const (
    NoneEra Era = iota
    CanalEra
    RailEra
)

var EraNames = map[Era]string{
    NoneEra: "None",
    CanalEra: "Canal",
    RailEra: "Rail",
}
