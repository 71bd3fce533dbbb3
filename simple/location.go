package simple

type LocationKind int
const (
    NoneLocationKind LocationKind = iota
    CityLocationKind
    MerchantLocationKind
)

var LocationKindNames = map[LocationKind]string{
    NoneLocationKind: "None",
    CityLocationKind: "City",
    MerchantLocationKind: "Merchant",
}

// Slot is one build space in a city. Types is the set of industries the
// printed space accepts; slot order within a city matters (see the
// first-fit derivation in the game package).
type Slot struct {
    Types []IndustryType
}

func (s Slot) Accepts(t IndustryType) bool {
    for _, a := range s.Types {
        if a == t {
            return true
        }
    }
    return false
}

// Location is a node on the board. Cities carry build slots; merchants
// carry no slots and a beer barrel instead. Beer is the only mutable field
// here (drained as the sell fallback, refilled at the era turnover).
type Location struct {
    Id string
    Name string
    Kind LocationKind
    Slots []Slot
    Beer int
}
