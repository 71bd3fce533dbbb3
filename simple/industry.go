package simple

type IndustryType int
const (
    NoneIndustryType IndustryType = iota
    CottonIndustryType
    CoalIndustryType
    IronIndustryType
    ManufacturerIndustryType
    PotteryIndustryType
    BreweryIndustryType
)

var IndustryNames = map[IndustryType]string{
    NoneIndustryType: "None",
    CottonIndustryType: "Cotton Mill",
    CoalIndustryType: "Coal Mine",
    IronIndustryType: "Iron Works",
    ManufacturerIndustryType: "Manufacturer",
    PotteryIndustryType: "Pottery",
    BreweryIndustryType: "Brewery",
}

// Sellable industries flip through the Sell action; the others flip when
// their cubes run out.
func (t IndustryType) Sellable() bool {
    return t == CottonIndustryType || t == ManufacturerIndustryType || t == PotteryIndustryType
}

func (t IndustryType) Produces() ResourceKind {
    switch t {
        case CoalIndustryType:
            return CoalResource
        case IronIndustryType:
            return IronResource
        case BreweryIndustryType:
            return BeerResource
    }
    return NoneResource
}

type ResourceKind int
const (
    NoneResource ResourceKind = iota
    CoalResource
    IronResource
    BeerResource
)

var ResourceNames = map[ResourceKind]string{
    NoneResource: "None",
    CoalResource: "Coal",
    IronResource: "Iron",
    BeerResource: "Beer",
}

// TileSpec is one row of the industry catalog: what it costs to put the
// (type, level) tile on the board, what it produces or needs to sell, and
// what it pays out when it flips.
type TileSpec struct {
    Type IndustryType
    Level int
    Cost int
    CostCoal int
    CostIron int
    Production int
    BeerToSell int
    Points int
    Income int
    Eras []Era
    Count int
}

func (s TileSpec) BuildableIn(era Era) bool {
    for _, e := range s.Eras {
        if e == era {
            return true
        }
    }
    return false
}

// Industry is a tile on the board. Resources is the cube count still
// sitting on it (coal, iron, or beer depending on type). Seq orders tiles
// by construction across all players; the slot derivation depends on it.
type Industry struct {
    Location string
    Type IndustryType
    Level int
    Flipped bool
    Resources int
    Seq int
}

func (i Industry) Spec() TileSpec {
    return GetTileSpec(i.Type, i.Level)
}
