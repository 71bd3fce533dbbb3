package simple

import (
    "fmt"
)

// The industry catalog. Counts are per player mat; level 1 tiles only go
// down in the canal era, and a few top tiles only exist once rails are
// running.
var baseTileSpecs = []TileSpec{
    {Type: CottonIndustryType, Level: 1, Cost: 12, Points: 5, Income: 5, BeerToSell: 1, Eras: []Era{CanalEra}, Count: 3},
    {Type: CottonIndustryType, Level: 2, Cost: 14, CostCoal: 1, Points: 5, Income: 4, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: CottonIndustryType, Level: 3, Cost: 16, CostCoal: 1, CostIron: 1, Points: 9, Income: 3, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 3},
    {Type: CottonIndustryType, Level: 4, Cost: 18, CostCoal: 1, CostIron: 1, Points: 12, Income: 2, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 3},

    {Type: CoalIndustryType, Level: 1, Cost: 5, Points: 1, Income: 4, Production: 2, Eras: []Era{CanalEra}, Count: 1},
    {Type: CoalIndustryType, Level: 2, Cost: 7, Points: 2, Income: 7, Production: 3, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: CoalIndustryType, Level: 3, Cost: 8, CostIron: 1, Points: 3, Income: 6, Production: 4, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: CoalIndustryType, Level: 4, Cost: 10, CostIron: 1, Points: 4, Income: 5, Production: 5, Eras: []Era{CanalEra, RailEra}, Count: 2},

    {Type: IronIndustryType, Level: 1, Cost: 5, CostCoal: 1, Points: 3, Income: 3, Production: 4, Eras: []Era{CanalEra}, Count: 1},
    {Type: IronIndustryType, Level: 2, Cost: 7, CostCoal: 1, Points: 5, Income: 3, Production: 4, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: IronIndustryType, Level: 3, Cost: 9, CostCoal: 1, Points: 7, Income: 2, Production: 5, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: IronIndustryType, Level: 4, Cost: 12, CostCoal: 1, Points: 9, Income: 1, Production: 6, Eras: []Era{CanalEra, RailEra}, Count: 1},

    {Type: ManufacturerIndustryType, Level: 1, Cost: 8, Points: 3, Income: 5, BeerToSell: 1, Eras: []Era{CanalEra}, Count: 1},
    {Type: ManufacturerIndustryType, Level: 2, Cost: 10, CostIron: 1, Points: 5, Income: 1, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: ManufacturerIndustryType, Level: 3, Cost: 12, CostCoal: 2, Points: 4, Income: 4, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: ManufacturerIndustryType, Level: 4, Cost: 8, CostIron: 1, Points: 3, Income: 6, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: ManufacturerIndustryType, Level: 5, Cost: 16, CostCoal: 1, Points: 8, Income: 2, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: ManufacturerIndustryType, Level: 6, Cost: 20, CostCoal: 1, Points: 7, Income: 6, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: ManufacturerIndustryType, Level: 7, Cost: 16, CostCoal: 1, CostIron: 1, Points: 9, Income: 4, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: ManufacturerIndustryType, Level: 8, Cost: 20, CostIron: 2, Points: 11, Income: 1, BeerToSell: 1, Eras: []Era{RailEra}, Count: 2},

    {Type: PotteryIndustryType, Level: 1, Cost: 17, CostIron: 1, Points: 10, Income: 5, BeerToSell: 1, Eras: []Era{CanalEra}, Count: 1},
    {Type: PotteryIndustryType, Level: 2, Cost: 11, CostCoal: 1, Points: 1, Income: 1, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: PotteryIndustryType, Level: 3, Cost: 22, CostCoal: 2, Points: 11, Income: 5, BeerToSell: 2, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: PotteryIndustryType, Level: 4, Cost: 12, CostCoal: 1, Points: 1, Income: 1, BeerToSell: 1, Eras: []Era{CanalEra, RailEra}, Count: 1},
    {Type: PotteryIndustryType, Level: 5, Cost: 23, CostCoal: 2, Points: 20, Income: 5, BeerToSell: 2, Eras: []Era{RailEra}, Count: 1},

    {Type: BreweryIndustryType, Level: 1, Cost: 5, CostIron: 1, Points: 4, Income: 4, Production: 1, Eras: []Era{CanalEra}, Count: 2},
    {Type: BreweryIndustryType, Level: 2, Cost: 7, CostIron: 1, Points: 5, Income: 5, Production: 2, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: BreweryIndustryType, Level: 3, Cost: 9, CostIron: 1, Points: 7, Income: 5, Production: 3, Eras: []Era{CanalEra, RailEra}, Count: 2},
    {Type: BreweryIndustryType, Level: 4, Cost: 9, CostIron: 1, Points: 10, Income: 5, Production: 4, Eras: []Era{RailEra}, Count: 1},
}

func GetTileSpec(t IndustryType, level int) TileSpec {
    for _, s := range baseTileSpecs {
        if s.Type == t && s.Level == level {
            return s
        }
    }
    panic(fmt.Sprintf("No tile spec for %s level %d", IndustryNames[t], level))
}

func MaxTileLevel(t IndustryType) int {
    max := 0
    for _, s := range baseTileSpecs {
        if s.Type == t && s.Level > max {
            max = s.Level
        }
    }
    return max
}

// NewBaseMat deals a fresh player mat: remaining tile counts per type and
// level. Index 0 of each Levels slice is level 1.
func NewBaseMat() []MatPile {
    r := []MatPile{}
    for _, t := range []IndustryType{CottonIndustryType, CoalIndustryType, IronIndustryType,
            ManufacturerIndustryType, PotteryIndustryType, BreweryIndustryType} {
        p := MatPile{Type: t, Levels: []int{}}
        for l := 1; l <= MaxTileLevel(t); l++ {
            p.Levels = append(p.Levels, GetTileSpec(t, l).Count)
        }
        r = append(r, p)
    }
    return r
}
