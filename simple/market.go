package simple

type MarketLevel struct {
    Price int
    Cubes int
    MaxCubes int
}

// Market is a price ladder. Levels runs cheap to dear; Fallback is the
// price of the bottomless supply behind the ladder (purchase only, selling
// has no equivalent).
type Market struct {
    Kind ResourceKind
    Levels []MarketLevel
    Fallback int
}

// The coal ladder opens with one gap at the top; the iron ladder with two.
func NewCoalMarket() Market {
    m := Market{Kind: CoalResource, Fallback: 8}
    for p := 1; p <= 7; p++ {
        m.Levels = append(m.Levels, MarketLevel{Price: p, Cubes: 2, MaxCubes: 2})
    }
    m.Levels[6].Cubes = 1
    return m
}

func NewIronMarket() Market {
    m := Market{Kind: IronResource, Fallback: 6}
    for p := 1; p <= 5; p++ {
        m.Levels = append(m.Levels, MarketLevel{Price: p, Cubes: 2, MaxCubes: 2})
    }
    m.Levels[4].Cubes = 0
    return m
}

func (m Market) Cubes() int {
    r := 0
    for _, l := range m.Levels {
        r += l.Cubes
    }
    return r
}

// Buy drains the cheapest occupied level one cube at a time; once the
// ladder is dry the rest comes from the fallback supply. Returns the total
// price. Never fails.
func (m *Market) Buy(n int) int {
    cost := 0
    for ; n > 0; n-- {
        bought := false
        for i := range m.Levels {
            if m.Levels[i].Cubes > 0 {
                m.Levels[i].Cubes--
                cost += m.Levels[i].Price
                bought = true
                break
            }
        }
        if !bought {
            cost += m.Fallback
        }
    }
    return cost
}

// Sell places cubes into the dearest level with space, walking down toward
// cheaper levels. Cubes that don't fit aren't sold; the caller leaves them
// on the producing tile. Returns cubes placed and the money earned.
func (m *Market) Sell(cubes int) (int, int) {
    sold := 0
    income := 0
    for i := len(m.Levels) - 1; i >= 0 && cubes > 0; i-- {
        for m.Levels[i].Cubes < m.Levels[i].MaxCubes && cubes > 0 {
            m.Levels[i].Cubes++
            cubes--
            sold++
            income += m.Levels[i].Price
        }
    }
    return sold, income
}
