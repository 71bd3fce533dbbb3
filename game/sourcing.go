package game

import (
    "local/brass/simple"
)

// consumeCoal takes n coal for something happening at a location: nearest
// connected unflipped mine first, cube by cube, the market for whatever
// is left.  Returns the market bill.  This mutates as it goes; callers
// running an affordability check afterward throw the clone away on
// failure.
func consumeCoal(s *simple.GameState, from string, n int) int {
    cost := 0
    for ; n > 0; n-- {
        pi, ii, ok := nearestCoal(s, from)
        if !ok {
            cost += s.CoalMarket.Buy(1)
            continue
        }
        takeCube(s, pi, ii)
    }
    return cost
}

// nearestCoal is the closest unflipped coal mine with cubes connected to
// from this era.  Distance ties go to seat order, then the order the
// owner built in.
func nearestCoal(s *simple.GameState, from string) (int, int, bool) {
    best := Unreachable
    bpi, bii := 0, 0
    for pi := range s.Players {
        for ii, ind := range s.Players[pi].Industries {
            if ind.Type != simple.CoalIndustryType || ind.Flipped || ind.Resources == 0 {
                continue
            }
            d := Distance(s, from, ind.Location, s.Era)
            if d == Unreachable {
                continue
            }
            if best == Unreachable || d < best {
                best, bpi, bii = d, pi, ii
            }
        }
    }
    return bpi, bii, best != Unreachable
}

// consumeIron takes n iron: any unflipped works with cubes anywhere on
// the board, no connectivity asked, then the market.  Returns the market
// bill.
func consumeIron(s *simple.GameState, n int) int {
    cost := 0
    for ; n > 0; n-- {
        if pi, ii, ok := anyIron(s); ok {
            takeCube(s, pi, ii)
            continue
        }
        cost += s.IronMarket.Buy(1)
    }
    return cost
}

func anyIron(s *simple.GameState) (int, int, bool) {
    for pi := range s.Players {
        for ii, ind := range s.Players[pi].Industries {
            if ind.Type == simple.IronIndustryType && !ind.Flipped && ind.Resources > 0 {
                return pi, ii, true
            }
        }
    }
    return 0, 0, false
}

// consumeBeer drains n beer for the current player selling at from: their
// own breweries wherever they stand, then opponent breweries connected to
// the sale, then the merchants' barrels.  All three dry means the sale
// fails.
func consumeBeer(s *simple.GameState, from string, n int) *Error {
    for ; n > 0; n-- {
        if ii, ok := ownBeer(s); ok {
            takeCube(s, s.CurrentPlayer, ii)
            continue
        }
        if pi, ii, ok := opponentBeer(s, from); ok {
            takeCube(s, pi, ii)
            continue
        }
        if id, ok := merchantBeer(s); ok {
            loc, _ := s.Board.GetLocation(id)
            s.Board.SetBeer(id, loc.Beer-1)
            s.AppendLog(simple.InfoLogKind, "%s drank the merchant beer at %s",
                s.Current().Identity.Name, loc.Name)
            continue
        }
        return newError(ResourceExhaustedError, "no beer anywhere for this sale")
    }
    return nil
}

func ownBeer(s *simple.GameState) (int, bool) {
    for ii, ind := range s.Current().Industries {
        if ind.Type == simple.BreweryIndustryType && !ind.Flipped && ind.Resources > 0 {
            return ii, true
        }
    }
    return 0, false
}

func opponentBeer(s *simple.GameState, from string) (int, int, bool) {
    for pi := range s.Players {
        if pi == s.CurrentPlayer {
            continue
        }
        for ii, ind := range s.Players[pi].Industries {
            if ind.Type != simple.BreweryIndustryType || ind.Flipped || ind.Resources == 0 {
                continue
            }
            if Distance(s, from, ind.Location, s.Era) == Unreachable {
                continue
            }
            return pi, ii, true
        }
    }
    return 0, 0, false
}

func merchantBeer(s *simple.GameState) (string, bool) {
    for _, m := range s.Board.Merchants() {
        if m.Beer > 0 {
            return m.Id, true
        }
    }
    return "", false
}

// takeCube spends one cube off a tile, flipping it when the last one
// goes.
func takeCube(s *simple.GameState, pi int, ii int) {
    ind := &s.Players[pi].Industries[ii]
    ind.Resources--
    if ind.Resources <= 0 {
        flipIndustry(s, pi, ii)
    }
}

// flipIndustry turns a tile face down and pays the owner the income bump
// printed on it.  Points wait for era scoring.
func flipIndustry(s *simple.GameState, pi int, ii int) {
    ind := &s.Players[pi].Industries[ii]
    ind.Flipped = true
    raiseIncome(s, pi, ind.Spec().Income)
    s.AppendLog(simple.InfoLogKind, "%s's %s in %s flipped (+%d income)",
        s.Players[pi].Identity.Name, simple.IndustryNames[ind.Type],
        locationName(s, ind.Location), ind.Spec().Income)
}

func raiseIncome(s *simple.GameState, pi int, n int) {
    p := &s.Players[pi]
    p.Income += n
    if p.Income > simple.MaxIncome {
        p.Income = simple.MaxIncome
    }
    if p.Income < simple.MinIncome {
        p.Income = simple.MinIncome
    }
}

// sellToMarket is the automatic sale the moment a coal mine or iron works
// goes down.  Coal has to physically move, so it wants a merchant on the
// network; iron sells from anywhere.
func sellToMarket(s *simple.GameState, pi int, ii int) {
    ind := &s.Players[pi].Industries[ii]
    var market *simple.Market
    switch ind.Type {
        case simple.CoalIndustryType:
            if !connectedToMerchant(s, ind.Location, s.Era) {
                return
            }
            market = &s.CoalMarket
        case simple.IronIndustryType:
            market = &s.IronMarket
        default:
            return
    }

    sold, income := market.Sell(ind.Resources)
    if sold == 0 {
        return
    }
    ind.Resources -= sold
    s.Players[pi].Money += income
    s.AppendLog(simple.InfoLogKind, "%s sold %d %s to the market for £%d",
        s.Players[pi].Identity.Name, sold, simple.ResourceNames[ind.Type.Produces()], income)
    if ind.Resources <= 0 {
        flipIndustry(s, pi, ii)
    }
}

func locationName(s *simple.GameState, id string) string {
    if loc, ok := s.Board.GetLocation(id); ok {
        return loc.Name
    }
    return id
}
