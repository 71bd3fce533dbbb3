package game

import (
    "fmt"
    "local/brass/simple"
)

// resolveBuild places one industry tile, or replaces one when no free
// slot takes it.  It works over the clone confirm handed it, so an error
// at any point just abandons the clone, half-spent markets and all.
func resolveBuild(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }
    if s.Turn.Location == "" {
        return newError(SelectionMissingError, "select a location to build in")
    }
    if s.Turn.Industry == simple.NoneIndustryType {
        return newError(SelectionMissingError, "select an industry to build")
    }
    t := s.Turn.Industry
    locId := s.Turn.Location

    if card.Type == simple.LocationCardType && card.Location != locId {
        return newError(CardTypeMismatchError, "%s only builds in %s",
            card.Id, locationName(s, card.Location))
    }
    if card.Type == simple.IndustryCardType && !card.AllowsIndustry(t) {
        return newError(CardTypeMismatchError, "%s doesn't build a %s",
            card.Id, simple.IndustryNames[t])
    }

    p := s.Current()
    industryCard := card.Type == simple.IndustryCardType || card.Type == simple.WildIndustryCardType
    if industryCard && p.HasPresence() && !p.InNetwork(locId) {
        return newError(NetworkViolationError, "%s is not in your network",
            locationName(s, locId))
    }

    level := p.LowestMatLevel(t)
    if level == 0 {
        return newError(SlotUnavailableError, "no %s tiles left on your mat",
            simple.IndustryNames[t])
    }
    spec := simple.GetTileSpec(t, level)
    if !spec.BuildableIn(s.Era) {
        return newError(SlotUnavailableError, "a Level %d %s can't go down in the %s Era",
            level, simple.IndustryNames[t], simple.EraNames[s.Era])
    }

    // A free slot always wins; overbuilding is only for full locations.
    overbuild := false
    tpi, tii := 0, 0
    if !CanPlace(s, locId, t) {
        var ok bool
        tpi, tii, ok = findOverbuildTarget(s, locId, t)
        if !ok {
            return newError(SlotUnavailableError, "no slot for a %s in %s",
                simple.IndustryNames[t], locationName(s, locId))
        }
        target := s.Players[tpi].Industries[tii]
        if level <= target.Level {
            return newError(OverbuildDeniedError,
                "only a higher level can replace the Level %d %s there",
                target.Level, simple.IndustryNames[t])
        }
        if tpi != s.CurrentPlayer {
            if err := opponentOverbuildGate(s, t); err != nil {
                return err
            }
        }
        overbuild = true
    }

    replaced := ""
    if overbuild {
        target := s.Players[tpi].Industries[tii]
        replaced = fmt.Sprintf(", replacing %s's Level %d",
            s.Players[tpi].Identity.Name, target.Level)
        removeIndustry(s, tpi, tii)
    }

    bill := spec.Cost
    bill += consumeCoal(s, locId, spec.CostCoal)
    bill += consumeIron(s, spec.CostIron)
    if bill > p.Money {
        return newError(InsufficientFundsError, "that build costs £%d and you have £%d",
            bill, p.Money)
    }

    p.Money -= bill
    p.Spent += bill
    p.TakeMatTile(t, level)
    discardCard(s, card.Id)
    p.Industries = append(p.Industries, simple.Industry{
        Location: locId,
        Type: t,
        Level: level,
        Resources: spec.Production,
        Seq: s.NextSeq,
    })
    s.NextSeq++

    s.AppendLog(simple.ActionLogKind, "%s built a Level %d %s in %s for £%d%s",
        p.Identity.Name, level, simple.IndustryNames[t], locationName(s, locId),
        bill, replaced)
    sellToMarket(s, s.CurrentPlayer, len(p.Industries)-1)
    return nil
}

// findOverbuildTarget picks which standing tile a same-type build would
// replace: lowest level first, oldest first on a tie.
func findOverbuildTarget(s *simple.GameState, id string, t simple.IndustryType) (int, int, bool) {
    found := false
    bpi, bii := 0, 0
    for pi := range s.Players {
        for ii, ind := range s.Players[pi].Industries {
            if ind.Location != id || ind.Type != t {
                continue
            }
            if !found {
                found, bpi, bii = true, pi, ii
                continue
            }
            best := s.Players[bpi].Industries[bii]
            if ind.Level < best.Level || ind.Level == best.Level && ind.Seq < best.Seq {
                bpi, bii = pi, ii
            }
        }
    }
    return bpi, bii, found
}

// opponentOverbuildGate holds the line on replacing another player's
// tile: coal or iron only, and only with every cube of that resource
// gone from both the board and the market.
func opponentOverbuildGate(s *simple.GameState, t simple.IndustryType) *Error {
    kind := t.Produces()
    var market *simple.Market
    switch kind {
        case simple.CoalResource:
            market = &s.CoalMarket
        case simple.IronResource:
            market = &s.IronMarket
        default:
            return newError(OverbuildDeniedError,
                "only coal and iron can replace another player's tile")
    }
    if s.ResourceOnBoard(kind)+market.Cubes() > 0 {
        return newError(OverbuildDeniedError,
            "%s cubes remain on the board or in the market",
            simple.ResourceNames[kind])
    }
    return nil
}

func removeIndustry(s *simple.GameState, pi int, ii int) {
    inds := s.Players[pi].Industries
    s.Players[pi].Industries = append(inds[:ii], inds[ii+1:]...)
}
