package game

import (
    "local/brass/simple"
)

// resolveSell flips one of the player's own cotton, manufacturer, or
// pottery tiles, feeding it the beer the tile asks for.  Beer is the one
// resource with no paid fallback, so this is the action that can die of
// exhaustion.
func resolveSell(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }
    if s.Turn.Location == "" {
        return newError(SelectionMissingError, "select the location you're selling from")
    }
    if s.Turn.Industry == simple.NoneIndustryType {
        return newError(SelectionMissingError, "select the industry to sell")
    }
    t := s.Turn.Industry
    if !t.Sellable() {
        return newError(CardTypeMismatchError, "a %s doesn't sell to merchants",
            simple.IndustryNames[t])
    }

    // A city can hold the same type twice, so skip past flipped ones to
    // whichever is still face up.
    p := s.Current()
    ii := -1
    flippedOnly := false
    for i, ind := range p.Industries {
        if ind.Location != s.Turn.Location || ind.Type != t {
            continue
        }
        if ind.Flipped {
            flippedOnly = true
            continue
        }
        ii = i
        break
    }
    if ii == -1 {
        if flippedOnly {
            return newError(CardTypeMismatchError, "your %s there has already flipped",
                simple.IndustryNames[t])
        }
        return newError(SelectionMissingError, "you have no %s in %s",
            simple.IndustryNames[t], locationName(s, s.Turn.Location))
    }

    s.AppendLog(simple.ActionLogKind, "%s sold the %s in %s",
        p.Identity.Name, simple.IndustryNames[t], locationName(s, s.Turn.Location))
    spec := p.Industries[ii].Spec()
    if err := consumeBeer(s, s.Turn.Location, spec.BeerToSell); err != nil {
        return err
    }
    flipIndustry(s, s.CurrentPlayer, ii)
    discardCard(s, card.Id)
    return nil
}
