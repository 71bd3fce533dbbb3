package game

import (
    "local/brass/simple"
)

// resolveScout trades three ordinary cards for the two wilds.  The wild
// piles are sized one pair per seat and spent wilds go straight back, so
// a hand with no wild in it always finds a pair to take.
func resolveScout(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }
    if len(s.Turn.ExtraCards) != 2 {
        return newError(SelectionMissingError, "set aside two more cards to scout")
    }

    p := s.Current()
    if p.HasWild() {
        return newError(CardTypeMismatchError, "you can't scout while holding a wild card")
    }

    picks := []simple.Card{card}
    for _, id := range s.Turn.ExtraCards {
        c, err := requireNamedCard(s, id)
        if err != nil {
            return err
        }
        picks = append(picks, c)
    }

    for _, c := range picks {
        discardCard(s, c.Id)
    }
    if len(s.WildLocations) == 0 || len(s.WildIndustries) == 0 {
        panic("Scouting with an empty wild pile")
    }
    p.Hand = append(p.Hand, s.WildLocations[0], s.WildIndustries[0])
    s.WildLocations = s.WildLocations[1:]
    s.WildIndustries = s.WildIndustries[1:]

    s.AppendLog(simple.ActionLogKind, "%s scouted for the wild cards", p.Identity.Name)
    return nil
}

func requireNamedCard(s *simple.GameState, id string) (simple.Card, *Error) {
    for _, c := range s.Current().Hand {
        if c.Id == id {
            return c, nil
        }
    }
    return simple.Card{}, newError(SelectionMissingError, "card %s is not in your hand", id)
}
