package game

import (
    "local/brass/simple"
)

const (
    canalLinkCost = 3
    railLinkCost = 5
    secondRailLinkCost = 10
)

// resolveNetwork lays the picked links one at a time, so a second pick
// can lean on the first for connectivity and gets caught if it doubles
// up the same corridor.  Rails drink: one coal per link, plus a beer for
// the second.
func resolveNetwork(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }
    if len(s.Turn.Links) == 0 {
        return newError(SelectionMissingError, "select a link to build")
    }
    if s.Era == simple.CanalEra && len(s.Turn.Links) > 1 {
        return newError(InvalidPhaseError, "only one link per action in the Canal Era")
    }

    p := s.Current()
    bill := 0
    for n, pick := range s.Turn.Links {
        conn, ok := s.Board.GetConnection(pick.A, pick.B)
        if !ok {
            return newError(NetworkViolationError, "no corridor joins %s and %s",
                locationName(s, pick.A), locationName(s, pick.B))
        }
        if !conn.SupportsEra(s.Era) {
            return newError(NetworkViolationError, "the corridor between %s and %s doesn't take a %s Era link",
                locationName(s, pick.A), locationName(s, pick.B), simple.EraNames[s.Era])
        }
        if s.HasLink(pick.A, pick.B) {
            return newError(NetworkViolationError, "the corridor between %s and %s is already built",
                locationName(s, pick.A), locationName(s, pick.B))
        }

        p.Links = append(p.Links, simple.Link{A: pick.A, B: pick.B, Era: s.Era})
        switch {
            case s.Era == simple.CanalEra:
                bill += canalLinkCost
            case n == 0:
                bill += railLinkCost
                bill += consumeCoal(s, pick.A, 1)
            default:
                bill += secondRailLinkCost
                bill += consumeCoal(s, pick.A, 1)
                if err := consumeBeer(s, pick.A, 1); err != nil {
                    return err
                }
        }
        s.AppendLog(simple.ActionLogKind, "%s linked %s and %s",
            p.Identity.Name, locationName(s, pick.A), locationName(s, pick.B))
    }

    if bill > p.Money {
        return newError(InsufficientFundsError, "those links cost £%d and you have £%d",
            bill, p.Money)
    }
    p.Money -= bill
    p.Spent += bill
    discardCard(s, card.Id)
    return nil
}
