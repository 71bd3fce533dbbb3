package game

import (
    "local/brass/simple"
)

const (
    loanMoney = 30
    loanIncomePenalty = 3
)

// resolveLoan is the one action that can't be blocked by the board: £30
// now, three income levels later, floored so repeat borrowers bottom out
// instead of going unboundedly negative.
func resolveLoan(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }

    p := s.Current()
    p.Money += loanMoney
    raiseIncome(s, s.CurrentPlayer, -loanIncomePenalty)
    discardCard(s, card.Id)
    s.AppendLog(simple.ActionLogKind, "%s took a £%d loan (-%d income)",
        p.Identity.Name, loanMoney, loanIncomePenalty)
    return nil
}
