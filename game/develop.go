package game

import (
    "fmt"
    "strings"
    "local/brass/simple"
)

// resolveDevelop pulls one or two tiles off the mat, an iron apiece.
// Era eligibility doesn't matter here: shedding a canal-only Level 1 in
// the Rail Era is the usual reason to do this at all.
func resolveDevelop(s *simple.GameState) *Error {
    card, err := requireCard(s)
    if err != nil {
        return err
    }
    if len(s.Turn.Develop) == 0 {
        return newError(SelectionMissingError, "select one or two industries to develop")
    }

    p := s.Current()
    bill := 0
    removed := []string{}
    for _, t := range s.Turn.Develop {
        level := p.LowestMatLevel(t)
        if level == 0 {
            return newError(SlotUnavailableError, "no %s tiles left to develop",
                simple.IndustryNames[t])
        }
        p.TakeMatTile(t, level)
        bill += consumeIron(s, 1)
        removed = append(removed, fmt.Sprintf("Level %d %s", level, simple.IndustryNames[t]))
    }
    if bill > p.Money {
        return newError(InsufficientFundsError, "developing costs £%d and you have £%d",
            bill, p.Money)
    }

    p.Money -= bill
    p.Spent += bill
    discardCard(s, card.Id)
    s.AppendLog(simple.ActionLogKind, "%s developed away the %s",
        p.Identity.Name, strings.Join(removed, " and the "))
    return nil
}
