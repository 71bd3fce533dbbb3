package game

import (
    "sort"
    "local/brass/simple"
)

// actionsPerTurn is 2 everywhere except the very first canal round.
func actionsPerTurn(s *simple.GameState) int {
    if s.Era == simple.CanalEra && s.Round == 1 {
        return 1
    }
    return 2
}

// finishTurn runs when the current player is done, by choice or by
// running out of actions: refill their hand, pass play along, and when
// the round closes settle income, reseat, and roll the era over.
func finishTurn(s *simple.GameState) {
    s.Turn = simple.NoneTurnState
    drawTo(s, s.CurrentPlayer, simple.HandSize)

    if s.TurnIndex < len(s.Order)-1 {
        s.TurnIndex++
        s.CurrentPlayer = s.Order[s.TurnIndex]
        s.ActionsLeft = actionsPerTurn(s)
        return
    }

    // Last seat just finished, so the round is over.  The final rail
    // round goes straight to scoring: there is no next round to fund.
    if s.Era == simple.RailEra && s.Round >= s.RoundCap {
        endGame(s)
        return
    }

    payIncome(s)
    reseat(s)
    if s.Era == simple.CanalEra && s.Round >= s.RoundCap {
        transitionToRail(s)
        return
    }

    s.Round++
    s.TurnIndex = 0
    s.CurrentPlayer = s.Order[0]
    s.ActionsLeft = actionsPerTurn(s)
    s.AppendLog(simple.SystemLogKind, "Round %d of %d", s.Round, s.RoundCap)
}

// payIncome settles the round: positive income pays out, negative income
// collects, and a player who can't cover the bill burns a point per
// missing pound instead of going under.
func payIncome(s *simple.GameState) {
    for pi := range s.Players {
        p := &s.Players[pi]
        p.Money += p.Income
        if p.Income >= 0 {
            s.AppendLog(simple.InfoLogKind, "%s collected £%d income", p.Identity.Name, p.Income)
            continue
        }
        if p.Money >= 0 {
            s.AppendLog(simple.InfoLogKind, "%s paid £%d income", p.Identity.Name, -p.Income)
            continue
        }
        shortfall := -p.Money
        p.Money = 0
        lost := shortfall
        if lost > p.Points {
            lost = p.Points
        }
        p.Points -= lost
        s.AppendLog(simple.InfoLogKind, "%s was £%d short on income and lost %d points",
            p.Identity.Name, shortfall, lost)
    }
}

// reseat recomputes turn order for the next round: least spent goes
// first, ties keep their relative order from this round.
func reseat(s *simple.GameState) {
    order := append([]int{}, s.Order...)
    sort.SliceStable(order, func(i, j int) bool {
        return s.Players[order[i]].Spent < s.Players[order[j]].Spent
    })
    s.Order = order
    for pi := range s.Players {
        s.Players[pi].Spent = 0
    }
}
