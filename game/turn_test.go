package game_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

// endRound walks every seat through an empty turn.
func endRound(t *testing.T, s simple.GameState) simple.GameState {
    t.Helper()
    for range s.Order {
        s = mustDispatch(t, s, game.EndTurn())
    }
    return s
}

// Whoever spent the least goes first next round; ties hold their
// relative order.
func TestReseatBySpent(t *testing.T) {
    s := newTestGame(t, 3)
    s.Players[0].Spent = 10
    s.Players[1].Spent = 0
    s.Players[2].Spent = 5

    s = endRound(t, s)

    if s.Round != 2 {
        t.Fatalf("expected round 2, got %d", s.Round)
    }
    want := []int{1, 2, 0}
    for i, pi := range want {
        if s.Order[i] != pi {
            t.Fatalf("expected order %v, got %v", want, s.Order)
        }
    }
    if s.CurrentPlayer != 1 {
        t.Fatalf("player 1 spent nothing and should open round 2, got %d", s.CurrentPlayer)
    }
    for pi, p := range s.Players {
        if p.Spent != 0 {
            t.Fatalf("player %d's spent should reset, got %d", pi, p.Spent)
        }
    }
}

func TestIncomePhase(t *testing.T) {
    s := newTestGame(t, 2)
    money := s.Players[0].Money

    s = endRound(t, s)
    if s.Players[0].Money != money+simple.StartingIncome {
        t.Fatalf("round end should pay £%d income, money went %d to %d",
            simple.StartingIncome, money, s.Players[0].Money)
    }
}

// A player too broke for their negative income burns points instead,
// and never drops below zero money or points.
func TestIncomeShortfall(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Income = -7
    s.Players[0].Money = 3
    s.Players[0].Points = 10
    s.Players[1].Income = -7
    s.Players[1].Money = 0
    s.Players[1].Points = 2

    s = endRound(t, s)

    if s.Players[0].Money != 0 || s.Players[0].Points != 6 {
        t.Fatalf("player 0 should cover £3 and burn 4 points, got £%d and %d points",
            s.Players[0].Money, s.Players[0].Points)
    }
    if s.Players[1].Money != 0 || s.Players[1].Points != 0 {
        t.Fatalf("player 1 bottoms out at zero, got £%d and %d points",
            s.Players[1].Money, s.Players[1].Points)
    }
}

func TestSpentCountsBuildMoney(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{locCard("c", "worcester")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("c"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CottonIndustryType),
        game.Confirm(),
    )
    if s.Players[0].Spent != 12 {
        t.Fatalf("the £12 build should count as spent, got %d", s.Players[0].Spent)
    }
}
