package game_test

import (
    "strings"
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

var testNames = []string{"Florence", "Eliza", "Ada", "Brunel"}
var testColors = []simple.PlayerColor{
    simple.TealPlayerColor,
    simple.OrangePlayerColor,
    simple.PurplePlayerColor,
    simple.RedPlayerColor,
}

func newTestGame(t *testing.T, players int) simple.GameState {
    t.Helper()
    setups := []simple.PlayerSetup{}
    for i := 0; i < players; i++ {
        setups = append(setups, simple.PlayerSetup{
            Identity: simple.NewHumanIdentity(testNames[i]),
            Color: testColors[i],
        })
    }
    s, err := game.Init(setups)
    if err != nil {
        t.Fatalf("Init failed: %v", err)
    }
    return s
}

func locCard(id string, loc string) simple.Card {
    return simple.Card{Id: id, Type: simple.LocationCardType, Location: loc}
}

func indCard(id string, ts ...simple.IndustryType) simple.Card {
    return simple.Card{Id: id, Type: simple.IndustryCardType, Industries: ts}
}

func mustDispatch(t *testing.T, s simple.GameState, events ...game.Event) simple.GameState {
    t.Helper()
    for _, e := range events {
        next, err := game.Dispatch(s, e)
        if err != nil {
            t.Fatalf("Dispatch(%s) failed: %v", game.EventNames[e.Type], err)
        }
        s = next
    }
    return s
}

func wantError(t *testing.T, s simple.GameState, e game.Event, kind game.ErrorKind) {
    t.Helper()
    _, err := game.Dispatch(s, e)
    if err == nil {
        t.Fatalf("Dispatch(%s) should have failed with %s",
            game.EventNames[e.Type], game.ErrorKindNames[kind])
    }
    if err.Kind != kind {
        t.Fatalf("Dispatch(%s) failed with %s, want %s: %v",
            game.EventNames[e.Type], game.ErrorKindNames[err.Kind], game.ErrorKindNames[kind], err)
    }
}

func hasLogEntry(s simple.GameState, substr string) bool {
    for _, e := range s.Log {
        if strings.Contains(e.Message, substr) {
            return true
        }
    }
    return false
}

func TestInitPlayerCounts(t *testing.T) {
    for _, n := range []int{2, 3, 4} {
        s := newTestGame(t, n)
        if len(s.Players) != n {
            t.Fatalf("expected %d players, got %d", n, len(s.Players))
        }
        if s.RoundCap != simple.RoundCaps[n] {
            t.Fatalf("expected round cap %d for %d players, got %d",
                simple.RoundCaps[n], n, s.RoundCap)
        }
    }

    for _, n := range []int{0, 1, 5} {
        setups := make([]simple.PlayerSetup, n)
        _, err := game.Init(setups)
        if err == nil {
            t.Fatalf("Init with %d players should have failed", n)
        }
        if err.Kind != game.InvalidPlayerCountError {
            t.Fatalf("Init with %d players failed with %s, want InvalidPlayerCount",
                n, game.ErrorKindNames[err.Kind])
        }
    }
}

func TestInitDeal(t *testing.T) {
    s := newTestGame(t, 2)
    if s.Era != simple.CanalEra {
        t.Fatalf("expected Canal Era, got %s", simple.EraNames[s.Era])
    }
    if s.Round != 1 || s.ActionsLeft != 1 {
        t.Fatalf("expected round 1 with 1 action, got round %d with %d", s.Round, s.ActionsLeft)
    }
    for pi, p := range s.Players {
        if len(p.Hand) != simple.HandSize {
            t.Fatalf("player %d has %d cards, want %d", pi, len(p.Hand), simple.HandSize)
        }
        if p.Money != simple.StartingMoney || p.Income != simple.StartingIncome {
            t.Fatalf("player %d starts with £%d and income %d", pi, p.Money, p.Income)
        }
    }
    if !hasLogEntry(s, "Canal Era started") {
        t.Fatal("expected a Canal Era started log entry")
    }
}

// The first canal round grants one action; from round 2 everybody gets
// two, and the turn passes with the action count refreshed.
func TestFirstRoundSingleAction(t *testing.T) {
    s := newTestGame(t, 2)

    s = mustDispatch(t, s,
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(s.Players[0].Hand[0].Id),
        game.Confirm(),
    )
    if s.CurrentPlayer != 1 {
        t.Fatalf("after player 0's single action the turn should pass, current is %d", s.CurrentPlayer)
    }
    if s.ActionsLeft != 1 {
        t.Fatalf("player 1 should also get a single action in round 1, got %d", s.ActionsLeft)
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(s.Players[1].Hand[0].Id),
        game.Confirm(),
    )
    if s.Round != 2 {
        t.Fatalf("expected round 2, got round %d", s.Round)
    }
    if s.CurrentPlayer != 0 || s.ActionsLeft != 2 {
        t.Fatalf("round 2 should open with player 0 and 2 actions, got player %d with %d",
            s.CurrentPlayer, s.ActionsLeft)
    }
}

func TestLoan(t *testing.T) {
    s := newTestGame(t, 2)
    cardId := s.Players[0].Hand[0].Id
    discards := len(s.Discard)

    s = mustDispatch(t, s,
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(cardId),
        game.Confirm(),
    )

    p := s.Players[0]
    if p.Money != simple.StartingMoney+30 {
        t.Fatalf("loan should pay £30, money is %d", p.Money)
    }
    if p.Income != simple.StartingIncome-3 {
        t.Fatalf("loan should cost 3 income, income is %d", p.Income)
    }
    if len(s.Discard) != discards+1 || s.Discard[len(s.Discard)-1].Id != cardId {
        t.Fatalf("the selected card should be the one discarded")
    }
    if len(p.Hand) != simple.HandSize {
        t.Fatalf("hand should refill to %d after the turn, got %d", simple.HandSize, len(p.Hand))
    }
    if s.CurrentPlayer != 1 {
        t.Fatalf("turn should advance to player 1, got %d", s.CurrentPlayer)
    }
}

func TestLoanIncomeFloor(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Income = simple.MinIncome + 1

    s = mustDispatch(t, s,
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(s.Players[0].Hand[0].Id),
        game.Confirm(),
    )
    if s.Players[0].Income != simple.MinIncome {
        t.Fatalf("income should clamp at %d, got %d", simple.MinIncome, s.Players[0].Income)
    }
}

func TestCancelClearsSelections(t *testing.T) {
    s := newTestGame(t, 2)
    mid := mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard(s.Players[0].Hand[0].Id),
        game.SelectLocation("birmingham"),
    )
    if mid.Turn.Type != simple.BuildingTurnState {
        t.Fatalf("expected a building turn state, got %s", simple.TurnStateNames[mid.Turn.Type])
    }

    back := mustDispatch(t, mid, game.Cancel())
    if back.Turn.Type != simple.NoneTurnStateType || back.Turn.Card != "" || back.Turn.Location != "" {
        t.Fatalf("cancel should clear the whole selection, got %+v", back.Turn)
    }
    if back.ActionsLeft != s.ActionsLeft {
        t.Fatal("cancel must not cost an action")
    }

    wantError(t, back, game.Cancel(), game.InvalidPhaseError)
}

func TestEndTurnForfeitsActions(t *testing.T) {
    s := newTestGame(t, 2)
    s = mustDispatch(t, s, game.EndTurn())
    if s.CurrentPlayer != 1 {
        t.Fatalf("end turn should pass play to player 1, got %d", s.CurrentPlayer)
    }

    // Mid-selection the event is refused until cancel or confirm.
    s = mustDispatch(t, s, game.SelectAction(simple.LoanActionType))
    wantError(t, s, game.EndTurn(), game.InvalidPhaseError)
}

func TestSelectionGuards(t *testing.T) {
    s := newTestGame(t, 2)

    wantError(t, s, game.Confirm(), game.InvalidPhaseError)
    wantError(t, s, game.SelectCard(s.Players[0].Hand[0].Id), game.InvalidPhaseError)
    wantError(t, s, game.SelectAction(simple.NoneActionType), game.InvalidPhaseError)

    s = mustDispatch(t, s, game.SelectAction(simple.LoanActionType))
    wantError(t, s, game.SelectAction(simple.BuildActionType), game.InvalidPhaseError)
    wantError(t, s, game.SelectCard("no_such_card"), game.SelectionMissingError)
    wantError(t, s, game.SelectLocation("birmingham"), game.InvalidPhaseError)
    wantError(t, s, game.Confirm(), game.SelectionMissingError)
}

func TestDispatchLeavesInputAlone(t *testing.T) {
    s := newTestGame(t, 2)
    before := s.Json()

    mustDispatch(t, s,
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(s.Players[0].Hand[0].Id),
        game.Confirm(),
    )
    if s.Json() != before {
        t.Fatal("Dispatch mutated its input state")
    }

    if !game.CanDispatch(s, game.SelectAction(simple.LoanActionType)) {
        t.Fatal("CanDispatch should accept a legal event")
    }
    if game.CanDispatch(s, game.Confirm()) {
        t.Fatal("CanDispatch should refuse a confirm with nothing pending")
    }
    if s.Json() != before {
        t.Fatal("CanDispatch mutated its input state")
    }
}

func TestGameOverRejectsEvents(t *testing.T) {
    s := newTestGame(t, 2)
    s.Phase = simple.GameOverPhase
    wantError(t, s, game.SelectAction(simple.LoanActionType), game.InvalidPhaseError)
    wantError(t, s, game.EndTurn(), game.InvalidPhaseError)
}
