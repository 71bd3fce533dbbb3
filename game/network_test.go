package game_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

func TestNetworkCanalLink(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{locCard("c", "stoke")}
    money := s.Players[0].Money

    s = mustDispatch(t, s,
        game.SelectAction(simple.NetworkActionType),
        game.SelectCard("c"),
        game.SelectLink("worcester", "birmingham"),
    )
    // The canal era caps the action at one link.
    wantError(t, s, game.SelectLink("birmingham", "dudley"), game.InvalidPhaseError)

    s = mustDispatch(t, s, game.Confirm())
    if len(s.Players[0].Links) != 1 {
        t.Fatalf("expected 1 link, got %d", len(s.Players[0].Links))
    }
    l := s.Players[0].Links[0]
    if !l.Joins("worcester", "birmingham") || l.Era != simple.CanalEra {
        t.Fatalf("expected a canal link worcester-birmingham, got %+v", l)
    }
    if s.Players[0].Money != money-3 {
        t.Fatalf("a canal link costs £3, money went %d to %d", money, s.Players[0].Money)
    }
    if s.Players[0].Spent != 3 {
        t.Fatalf("the £3 should count as spent, got %d", s.Players[0].Spent)
    }
}

func TestNetworkCorridorChecks(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[1].Links = []simple.Link{{A: "worcester", B: "birmingham", Era: simple.CanalEra}}
    s.Players[0].Hand = []simple.Card{locCard("c", "stoke")}
    s = mustDispatch(t, s,
        game.SelectAction(simple.NetworkActionType),
        game.SelectCard("c"),
    )

    // No printed corridor between these two.
    bad := mustDispatch(t, s, game.SelectLink("worcester", "stoke"))
    wantError(t, bad, game.Confirm(), game.NetworkViolationError)

    // Rail-only corridor in the canal era.
    bad = mustDispatch(t, s, game.SelectLink("stoke", "uttoxeter"))
    wantError(t, bad, game.Confirm(), game.NetworkViolationError)

    // Somebody already built this one.
    bad = mustDispatch(t, s, game.SelectLink("birmingham", "worcester"))
    wantError(t, bad, game.Confirm(), game.NetworkViolationError)
}

// The rail-era double build: £5 and a coal for the first link, £10 more
// plus a coal and a beer for the second.
func TestNetworkRailDouble(t *testing.T) {
    s := newTestGame(t, 2)
    s.Era = simple.RailEra
    s.Players[0].Money = 100
    placeIndustry(&s, 0, "stone", simple.BreweryIndustryType, 1, 1, false)
    s.Players[0].Hand = []simple.Card{locCard("c", "stoke")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.NetworkActionType),
        game.SelectCard("c"),
        game.SelectLink("tamworth", "nuneaton"),
        game.SelectLink("nuneaton", "coventry"),
        game.Confirm(),
    )

    if len(s.Players[0].Links) != 2 {
        t.Fatalf("expected 2 rail links, got %d", len(s.Players[0].Links))
    }
    // £5 + £1 coal, then £10 + £1 coal; the beer comes off the brewery.
    if s.Players[0].Money != 100-17 {
        t.Fatalf("expected £83 left, got %d", s.Players[0].Money)
    }
    brewery := s.Players[0].Industries[0]
    if brewery.Resources != 0 || !brewery.Flipped {
        t.Fatalf("the second link should drink the brewery dry: %+v", brewery)
    }
}

func TestNetworkSecondLinkNeedsBeer(t *testing.T) {
    s := newTestGame(t, 2)
    s.Era = simple.RailEra
    s.Players[0].Money = 100
    for _, m := range s.Board.Merchants() {
        s.Board.SetBeer(m.Id, 0)
    }
    s.Players[0].Hand = []simple.Card{locCard("c", "stoke")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.NetworkActionType),
        game.SelectCard("c"),
        game.SelectLink("tamworth", "nuneaton"),
        game.SelectLink("nuneaton", "coventry"),
    )
    before := s.Json()
    res, err := game.Dispatch(s, game.Confirm())
    if err == nil || err.Kind != game.ResourceExhaustedError {
        t.Fatalf("expected ResourceExhausted for the beerless second link, got %v", err)
    }
    if res.Json() != before {
        t.Fatal("the failed double build must not keep the first link")
    }
}
