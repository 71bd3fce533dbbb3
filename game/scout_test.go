package game_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

func TestScout(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{
        locCard("c1", "worcester"),
        locCard("c2", "stoke"),
        indCard("c3", simple.CoalIndustryType),
        locCard("c4", "derby"),
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.ScoutActionType),
        game.SelectCard("c1"),
        game.SelectCard("c2"),
        game.SelectCard("c3"),
    )
    // A fourth discard is one too many.
    wantError(t, s, game.SelectCard("c4"), game.InvalidPhaseError)
    // So is naming the same card twice.
    wantError(t, s, game.SelectCard("c2"), game.SelectionMissingError)

    s = mustDispatch(t, s, game.Confirm())

    p := s.Players[0]
    wilds := 0
    for _, c := range p.Hand {
        if c.Wild() {
            wilds++
        }
    }
    if wilds != 2 {
        t.Fatalf("scouting should leave both wilds in hand, found %d", wilds)
    }
    if len(s.WildLocations) != 1 || len(s.WildIndustries) != 1 {
        t.Fatalf("each wild pile should be down to 1, got %d and %d",
            len(s.WildLocations), len(s.WildIndustries))
    }
    if len(s.Discard) != 3 {
        t.Fatalf("all three scouted cards belong in the discard, which has %d", len(s.Discard))
    }
}

func TestScoutRefusedHoldingWild(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{
        locCard("c1", "worcester"),
        locCard("c2", "stoke"),
        locCard("c3", "derby"),
        {Id: "w", Type: simple.WildIndustryCardType},
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.ScoutActionType),
        game.SelectCard("c1"),
        game.SelectCard("c2"),
        game.SelectCard("c3"),
    )
    wantError(t, s, game.Confirm(), game.CardTypeMismatchError)
}

func TestScoutNeedsThreeCards(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{
        locCard("c1", "worcester"),
        locCard("c2", "stoke"),
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.ScoutActionType),
        game.SelectCard("c1"),
        game.SelectCard("c2"),
    )
    wantError(t, s, game.Confirm(), game.SelectionMissingError)
}
