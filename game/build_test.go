package game_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

// drainMat zeroes a player's mat piles of one type below a level, so the
// next build of that type comes off the higher pile.
func drainMat(s *simple.GameState, pi int, t simple.IndustryType, below int) {
    for mi := range s.Players[pi].Mat {
        if s.Players[pi].Mat[mi].Type != t {
            continue
        }
        for l := 0; l < below-1 && l < len(s.Players[pi].Mat[mi].Levels); l++ {
            s.Players[pi].Mat[mi].Levels[l] = 0
        }
    }
}

// placeIndustry puts a tile straight onto the board, bypassing the build
// action, for tests that need a shaped position.
func placeIndustry(s *simple.GameState, pi int, loc string, t simple.IndustryType, level int, resources int, flipped bool) {
    s.Players[pi].Industries = append(s.Players[pi].Industries, simple.Industry{
        Location: loc,
        Type: t,
        Level: level,
        Resources: resources,
        Flipped: flipped,
        Seq: s.NextSeq,
    })
    s.NextSeq++
}

// Birmingham takes a manufacturer in three of its four slots, so the same
// type can go down twice without touching the overbuild rules.
func TestBuildSameTypeTwice(t *testing.T) {
    s := newTestGame(t, 2)
    s.ActionsLeft = 2
    s.Players[0].Money = 100
    s.Players[0].Hand = []simple.Card{
        locCard("loc_birmingham", "birmingham"),
        indCard("ind_man", simple.ManufacturerIndustryType),
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_birmingham"),
        game.SelectLocation("birmingham"),
        game.SelectIndustry(simple.ManufacturerIndustryType),
        game.Confirm(),
    )
    if len(s.Players[0].Industries) != 1 {
        t.Fatalf("expected 1 industry after the first build, got %d", len(s.Players[0].Industries))
    }
    if s.Players[0].Money != 100-8 {
        t.Fatalf("a Level 1 Manufacturer costs £8, money is %d", s.Players[0].Money)
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("ind_man"),
        game.SelectLocation("birmingham"),
        game.SelectIndustry(simple.ManufacturerIndustryType),
        game.Confirm(),
    )
    inds := s.IndustriesAt("birmingham")
    if len(inds) != 2 {
        t.Fatalf("expected 2 manufacturers standing in birmingham, got %d", len(inds))
    }
    if inds[0].Level != 1 || inds[1].Level != 2 {
        t.Fatalf("expected levels 1 and 2 in construction order, got %d and %d",
            inds[0].Level, inds[1].Level)
    }
    if !game.CanPlace(&s, "birmingham", simple.ManufacturerIndustryType) {
        t.Fatal("birmingham should still have a third manufacturer slot open")
    }
}

func TestBuildFirstBuildException(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{indCard("ind_cotton", simple.CottonIndustryType)}

    // No industries, no links: the industry card builds anywhere.
    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("ind_cotton"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CottonIndustryType),
        game.Confirm(),
    )
    if len(s.Players[0].Industries) != 1 || s.Players[0].Industries[0].Location != "worcester" {
        t.Fatalf("first build should land in worcester, got %+v", s.Players[0].Industries)
    }
}

func TestBuildNetworkMembership(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 100
    placeIndustry(&s, 0, "stoke", simple.PotteryIndustryType, 1, 0, false)
    s.Players[0].Hand = []simple.Card{
        indCard("ind_cotton", simple.CottonIndustryType),
        simple.Card{Id: "wild_loc", Type: simple.WildLocationCardType},
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("ind_cotton"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CottonIndustryType),
    )
    wantError(t, s, game.Confirm(), game.NetworkViolationError)

    // A wild location card doesn't care about the network.
    s = mustDispatch(t, s,
        game.SelectCard("wild_loc"),
        game.Confirm(),
    )
    if _, _, ok := s.GetIndustryAt("worcester", simple.CottonIndustryType); !ok {
        t.Fatal("the wild location build should have landed in worcester")
    }
    if len(s.WildLocations) != 3 {
        t.Fatalf("the spent wild should be back in its pile, pile has %d", len(s.WildLocations))
    }
}

// Taking an opponent's coal mine needs every coal cube gone, board and
// market both.
func TestBuildOverbuildOpponentCoal(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 100
    drainMat(&s, 0, simple.CoalIndustryType, 2)
    placeIndustry(&s, 1, "dudley", simple.CoalIndustryType, 1, 2, false)
    s.Players[0].Hand = []simple.Card{locCard("loc_dudley", "dudley")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_dudley"),
        game.SelectLocation("dudley"),
        game.SelectIndustry(simple.CoalIndustryType),
    )
    wantError(t, s, game.Confirm(), game.OverbuildDeniedError)

    // Dry the mine and the whole ladder and the same confirm goes through.
    s.Players[1].Industries[0].Resources = 0
    s.Players[1].Industries[0].Flipped = true
    for i := range s.CoalMarket.Levels {
        s.CoalMarket.Levels[i].Cubes = 0
    }
    s = mustDispatch(t, s, game.Confirm())

    if len(s.Players[1].Industries) != 0 {
        t.Fatalf("the opponent's mine should be gone, they still hold %d", len(s.Players[1].Industries))
    }
    pi, ii, ok := s.GetIndustryAt("dudley", simple.CoalIndustryType)
    if !ok || pi != 0 {
        t.Fatal("player 0's replacement mine should be standing in dudley")
    }
    if got := s.Players[pi].Industries[ii]; got.Level != 2 || got.Resources != 3 {
        t.Fatalf("expected an unsold Level 2 mine with 3 cubes, got %+v", got)
    }
}

func TestBuildOverbuildOwn(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 100
    drainMat(&s, 0, simple.CoalIndustryType, 2)
    placeIndustry(&s, 0, "dudley", simple.CoalIndustryType, 1, 1, false)
    s.Players[0].Hand = []simple.Card{locCard("loc_dudley", "dudley")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_dudley"),
        game.SelectLocation("dudley"),
        game.SelectIndustry(simple.CoalIndustryType),
        game.Confirm(),
    )
    if len(s.Players[0].Industries) != 1 || s.Players[0].Industries[0].Level != 2 {
        t.Fatalf("own overbuild should swap the Level 1 for a Level 2, got %+v",
            s.Players[0].Industries)
    }
}

func TestBuildOverbuildNeedsHigherLevel(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 100
    drainMat(&s, 0, simple.CoalIndustryType, 2)
    placeIndustry(&s, 0, "dudley", simple.CoalIndustryType, 2, 0, true)
    s.Players[0].Hand = []simple.Card{locCard("loc_dudley", "dudley")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_dudley"),
        game.SelectLocation("dudley"),
        game.SelectIndustry(simple.CoalIndustryType),
    )
    wantError(t, s, game.Confirm(), game.OverbuildDeniedError)
}

func TestBuildSlotUnavailable(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 100
    s.Players[0].Hand = []simple.Card{
        locCard("loc_dudley", "dudley"),
        locCard("loc_worcester", "worcester"),
    }

    // Dudley only takes coal and iron.
    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_dudley"),
        game.SelectLocation("dudley"),
        game.SelectIndustry(simple.CottonIndustryType),
    )
    wantError(t, s, game.Confirm(), game.SlotUnavailableError)
    s = mustDispatch(t, s, game.Cancel())

    // An empty mat pile is the same refusal.
    drainMat(&s, 0, simple.CottonIndustryType, 5)
    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_worcester"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CottonIndustryType),
    )
    wantError(t, s, game.Confirm(), game.SlotUnavailableError)
}

func TestBuildLevelOneIsCanalOnly(t *testing.T) {
    s := newTestGame(t, 2)
    s.Era = simple.RailEra
    s.Players[0].Money = 100
    s.Players[0].Hand = []simple.Card{locCard("loc_dudley", "dudley")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_dudley"),
        game.SelectLocation("dudley"),
        game.SelectIndustry(simple.CoalIndustryType),
    )
    wantError(t, s, game.Confirm(), game.SlotUnavailableError)
}

func TestBuildCardMismatch(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Hand = []simple.Card{
        locCard("loc_coventry", "coventry"),
        indCard("ind_cotton", simple.CottonIndustryType),
    }

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_coventry"),
        game.SelectLocation("birmingham"),
        game.SelectIndustry(simple.ManufacturerIndustryType),
    )
    wantError(t, s, game.Confirm(), game.CardTypeMismatchError)

    s = mustDispatch(t, s, game.Cancel(),
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("ind_cotton"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CoalIndustryType),
    )
    wantError(t, s, game.Confirm(), game.CardTypeMismatchError)
}

func TestBuildInsufficientFundsIsAtomic(t *testing.T) {
    s := newTestGame(t, 2)
    s.Players[0].Money = 5
    s.Players[0].Hand = []simple.Card{locCard("loc_worcester", "worcester")}

    s = mustDispatch(t, s,
        game.SelectAction(simple.BuildActionType),
        game.SelectCard("loc_worcester"),
        game.SelectLocation("worcester"),
        game.SelectIndustry(simple.CottonIndustryType),
    )
    before := s.Json()
    res, err := game.Dispatch(s, game.Confirm())
    if err == nil || err.Kind != game.InsufficientFundsError {
        t.Fatalf("expected InsufficientFunds, got %v", err)
    }
    if res.Json() != before {
        t.Fatal("a failed build must leave the state untouched")
    }
}
