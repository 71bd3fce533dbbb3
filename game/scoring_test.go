package game_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
)

// The canal-era close: scoring, the Level 1 purge, link removal, fresh
// merchant beer, a rebuilt deck and full hands.
func TestCanalEraTransition(t *testing.T) {
    s := newTestGame(t, 2)
    s.Round = s.RoundCap

    placeIndustry(&s, 0, "worcester", simple.CottonIndustryType, 1, 0, true)
    placeIndustry(&s, 0, "dudley", simple.CoalIndustryType, 2, 1, false)
    placeLink(&s, 0, "worcester", "birmingham")
    s.Board.SetBeer("warrington", 0)

    // Park a wild in hand to watch it go home instead of into the deck.
    wild := s.WildLocations[0]
    s.WildLocations = s.WildLocations[1:]
    s.Players[0].Hand = append(s.Players[0].Hand[:7], wild)

    s = endRound(t, s)

    if s.Era != simple.RailEra || s.Round != 1 || s.ActionsLeft != 2 {
        t.Fatalf("expected Rail Era round 1 with 2 actions, got %s round %d with %d",
            simple.EraNames[s.Era], s.Round, s.ActionsLeft)
    }
    if !hasLogEntry(s, "Canal Era ended") || !hasLogEntry(s, "Rail Era started") {
        t.Fatal("the era turnover should leave both log entries")
    }

    // 1 for the link, 5 for the flipped Level 1 cotton; the unflipped
    // mine earns nothing.
    if s.Players[0].Points != 6 {
        t.Fatalf("expected 6 points from the canal score, got %d", s.Players[0].Points)
    }

    // The Level 1 is swept even though it scored; the Level 2 survives.
    if len(s.Players[0].Industries) != 1 || s.Players[0].Industries[0].Level != 2 {
        t.Fatalf("only the Level 2 mine should survive, got %+v", s.Players[0].Industries)
    }
    if len(s.Players[0].Links) != 0 {
        t.Fatalf("canal links are removed, player still holds %d", len(s.Players[0].Links))
    }
    if loc, _ := s.Board.GetLocation("warrington"); loc.Beer != 1 {
        t.Fatalf("merchant beer should refill to 1, warrington has %d", loc.Beer)
    }

    if len(s.WildLocations) != 2 || len(s.WildIndustries) != 2 {
        t.Fatalf("the held wild should be home, piles are %d and %d",
            len(s.WildLocations), len(s.WildIndustries))
    }
    for pi, p := range s.Players {
        if len(p.Hand) != simple.HandSize {
            t.Fatalf("player %d should redraw to %d, has %d", pi, simple.HandSize, len(p.Hand))
        }
        for _, c := range p.Hand {
            if c.Wild() {
                t.Fatal("no wild should come back in the fresh deal")
            }
        }
    }
}

func TestGameEndScoresAndWinner(t *testing.T) {
    s := newTestGame(t, 2)
    s.Era = simple.RailEra
    s.Round = s.RoundCap

    placeIndustry(&s, 1, "worcester", simple.CottonIndustryType, 3, 0, true)
    placeLink(&s, 1, "worcester", "birmingham")

    s = endRound(t, s)

    if s.Phase != simple.GameOverPhase {
        t.Fatalf("expected the game to be over, phase is %s", simple.PhaseNames[s.Phase])
    }
    // 9 for the flipped Level 3 cotton plus 1 for the link.
    if s.Players[1].Points != 10 {
        t.Fatalf("expected 10 points for player 1, got %d", s.Players[1].Points)
    }
    if s.Winner != 1 {
        t.Fatalf("player 1 should win, winner is %d", s.Winner)
    }
    if !hasLogEntry(s, "wins") {
        t.Fatal("expected a winner log entry")
    }

    // A finished game refuses everything.
    wantError(t, s, game.EndTurn(), game.InvalidPhaseError)
}

func TestWinnerTieBreaks(t *testing.T) {
    cases := []struct {
        name string
        points [2]int
        income [2]int
        money [2]int
        winner int
    }{
        {"points win", [2]int{5, 4}, [2]int{0, 10}, [2]int{0, 50}, 0},
        {"income breaks", [2]int{5, 5}, [2]int{3, 8}, [2]int{50, 0}, 1},
        {"money breaks", [2]int{5, 5}, [2]int{8, 8}, [2]int{10, 20}, 1},
        {"seat order last", [2]int{5, 5}, [2]int{8, 8}, [2]int{20, 20}, 0},
    }

    for _, c := range cases {
        s := newTestGame(t, 2)
        s.Era = simple.RailEra
        s.Round = s.RoundCap
        for pi := 0; pi < 2; pi++ {
            s.Players[pi].Points = c.points[pi]
            s.Players[pi].Income = c.income[pi]
            s.Players[pi].Money = c.money[pi]
        }

        s = endRound(t, s)
        if s.Winner != c.winner {
            t.Fatalf("%s: expected winner %d, got %d", c.name, c.winner, s.Winner)
        }
    }
}
