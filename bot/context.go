package bot

import (
    "local/brass/simple"
)

// Context is the coarse picture a brain weighs plans against.  It is
// rebuilt from the live state at the top of every planning pass, so
// nothing in here can go stale mid-turn.
type Context struct {
    ActionsLeft int
    Money int
    Income int
    HandSize int

    // This swings things like loans (fine early, ruinous late) and how
    // hard we chase flips over position.
    GameTime GameTime
}

type GameTime int
const (
    EarlyGame GameTime = iota
    MidGame
    LateGame
)

var gameTimeNames = map[GameTime]string{
    EarlyGame: "Early",
    MidGame: "Mid",
    LateGame: "Late",
}

func buildContext(s *simple.GameState, seat int) Context {
    p := s.Players[seat]
    c := Context{
        ActionsLeft: s.ActionsLeft,
        Money: p.Money,
        Income: p.Income,
        HandSize: len(p.Hand),
    }

    // First half of the canal era is early game, second half is mid; the
    // rail era starts mid and its back half is late.
    switch s.Era {
        case simple.CanalEra:
            if s.Round*2 <= s.RoundCap {
                c.GameTime = EarlyGame
            } else {
                c.GameTime = MidGame
            }
        case simple.RailEra:
            if s.Round*2 <= s.RoundCap {
                c.GameTime = MidGame
            } else {
                c.GameTime = LateGame
            }
    }
    return c
}
