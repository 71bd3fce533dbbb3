package bot

import (
    "local/brass/game"
    "local/brass/simple"
)

// A Brain decides what to do with a turn.  TakeAction is handed the
// authoritative state when it is the bot's seat to play and nothing is in
// flight; it returns the full event run for one action (ending in a
// Confirm), or a bare EndTurn when there is nothing worth doing.  Brains
// never hold game state between calls and never mutate what they are
// handed; they probe candidates through game.Dispatch, which copies.
type Brain interface {
    Name() string
    TakeAction(s simple.GameState, seat int) []game.Event
}
