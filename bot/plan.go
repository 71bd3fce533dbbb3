package bot

import (
    "local/brass/game"
)

// Plan is one candidate action: the events that enact it, already proven
// to dispatch cleanly against the current state, and how much the brain
// likes where they lead.  FitnessValue and FitnessDescription are baked
// at enumeration time so sorting and logging don't recompute.
type Plan struct {
    Goal Goal
    Events []game.Event

    Fitness Fitness
    FitnessValue float64
    FitnessDescription string
}
