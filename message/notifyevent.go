package message

import (
    "time"
    "local/brass/game"
    "local/brass/simple"
)

// Broadcast after every accepted event. State is authoritative; Logs is
// just the entries this event appended, so clients can animate the feed
// without diffing.
type NotifyEventData struct {
    Player int
    Event game.Event
    State simple.GameState
    Logs []simple.LogEntry
}

func NewNotifyEvent(player int, e game.Event, s simple.GameState, logs []simple.LogEntry) Server {
    return Server{
        SType: NotifyEvent,
        Time: time.Now(),
        Data: NotifyEventData{
            Player: player,
            Event: e,
            State: s,
            Logs: logs,
        },
    }
}
