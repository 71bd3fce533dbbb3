package message

import (
    "time"
    "local/brass/simple"
)

// The full table, sent on attach and whenever a client asks. Seat is the
// receiver's player index, -1 when they hold no seat.
type NotifyStateData struct {
    State simple.GameState
    Seat int
}

func NewNotifyState(s simple.GameState, seat int) Server {
    return Server{
        SType: NotifyState,
        Time: time.Now(),
        Data: NotifyStateData{
            State: s,
            Seat: seat,
        },
    }
}
