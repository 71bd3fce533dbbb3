package message

import (
    "time"
)

// Sent only to the player whose event the engine refused. Kind carries
// the game.ErrorKind name so clients can branch without string matching.
type NotifyEventErrorData struct {
    Kind string
    Detail string
}

func NewNotifyEventError(kind, detail string) Server {
    return Server{
        SType: NotifyEventError,
        Time: time.Now(),
        Data: NotifyEventErrorData{
            Kind: kind,
            Detail: detail,
        },
    }
}
