package message

import (
    "time"
)

// The host's own failure (a panicking websocket goroutine, mostly), as
// opposed to NotifyEventError, which is the engine refusing a play.
// Detail is safe to show a player; the stack stays in the server log.
type InternalErrorData struct {
    Detail string
}

func NewInternalError(detail string) Server {
    return Server{
        SType: InternalError,
        Time: time.Now(),
        Data: InternalErrorData{
            Detail: detail,
        },
    }
}
