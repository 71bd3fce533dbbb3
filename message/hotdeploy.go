package message

import (
    "time"
)

// Broadcast right before the host exits for a deploy. Clients keep the
// Notice on screen and retry their websocket every RetryMs until the new
// build answers and reseats them.
type HotDeployData struct {
    Notice string
    RetryMs int
}

func NewHotDeploy(notice string, retryMs int) Server {
    return Server{
        SType: HotDeploy,
        Time: time.Now(),
        Data: HotDeployData{
            Notice: notice,
            RetryMs: retryMs,
        },
    }
}
