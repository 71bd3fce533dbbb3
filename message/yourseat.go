package message

import (
    "time"
    "local/brass/simple"
)

type YourSeatData struct {
    Identity simple.Identity
    Seat int
}

func NewYourSeat(i simple.Identity, seat int) Server {
    return Server{
        SType: YourSeat,
        Time: time.Now(),
        Data: YourSeatData{
            Identity: i,
            Seat: seat,
        },
    }
}
