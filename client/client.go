package client

import (
    "local/brass/message"
    "local/brass/simple"
)

// A Client is anything the runner can seat at the table: a websocket with
// a person behind it or a bot in this process. A closed Read channel
// means the client went away.
type Client interface {
    Identity() simple.Identity
    Run()
    Send(message.Server)
    Read() chan message.Client
    Done() // Return immediately
}
