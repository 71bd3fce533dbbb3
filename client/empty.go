package client

import (
    "local/brass/message"
    "local/brass/simple"
)

// EmptyClient fills a seat with no connection behind it. Its Read channel
// never delivers, so the runner's select simply never hears from it.
type EmptyClient struct {}

func (c EmptyClient) Run() {}
func (c EmptyClient) Send(message.Server) {}
func (c EmptyClient) Done() {}
func (c EmptyClient) Read() chan message.Client {
    return make(chan message.Client)
}
func (c EmptyClient) Identity() simple.Identity {
    return simple.EmptyIdentity
}
