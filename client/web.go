package client

import (
    "encoding/json"
    "fmt"
    "github.com/gorilla/websocket"
    "local/brass/log"
    "local/brass/message"
    "local/brass/simple"
)

type WebClient struct {
    identity simple.Identity
    c *websocket.Conn
    to chan message.Server
    from chan message.Client
    ip string
}

func NewWebClient(i simple.Identity, c *websocket.Conn, ip string) *WebClient {
    log.Debug("WebClient created for %s (%s)", ip, c.RemoteAddr())
    return &WebClient{
        identity: i,
        c: c,
        to: make(chan message.Server, 100),
        from: make(chan message.Client, 100),
        ip: ip,
    }
}

// Call with a goroutine to start.
func (c *WebClient) Run() {
    go c.read()
    c.send()
}

func (c *WebClient) Send(m message.Server) {
    c.to <-m
}

func (c *WebClient) Read() chan message.Client {
    return c.from
}

// Releases the write goroutine. The websocket itself closes from the
// read side when the peer goes away; if we're kicking the client (their
// seat was claimed by a newer connection) the runner closes it there.
func (c *WebClient) Done() {
    close(c.to)
}

func (c *WebClient) Identity() simple.Identity {
    return c.identity
}

// Kick closes the underlying websocket, which unblocks read() and in
// turn closes the from channel.
func (c *WebClient) Kick() {
    c.c.Close()
}

func (c *WebClient) send() {
    for m := range c.to {
        bytes, err := json.Marshal(m)
        if err != nil {
            c.errorf("Error marshalling, giving up: %s", err)
            continue
        }
        err = c.c.WriteMessage(websocket.TextMessage, bytes)
        if err != nil {
            c.warnf("Disconnect (send): %s", err)
            continue
        }
    }
}

func (c *WebClient) read() {
    for {
        _, bytes, err := c.c.ReadMessage()
        if err != nil {
            c.debugf("Disconnect (read) (%s, %s): %s", c.ip, c.c.RemoteAddr(), err)
            close(c.from)
            c.c.Close()
            return
        }
        msg, err := message.UnmarshalClient(bytes)
        if err != nil {
            c.debugf("(ClientError) Unable to unmarshal bytes: %s", err)
        } else {
            c.from <-msg
        }
    }
}

func (c *WebClient) debugf(msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(W-%s) %s", c.identity.Id, msg), fargs...)
}
func (c *WebClient) warnf(msg string, fargs ...interface{}) {
    log.Warn(fmt.Sprintf("(W-%s) %s", c.identity.Id, msg), fargs...)
}
func (c *WebClient) errorf(msg string, fargs ...interface{}) {
    log.Error(fmt.Sprintf("(W-%s) %s", c.identity.Id, msg), fargs...)
}
