package bot

import (
    "encoding/json"
    "fmt"
    "time"
    "local/brass/game"
    "local/brass/log"
    "local/brass/message"
    "local/brass/simple"
)

// Bot plays a seat the way a websocket player would: it gets the same
// Server messages and answers with the same Client messages, so the
// runner can't tell the difference.  All thinking happens on the Run
// goroutine; Send is the only thing other goroutines touch.
type Bot struct {
    identity simple.Identity
    brain Brain

    // Tracked from broadcasts.  seat is -1 until YourSeat lands.
    seat int
    state simple.GameState

    // pending counts our own events the runner hasn't answered yet.  We
    // never plan while any are in flight, or we'd play the same turn
    // twice.  errors counts consecutive rejections; a few in a row means
    // our picture of the table has drifted and we should ask for the
    // real one.
    pending int
    errors int

    inMsg chan message.Server
    outMsg chan message.Client
}

func (b *Bot) Run() {
    defer b.panicking()
    for msg := range b.inMsg {
        b.dispatch(msg)
    }
}

func (b *Bot) Send(msg message.Server) {
    // deepcopy
    bytes, err := json.Marshal(msg)
    if err != nil {
        panic(fmt.Sprintf("Bot: Error marshalling, giving up: '%s' message.Server: %v", err, msg))
    }
    msg, err = message.UnmarshalServer(bytes)
    if err != nil {
        panic(fmt.Sprintf("Bot: Error unmarshalling, giving up: '%s' message.Server: %v", err, msg))
    }
    b.inMsg <- msg
}

func (b *Bot) Read() chan message.Client {
    return b.outMsg
}

func (b *Bot) Identity() simple.Identity {
    return b.identity
}

func (b *Bot) Done() {
    close(b.inMsg)
}

func (b *Bot) dispatch(m message.Server) {
    switch t := m.SType; t {
        case message.YourSeat:
            d := m.Data.(message.YourSeatData)
            b.seat = d.Seat
            b.debugf("I am seat %d", b.seat)
        case message.NotifyState:
            d := m.Data.(message.NotifyStateData)
            b.state = d.State
            b.pending = 0
            b.errors = 0
            b.maybeAct()
        case message.NotifyEvent:
            d := m.Data.(message.NotifyEventData)
            b.state = d.State
            b.errors = 0
            if d.Player == b.seat && b.pending > 0 {
                b.pending--
            }
            b.maybeAct()
        case message.NotifyEventError:
            d := m.Data.(message.NotifyEventErrorData)
            b.errorf("The table refused my event: %s (%s)", d.Detail, d.Kind)
            if b.pending > 0 {
                b.pending--
            }
            b.errors++
            if b.errors >= 3 {
                b.errors = 0
                b.emit(message.NewRequestState())
                return
            }
            b.maybeAct()
        case message.InternalError:
            d := m.Data.(message.InternalErrorData)
            b.errorf("The table reported an internal error: %s", d.Detail)
        case message.HotDeploy:
            // The reconnect is the runner's problem, not ours.
        default:
            b.debugf("Ignoring SType message.%s", t)
    }
}

// maybeAct plans and plays when it is our seat's turn and the table is
// quiet.  Called after every broadcast; almost always a no-op.
func (b *Bot) maybeAct() {
    if b.pending > 0 || b.seat < 0 {
        return
    }
    if b.state.Phase != simple.PlayingPhase || b.state.CurrentPlayer != b.seat {
        return
    }
    if b.state.Turn.Type != simple.NoneTurnStateType {
        // A half-made action is hanging, which happens when one event of
        // a run is refused.  Clear it and plan fresh off the next
        // broadcast.
        b.emit(message.NewDoEvent(game.Cancel()))
        return
    }

    events := b.brain.TakeAction(b.state, b.seat)
    if len(events) == 0 {
        events = []game.Event{game.EndTurn()}
    }
    b.debugf("Playing %d events", len(events))
    msgs := []message.Client{}
    for _, e := range events {
        msgs = append(msgs, message.NewDoEvent(e))
    }
    b.emit(msgs...)
}

// emit paces outgoing messages so the table doesn't blur for the humans
// watching.  Every DoEvent on the wire bumps pending.
func (b *Bot) emit(msgs ...message.Client) {
    for _, m := range msgs {
        if m.CType == message.DoEvent {
            b.pending++
        }
        time.Sleep(200 * time.Millisecond)
        b.outMsg <- m
    }
}

func (b *Bot) panicking() {
    if r := recover(); r != nil {
        s := fmt.Sprintf("bot panic (%s)", b.identity)
        log.Stop(s, r)
        panic(r)
    }
}

func (b *Bot) debugf(msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(Bot %s) %s", b.brain.Name(), msg), fargs...)
}

func (b *Bot) errorf(msg string, fargs ...interface{}) {
    log.Error(fmt.Sprintf("(Bot %s) %s", b.brain.Name(), msg), fargs...)
}
