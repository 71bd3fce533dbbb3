package server

import (
    "fmt"
    "reflect"
    "strings"
    "local/brass/bot"
    "local/brass/client"
    "local/brass/game"
    "local/brass/log"
    "local/brass/message"
    "local/brass/simple"
    "local/brass/store"
)

// Runner owns the one hosted game. It is the only goroutine that touches
// the authoritative GameState: every websocket, bot, and admin request
// funnels through its select loop, so dispatch is serialized without a
// single mutex.
type Runner struct {
    config simple.Config
    st *store.Store
    state simple.GameState

    joins chan seatJoin
    admin chan adminRequest

    seats []*seat
}

// A seat is a chair at the table. The name comes from config; the client
// behind it changes as people connect, drop, and reconnect. Bots are
// seated once at boot and never leave.
type seat struct {
    name string
    identity simple.Identity
    client client.Client
    connected bool
}

type seatJoin struct {
    seat int
    c *client.WebClient
}

type AdminType int
const (
    NoneAdminType AdminType = iota
    StateAdminType
    SaveAdminType
    DeployAdminType
)

type adminRequest struct {
    Type AdminType
    reply chan adminReply
}

type adminReply struct {
    body string
    err error
}

// NewRunner seats the configured roster around an existing state. Seats
// named "bot:X" get a bot client immediately; everyone else starts as an
// empty chair until a websocket attaches.
func NewRunner(config simple.Config, st *store.Store, state simple.GameState, bm *bot.Manager) *Runner {
    seats := []*seat{}
    for _, name := range config.Seats {
        if strings.HasPrefix(name, "bot:") {
            b := bm.NewBot(strings.TrimPrefix(name, "bot:"))
            seats = append(seats, &seat{
                name: b.Identity().Name,
                identity: b.Identity(),
                client: b,
                connected: true,
            })
            continue
        }
        seats = append(seats, &seat{
            name: name,
            identity: simple.NewHumanIdentity(name),
            client: client.EmptyClient{},
            connected: false,
        })
    }

    return &Runner{
        config: config,
        st: st,
        state: state,
        joins: make(chan seatJoin, 2),
        admin: make(chan adminRequest, 2),
        seats: seats,
    }
}

// SeatIndex resolves a config seat name to its player index, -1 when the
// name isn't at this table. Safe to call from any goroutine: seats never
// change after NewRunner.
func (r *Runner) SeatIndex(name string) int {
    for i, s := range r.seats {
        if s.name == name {
            return i
        }
    }
    return -1
}

func (r *Runner) Register(j seatJoin) {
    r.joins <- j
}

func (r *Runner) Admin(t AdminType) (string, error) {
    reply := make(chan adminReply, 1)
    r.admin <- adminRequest{Type: t, reply: reply}
    a := <-reply
    return a.body, a.err
}

// Call with a goroutine to start.
func (r *Runner) Run(initDone chan struct{}) {
    defer r.panicking()

    // Bots are already seated; tell them who they are so the opening
    // player starts thinking.
    for i, s := range r.seats {
        if s.identity.Type == simple.IdentityTypeBot {
            s.client.Send(message.NewYourSeat(s.identity, i))
            s.client.Send(message.NewNotifyState(r.state, i))
        }
    }
    initDone <- struct{}{}

    for {
        r.handleMsg()
    }
}

func (r *Runner) handleMsg() {
    rcase := func(c reflect.Value) reflect.SelectCase {
        return reflect.SelectCase{
            Dir: reflect.SelectRecv,
            Chan: c,
        }
    }

    cases := []reflect.SelectCase{
        rcase(reflect.ValueOf(r.joins)),
        rcase(reflect.ValueOf(r.admin)),
    }
    for _, s := range r.seats {
        c := s.client
        if !s.connected {
            c = client.EmptyClient{}
        }
        cases = append(cases, rcase(reflect.ValueOf(c.Read())))
    }

    chosen, value, ok := reflect.Select(cases)
    if chosen == 0 {
        if !ok {
            panic("r.joins should never be closed!")
        }
        r.handleJoin(value.Interface().(seatJoin))
    } else if chosen == 1 {
        if !ok {
            panic("r.admin should never be closed!")
        }
        r.handleAdmin(value.Interface().(adminRequest))
    } else {
        i := chosen - 2
        if !ok {
            // A closed channel means the websocket dropped.
            r.debugf("Seat %d (%s) disconnected", i, r.seats[i].name)
            r.seats[i].connected = false
            r.seats[i].client = client.EmptyClient{}
        } else {
            r.handleClientMsg(i, value.Interface().(message.Client))
        }
    }
}

func (r *Runner) handleJoin(j seatJoin) {
    s := r.seats[j.seat]
    r.debugf("HandleJoin seat %d (%s)", j.seat, s.name)

    // A newer connection claims the seat; the old one gets kicked so its
    // read loop winds down.
    if s.connected {
        if old, isWeb := s.client.(*client.WebClient); isWeb {
            r.debugf("Seat %d reclaimed, kicking the old connection", j.seat)
            old.Done()
            old.Kick()
        }
    }
    s.client = j.c
    s.connected = true

    j.c.Send(message.NewYourSeat(s.identity, j.seat))
    j.c.Send(message.NewNotifyState(r.state, j.seat))
}

func (r *Runner) handleClientMsg(i int, m message.Client) {
    switch t := m.CType; t {
        case message.DoEvent:
            r.handleDoEvent(i, m.Data.(game.Event))
        case message.RequestState:
            r.seats[i].client.Send(message.NewNotifyState(r.state, i))
        default:
            r.debugf("(ClientError) CType '%s' unhandled by Runner", message.CTypeNames[t])
            r.seats[i].client.Send(message.NewNotifyEventError(
                game.ErrorKindNames[game.InvalidPhaseError],
                fmt.Sprintf("the table doesn't understand %s", message.CTypeNames[t])))
    }
}

// Either the engine refuses the event and only the sender hears about it,
// or the new state is committed, snapshotted, and everyone gets the event
// with the log lines it produced.
func (r *Runner) handleDoEvent(i int, e game.Event) {
    if i != r.state.CurrentPlayer {
        r.seats[i].client.Send(message.NewNotifyEventError(
            game.ErrorKindNames[game.InvalidPhaseError],
            fmt.Sprintf("it is %s's turn", r.seats[r.state.CurrentPlayer].name)))
        return
    }

    logsBefore := len(r.state.Log)
    next, gerr := game.Dispatch(r.state, e)
    if gerr != nil {
        r.debugf("Seat %d event %s refused: %s", i, game.EventNames[e.Type], gerr)
        r.seats[i].client.Send(message.NewNotifyEventError(
            game.ErrorKindNames[gerr.Kind], gerr.Detail))
        return
    }

    r.state = next
    delta := r.state.Log[logsBefore:]
    r.broadcast(message.NewNotifyEvent(i, e, r.state, delta))

    if err := r.st.SaveLatest(&r.state); err != nil {
        r.errorf("Rolling snapshot failed: %s", err)
    }
}

func (r *Runner) handleAdmin(req adminRequest) {
    switch req.Type {
        case StateAdminType:
            req.reply <- adminReply{body: r.state.JsonPretty()}
        case SaveAdminType:
            name, err := r.st.SaveStamped(&r.state)
            req.reply <- adminReply{body: name, err: err}
        case DeployAdminType:
            r.broadcast(message.NewHotDeploy(
                "The table is restarting for an update.  Stay here to be reseated automatically.",
                2000))
            req.reply <- adminReply{body: "OK"}
        default:
            req.reply <- adminReply{err: fmt.Errorf("unknown admin request %d", req.Type)}
    }
}

func (r *Runner) broadcast(m message.Server) {
    for _, s := range r.seats {
        s.client.Send(m)
    }
}

func (r *Runner) panicking() {
    if p := recover(); p != nil {
        log.Stop("runner panic", p)
        panic(p)
    }
}

func (r *Runner) debugf(msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(Runner) %s", msg), fargs...)
}

func (r *Runner) errorf(msg string, fargs ...interface{}) {
    log.Error(fmt.Sprintf("(Runner) %s", msg), fargs...)
}
