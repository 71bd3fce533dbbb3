package server

import (
    "fmt"
    "net/http"
    "os"
    "runtime/debug"
    "strings"
    "github.com/gorilla/mux"
    "github.com/gorilla/websocket"
    "local/brass/bot"
    "local/brass/client"
    "local/brass/game"
    "local/brass/log"
    "local/brass/message"
    "local/brass/simple"
    "local/brass/store"
)

// Seat colors in roster order.
var seatColors = []simple.PlayerColor{
    simple.TealPlayerColor,
    simple.OrangePlayerColor,
    simple.PurplePlayerColor,
    simple.RedPlayerColor,
}

type Server struct {
    config simple.Config
    upgrader websocket.Upgrader
    st *store.Store
    bm *bot.Manager
    runner *Runner
}

func New(config simple.Config) *Server {
    log.Info("New: running")
    initDone := make(chan struct{}, 1)

    st, err := store.New(config.SnapshotDirectory)
    if err != nil {
        log.Stop("server New panic", err)
        panic(err)
    }

    bm := bot.NewManager()
    state := openingState(config, st, bm)

    runner := NewRunner(config, st, state, bm)
    go runner.Run(initDone)

    log.Info("New: Waiting for initDone on created resources")
    <-initDone
    log.Info("New: Done")

    return &Server{
        config: config,
        upgrader: websocket.Upgrader{},
        st: st,
        bm: bm,
        runner: runner,
    }
}

// Restore beats the rolling snapshot beats a fresh deal. Seats map to
// players positionally, so a restored game should run with the same
// roster it was saved under.
func openingState(config simple.Config, st *store.Store, bm *bot.Manager) simple.GameState {
    if config.Restore != "" {
        state, err := st.Load(config.Restore)
        if err != nil {
            log.Stop("server restore panic", err)
            panic(err)
        }
        log.Info("Restored game from %s", config.Restore)
        return state
    }
    if st.HasLatest() {
        state, err := st.Load("latest.snap")
        if err != nil {
            log.Stop("server restore panic", err)
            panic(err)
        }
        log.Info("Resumed game from the rolling snapshot")
        return state
    }

    setups := []simple.PlayerSetup{}
    for i, name := range config.Seats {
        identity := simple.NewHumanIdentity(name)
        if strings.HasPrefix(name, "bot:") {
            identity = bm.Identity(strings.TrimPrefix(name, "bot:"))
        }
        setups = append(setups, simple.PlayerSetup{
            Identity: identity,
            Color: seatColors[i%len(seatColors)],
        })
    }
    state, gerr := game.Init(setups)
    if gerr != nil {
        log.Stop("server init panic", gerr)
        panic(gerr)
    }
    log.Info("Dealt a fresh game for %d seats", len(setups))
    return state
}

func (s *Server) Run() {
    r := mux.NewRouter()
    r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
        s.handleWs(w, req)
    })
    r.PathPrefix("/a/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
        s.handleAdmin(w, req)
    })
    http.Handle("/", r)

    addr := fmt.Sprintf("0.0.0.0:%d", s.config.ServerPort)
    log.Debug("Listening on %s", addr)
    log.Fatal("ListenAndServe return: %s", http.ListenAndServe(addr, nil))
}

// If this goroutine (for the web request) panics, we will terminate the
// websocket. For that reason it only registers the connection with the
// runner and completes quickly.
func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
    name := r.URL.Query().Get("seat")
    if name == "" {
        s.clientError(w, "ws requires a ?seat= name")
        return
    }
    seatIndex := s.runner.SeatIndex(name)
    if seatIndex < 0 {
        s.clientError(w, "No seat named '%s' at this table", name)
        return
    }

    ws, err := s.upgrader.Upgrade(w, r, nil)
    if err != nil {
        s.clientError(w, "Can't upgrade websocket: %e", err)
        return
    }
    c := client.NewWebClient(simple.NewHumanIdentity(name), ws, getIP(r))
    defer func() {
        if p := recover(); p != nil {
            s.cServerError(c, fmt.Sprintf("Panic in websocket goroutine: %s\n%s",
                p,
                string(debug.Stack())))
        }
    }()
    go c.Run()

    s.runner.Register(seatJoin{seat: seatIndex, c: c})
}

func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
    p := strings.TrimPrefix(r.URL.Path, "/a/")
    switch p {
        case "state":
            body, err := s.runner.Admin(StateAdminType)
            if err != nil {
                log.Error("Admin state failed: %s", err)
                s.adminError(w)
                return
            }
            w.Header().Set("Content-Type", "application/json")
            w.Write([]byte(body))
        case "save":
            name, err := s.runner.Admin(SaveAdminType)
            if err != nil {
                log.Error("Admin save failed: %s", err)
                s.adminError(w)
                return
            }
            log.Info("Admin snapshot written: %s", name)
            w.Write([]byte(name))
        case "hotdeploy":
            s.handleHotDeploy(w)
        default:
            log.Error("URL Path has no routes: /a/%s", p)
            s.adminError(w)
    }
}

func (s *Server) handleHotDeploy(w http.ResponseWriter) {
    log.Info("HotDeploy admin request recieved (/a/hotdeploy)")
    if _, err := s.runner.Admin(DeployAdminType); err != nil {
        log.Error("Admin deploy failed: %s", err)
        s.adminError(w)
        return
    }

    log.Fatal("Hotdeploy prepared: Shutting down.")
    s.adminSuccess(w)
    log.Stop("HotDeploy", nil)
    os.Exit(0)
}

func getIP(r *http.Request) string {
    forwarded := r.Header.Get("X-FORWARDED-FOR")
    if forwarded != "" {
        return forwarded
    }
    return r.RemoteAddr
}

func (s *Server) clientError(w http.ResponseWriter, m string, fs ...interface{}) {
    m = fmt.Sprintf("(ClientError) %s", m)
    log.Info(m, fs...)
    http.Error(w, m, 400)
}

func (s *Server) adminSuccess(w http.ResponseWriter) {
    w.Write([]byte("OK"))
}

func (s *Server) adminError(w http.ResponseWriter) {
    http.Error(w, "FAIL", 400)
}

func (s *Server) cServerError(c *client.WebClient, e string, fargs ...interface{}) {
    log.Error(e, fargs...)
    m := message.NewInternalError("The table hit an internal error; rejoin to resync")
    c.Send(m)
}
