package bot

import (
    "fmt"
    "local/brass/message"
    "local/brass/simple"
)

type Manager struct {}

func NewManager() *Manager {
    return &Manager{}
}

// NewBot builds and starts a bot for a config seat name (the "brindley"
// in "bot:brindley").  Unknown names get the default weights, so a typo
// still fields a player.
func (m *Manager) NewBot(name string) *Bot {
    var brain Brain
    if name == "navvy" {
        brain = &BuildBrain{name: name}
    } else if w, ok := botWeights[name]; ok {
        brain = &PlanBrain{name: name, weights: w}
    } else {
        brain = &PlanBrain{name: name, weights: defaultWeights}
    }

    b := &Bot{
        identity: m.Identity(name),
        brain: brain,
        seat: -1,
        inMsg: make(chan message.Server, 10),
        outMsg: make(chan message.Client, 10),
    }
    go b.Run()
    return b
}

var botIdentities = map[string]simple.Identity{
    "brindley": simple.NewBotIdentity("B1", "Brindley (Bot)"),
    "telford": simple.NewBotIdentity("B2", "Telford (Bot)"),
    "navvy": simple.NewBotIdentity("B3", "Navvy (Bot)"),
}

var botWeights = map[string]Weights{
    "brindley": brindleyWeights,
    "telford": telfordWeights,
}

// Identity is stable for a given name, so a restored snapshot seats the
// same roster it was saved under.
func (m *Manager) Identity(name string) simple.Identity {
    if b, ok := botIdentities[name]; ok {
        return b
    }
    return simple.NewBotIdentity(fmt.Sprintf("B-%s", name), fmt.Sprintf("%s (Bot)", name))
}
