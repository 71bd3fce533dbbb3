package simple

import (
    "fmt"
)

type IdentityType int
const (
    IdentityTypeNone IdentityType = iota
    IdentityTypeHuman
    IdentityTypeBot
    IdentityTypeObserver
)
var IdentityTypeNames = map[IdentityType]string {
    IdentityTypeNone: "IdentityTypeNone",
    IdentityTypeHuman: "IdentityTypeHuman",
    IdentityTypeBot: "IdentityTypeBot",
    IdentityTypeObserver: "IdentityTypeObserver",
}

// Id prefix: H = Human, B = Bot, O = Observer, "" is the EmptyIdentity.
type Identity struct {
    Id string
    Name string
    Type IdentityType
}

func NewIdentity(id string, name string, idtype IdentityType) Identity {
    return Identity{
        Id: id,
        Name: name,
        Type: idtype,
    }
}

func NewHumanIdentity(name string) Identity {
    return NewIdentity(fmt.Sprintf("H%s", name), name, IdentityTypeHuman)
}
func NewBotIdentity(id string, name string) Identity {
    return NewIdentity(id, name, IdentityTypeBot)
}
func NewObserverIdentity(n int) Identity {
    return NewIdentity(fmt.Sprintf("O%d", n), fmt.Sprintf("Observer%d", n), IdentityTypeObserver)
}

var EmptyIdentity = NewIdentity("", "", IdentityTypeNone)

func (a Identity) String() string {
    return fmt.Sprintf("(I:%s-%s)", a.Id, a.Name)
}
