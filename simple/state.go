package simple

import (
    "encoding/json"
    "fmt"
    "time"
)

// This is what sits on the table when you unbox Brass Birmingham: the
// board, both markets, every player's mat and hand, the deck piles, and
// the activity feed. It doesn't know any business logic about playing the
// game; the game package owns the rules and mutates this through cloned
// copies. Seed drives the next shuffle so a serialized state replays the
// same way it would have played live.
type GameState struct {
    Phase Phase
    Era Era
    Round int
    RoundCap int

    // Order is the seat order of play this round (player indexes);
    // TurnIndex walks it. CurrentPlayer is always Order[TurnIndex], kept
    // denormalized so clients don't chase the indirection.
    Order []int
    TurnIndex int
    CurrentPlayer int
    ActionsLeft int
    Players []Player
    Board Board
    CoalMarket Market
    IronMarket Market
    Draw []Card
    Discard []Card
    WildLocations []Card
    WildIndustries []Card
    Turn TurnState
    Scores []Score
    Log []LogEntry
    Winner int
    Seed int64
    NextSeq int
}

// RoundCaps is rounds per era by player count.
var RoundCaps = map[int]int{
    2: 10,
    3: 9,
    4: 8,
}

func (s *GameState) Current() *Player {
    return &s.Players[s.CurrentPlayer]
}

// GetIndustryAt finds the first industry of a type at a location in seat
// order. Returns the owning player index and the index into their
// Industries slice.
func (s *GameState) GetIndustryAt(id string, t IndustryType) (int, int, bool) {
    for pi := range s.Players {
        for ii, ind := range s.Players[pi].Industries {
            if ind.Location == id && ind.Type == t {
                return pi, ii, true
            }
        }
    }
    return 0, 0, false
}

// IndustriesAt returns every industry standing at a location in
// construction order, oldest first. The slot derivation leans on this
// order.
func (s *GameState) IndustriesAt(id string) []Industry {
    r := []Industry{}
    for _, p := range s.Players {
        for _, ind := range p.Industries {
            if ind.Location == id {
                r = append(r, ind)
            }
        }
    }
    for i := 0; i < len(r); i++ {
        for j := i + 1; j < len(r); j++ {
            if r[j].Seq < r[i].Seq {
                r[i], r[j] = r[j], r[i]
            }
        }
    }
    return r
}

func (s *GameState) Links(era Era) []Link {
    r := []Link{}
    for _, p := range s.Players {
        for _, l := range p.Links {
            if l.Era == era {
                r = append(r, l)
            }
        }
    }
    return r
}

// HasLink says whether anybody has built on the corridor between a and b,
// in any era. One corridor carries at most one link for the whole game.
func (s *GameState) HasLink(a, b string) bool {
    for _, p := range s.Players {
        for _, l := range p.Links {
            if l.Joins(a, b) {
                return true
            }
        }
    }
    return false
}

// ResourceOnBoard totals the cubes of a kind sitting on unflipped tiles.
// The opponent-overbuild gate wants this together with the market count.
func (s *GameState) ResourceOnBoard(kind ResourceKind) int {
    r := 0
    for _, p := range s.Players {
        for _, ind := range p.Industries {
            if !ind.Flipped && ind.Type.Produces() == kind {
                r += ind.Resources
            }
        }
    }
    return r
}

func (s *GameState) MerchantBeer() int {
    r := 0
    for _, l := range s.Board.Locations {
        if l.Kind == MerchantLocationKind {
            r += l.Beer
        }
    }
    return r
}

func (s *GameState) AppendLog(kind LogKind, format string, fargs ...interface{}) {
    s.Log = append(s.Log, LogEntry{
        Message: fmt.Sprintf(format, fargs...),
        Kind: kind,
        Time: time.Now(),
    })
}

// Clone deep-copies the whole aggregate through a json round trip. Slow
// and sure beats subtle slice aliasing; resolvers mutate the clone and
// throw it away on any validation failure.
func (s *GameState) Clone() GameState {
    var r GameState
    if err := json.Unmarshal([]byte(s.Json()), &r); err != nil {
        panic(fmt.Sprintf("Unable to clone game state (%s)", err))
    }
    return r
}

func (s *GameState) Json() string {
    r, err := json.Marshal(s)
    if err != nil {
        panic(fmt.Sprintf("Unable to marshal game state to json (%s): %+v", err, *s))
    }
    return string(r)
}

func (s *GameState) JsonPretty() string {
    r, err := json.MarshalIndent(s, "", "  ")
    if err != nil {
        panic(fmt.Sprintf("Unable to marshal game state to pretty json (%s): %+v", err, *s))
    }
    return string(r)
}

func ParseGameState(data []byte) (GameState, error) {
    var r GameState
    if err := json.Unmarshal(data, &r); err != nil {
        return GameState{}, err
    }
    return r, nil
}
