package simple

const (
    StartingMoney = 17
    StartingIncome = 10
    MaxIncome = 30
    MinIncome = -10
    HandSize = 8
)

// MatPile tracks how many tiles of one industry are still on a player's
// mat. Levels[0] is level 1; building or developing always takes the
// lowest level with tiles left.
type MatPile struct {
    Type IndustryType
    Levels []int
}

// PlayerSetup is what the host hands us per seat when a game starts.
type PlayerSetup struct {
    Identity Identity
    Color PlayerColor
}

type Player struct {
    Identity Identity
    Color PlayerColor
    Money int
    Spent int
    Income int
    Points int
    Hand []Card
    Industries []Industry
    Links []Link
    Mat []MatPile
}

func NewPlayer(i Identity, c PlayerColor) Player {
    return Player{
        Identity: i,
        Color: c,
        Money: StartingMoney,
        Income: StartingIncome,
        Hand: []Card{},
        Industries: []Industry{},
        Links: []Link{},
        Mat: NewBaseMat(),
    }
}

// LowestMatLevel is the next tile of a type the player could put down, or
// 0 if the pile is out.
func (p Player) LowestMatLevel(t IndustryType) int {
    for _, pile := range p.Mat {
        if pile.Type != t {
            continue
        }
        for i, n := range pile.Levels {
            if n > 0 {
                return i + 1
            }
        }
    }
    return 0
}

func (p *Player) TakeMatTile(t IndustryType, level int) {
    for i := range p.Mat {
        if p.Mat[i].Type != t {
            continue
        }
        if p.Mat[i].Levels[level-1] <= 0 {
            break
        }
        p.Mat[i].Levels[level-1]--
        return
    }
    panic("Taking a mat tile that isn't there")
}

func (p Player) HasWild() bool {
    for _, c := range p.Hand {
        if c.Wild() {
            return true
        }
    }
    return false
}

// InNetwork says whether a location is part of the player's network: an
// industry of theirs sits there, or one of their links touches it.
func (p Player) InNetwork(id string) bool {
    for _, ind := range p.Industries {
        if ind.Location == id {
            return true
        }
    }
    for _, l := range p.Links {
        if l.Touches(id) {
            return true
        }
    }
    return false
}

func (p Player) HasPresence() bool {
    return len(p.Industries) > 0 || len(p.Links) > 0
}
