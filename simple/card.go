package simple

type CardType int
const (
    NoneCardType CardType = iota
    LocationCardType
    IndustryCardType
    WildLocationCardType
    WildIndustryCardType
)

var CardTypeNames = map[CardType]string{
    NoneCardType: "None",
    LocationCardType: "Location",
    IndustryCardType: "Industry",
    WildLocationCardType: "Wild Location",
    WildIndustryCardType: "Wild Industry",
}

// CardColor is the network color printed on location cards. It decides
// which player counts a card is dealt into.
type CardColor int
const (
    NoneCardColor CardColor = iota
    TealCardColor
    YellowCardColor
    RedCardColor
)

var CardColorNames = map[CardColor]string{
    NoneCardColor: "None",
    TealCardColor: "Teal",
    YellowCardColor: "Yellow",
    RedCardColor: "Red",
}

func (c CardColor) MinPlayers() int {
    switch c {
        case YellowCardColor:
            return 3
        case RedCardColor:
            return 4
    }
    return 2
}

// Card is one card from the deck. Type says which of the other fields
// matter: Location and Color for location cards, Industries for industry
// cards, neither for wilds. A card lives in exactly one place at a time
// (a hand, the draw pile, the discard pile, or a wild pile).
type Card struct {
    Id string
    Type CardType
    Location string
    Color CardColor
    Industries []IndustryType
}

func (c Card) Wild() bool {
    return c.Type == WildLocationCardType || c.Type == WildIndustryCardType
}

func (c Card) AllowsIndustry(t IndustryType) bool {
    switch c.Type {
        case IndustryCardType:
            for _, i := range c.Industries {
                if i == t {
                    return true
                }
            }
            return false
        case LocationCardType, WildLocationCardType, WildIndustryCardType:
            return true
    }
    return false
}

func ContainsCard(cards []Card, id string) bool {
    for _, c := range cards {
        if c.Id == id {
            return true
        }
    }
    return false
}

// RemoveCard takes a card out of a pile by id. The second return is false
// if the card isn't there.
func RemoveCard(cards []Card, id string) ([]Card, Card, bool) {
    for i, c := range cards {
        if c.Id == id {
            r := []Card{}
            r = append(r, cards[:i]...)
            r = append(r, cards[i+1:]...)
            return r, c, true
        }
    }
    return cards, Card{}, false
}
