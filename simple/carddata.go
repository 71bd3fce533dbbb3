package simple

import (
    "fmt"
)

type deckEntry struct {
    copies int
    minPlayers int
    card Card
}

// The deck. Location cards carry the color of their board area: teal cards
// are always in, yellow joins at 3 players, red at 4. Industry card mixes
// grow the same way.
var baseDeckEntries = []deckEntry{
    {3, 2, Card{Type: LocationCardType, Location: "birmingham", Color: TealCardColor}},
    {3, 2, Card{Type: LocationCardType, Location: "coventry", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "dudley", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "kidderminster", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "wolverhampton", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "worcester", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "coalbrookdale", Color: TealCardColor}},
    {2, 2, Card{Type: LocationCardType, Location: "walsall", Color: TealCardColor}},
    {1, 2, Card{Type: LocationCardType, Location: "redditch", Color: TealCardColor}},
    {1, 2, Card{Type: LocationCardType, Location: "nuneaton", Color: TealCardColor}},
    {1, 2, Card{Type: LocationCardType, Location: "tamworth", Color: TealCardColor}},

    {3, 3, Card{Type: LocationCardType, Location: "stoke", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "stone", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "leek", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "uttoxeter", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "stafford", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "cannock", Color: YellowCardColor}},
    {2, 3, Card{Type: LocationCardType, Location: "burton", Color: YellowCardColor}},

    {3, 4, Card{Type: LocationCardType, Location: "derby", Color: RedCardColor}},
    {2, 4, Card{Type: LocationCardType, Location: "belper", Color: RedCardColor}},

    {4, 2, Card{Type: IndustryCardType, Industries: []IndustryType{CottonIndustryType, ManufacturerIndustryType}}},
    {2, 3, Card{Type: IndustryCardType, Industries: []IndustryType{CottonIndustryType, ManufacturerIndustryType}}},
    {2, 2, Card{Type: IndustryCardType, Industries: []IndustryType{CoalIndustryType}}},
    {1, 3, Card{Type: IndustryCardType, Industries: []IndustryType{CoalIndustryType}}},
    {4, 2, Card{Type: IndustryCardType, Industries: []IndustryType{IronIndustryType}}},
    {2, 2, Card{Type: IndustryCardType, Industries: []IndustryType{PotteryIndustryType}}},
    {1, 4, Card{Type: IndustryCardType, Industries: []IndustryType{PotteryIndustryType}}},
    {5, 2, Card{Type: IndustryCardType, Industries: []IndustryType{BreweryIndustryType}}},
    {1, 3, Card{Type: IndustryCardType, Industries: []IndustryType{BreweryIndustryType}}},
}

// NewBaseDeck builds the unshuffled deck for a player count. Ids are stable
// across calls so a rebuilt deck at the era turnover carries the same card
// identities.
func NewBaseDeck(players int) []Card {
    r := []Card{}
    seen := map[string]int{}
    for _, e := range baseDeckEntries {
        if players < e.minPlayers {
            continue
        }
        for i := 0; i < e.copies; i++ {
            c := e.card
            key := deckEntryKey(c)
            seen[key]++
            c.Id = fmt.Sprintf("%s_%d", key, seen[key])
            r = append(r, c)
        }
    }
    return r
}

func deckEntryKey(c Card) string {
    if c.Type == LocationCardType {
        return c.Location
    }
    key := ""
    for _, t := range c.Industries {
        if key != "" {
            key += "_"
        }
        switch t {
            case CottonIndustryType:
                key += "cotton"
            case CoalIndustryType:
                key += "coal"
            case IronIndustryType:
                key += "iron"
            case ManufacturerIndustryType:
                key += "manufacturer"
            case PotteryIndustryType:
                key += "pottery"
            case BreweryIndustryType:
                key += "brewery"
        }
    }
    return key
}

// NewWildPiles returns the wild location and wild industry piles, one card
// of each per seat. Spent wilds go back to these piles, and a hand holding
// a wild can't scout, so the piles can't run dry.
func NewWildPiles(players int) ([]Card, []Card) {
    locs := []Card{}
    inds := []Card{}
    for i := 1; i <= players; i++ {
        locs = append(locs, Card{Id: fmt.Sprintf("wild_location_%d", i), Type: WildLocationCardType})
        inds = append(inds, Card{Id: fmt.Sprintf("wild_industry_%d", i), Type: WildIndustryCardType})
    }
    return locs, inds
}
