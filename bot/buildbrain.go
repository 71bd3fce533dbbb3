package bot

import (
    "fmt"
    "local/brass/game"
    "local/brass/log"
    "local/brass/simple"
)

// BuildBrain is the sparring partner: it plays the first build the rules
// will take, falls back to the first link, then a loan, then gives the
// turn up.  No weights, no lookahead.  Useful for flushing out rules
// problems and for giving PlanBrain something to beat.
type BuildBrain struct {
    name string
}

func (b *BuildBrain) Name() string {
    return b.name
}

func (b *BuildBrain) TakeAction(s simple.GameState, seat int) []game.Event {
    for _, card := range distinctCards(s.Players[seat].Hand) {
        for _, l := range s.Board.Locations {
            if l.Kind != simple.CityLocationKind {
                continue
            }
            for _, t := range slotTypes(l) {
                events := []game.Event{
                    game.SelectAction(simple.BuildActionType),
                    game.SelectCard(card.Id),
                    game.SelectLocation(l.Id),
                    game.SelectIndustry(t),
                    game.Confirm(),
                }
                if _, ok := dispatchAll(s, events); ok {
                    b.debugf(seat, "Building %s at %s", simple.IndustryNames[t], l.Id)
                    return events
                }
            }
        }
    }

    if cards := discards(&s, seat, 1); len(cards) > 0 {
        for _, conn := range s.Board.Connections {
            events := []game.Event{
                game.SelectAction(simple.NetworkActionType),
                game.SelectCard(cards[0].Id),
                game.SelectLink(conn.A, conn.B),
                game.Confirm(),
            }
            if _, ok := dispatchAll(s, events); ok {
                b.debugf(seat, "Linking %s to %s", conn.A, conn.B)
                return events
            }
        }

        loan := []game.Event{
            game.SelectAction(simple.LoanActionType),
            game.SelectCard(cards[0].Id),
            game.Confirm(),
        }
        if _, ok := dispatchAll(s, loan); ok {
            b.debugf(seat, "Nothing to build, taking a loan")
            return loan
        }
    }

    b.debugf(seat, "Nothing to do, ending my turn")
    return []game.Event{game.EndTurn()}
}

func (b *BuildBrain) debugf(seat int, msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(Bot %s) (P%d) %s", b.name, seat, msg), fargs...)
}
