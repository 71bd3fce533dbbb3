package game

import (
    "fmt"
    "math/rand"
    "local/brass/simple"
)

// Init deals a fresh Canal Era game for the given seats.  Seat order is
// the first round's turn order.
func Init(setups []simple.PlayerSetup) (simple.GameState, *Error) {
    if len(setups) < 2 || len(setups) > 4 {
        return simple.GameState{}, newError(InvalidPlayerCountError,
            "need between 2 and 4 players, got %d", len(setups))
    }

    s := simple.GameState{
        Phase: simple.PlayingPhase,
        Era: simple.CanalEra,
        Round: 1,
        RoundCap: simple.RoundCaps[len(setups)],
        Board: simple.NewBirminghamBoard(),
        CoalMarket: simple.NewCoalMarket(),
        IronMarket: simple.NewIronMarket(),
        Draw: simple.NewBaseDeck(len(setups)),
        Discard: []simple.Card{},
        Turn: simple.NoneTurnState,
        Scores: []simple.Score{},
        Winner: -1,
        Seed: rand.Int63(),
        NextSeq: 1,
    }
    s.WildLocations, s.WildIndustries = simple.NewWildPiles(len(setups))
    for i, su := range setups {
        s.Players = append(s.Players, simple.NewPlayer(su.Identity, su.Color))
        s.Order = append(s.Order, i)
    }
    s.TurnIndex = 0
    s.CurrentPlayer = 0
    s.ActionsLeft = actionsPerTurn(&s)

    shuffleDraw(&s)
    dealHands(&s)

    s.AppendLog(simple.SystemLogKind, "Game started with %d players", len(setups))
    s.AppendLog(simple.SystemLogKind, "Canal Era started")
    return s, nil
}

// Dispatch applies one event to a state and returns the successor.  The
// input is never touched: on success the caller gets a mutated copy, on
// failure the input comes straight back with the rejection.
func Dispatch(s simple.GameState, e Event) (simple.GameState, *Error) {
    if s.Phase != simple.PlayingPhase {
        return s, newError(InvalidPhaseError, "the game is not in progress")
    }

    switch e.Type {
        case SelectActionEventType:
            return selectAction(s, e)
        case SelectCardEventType:
            return selectCard(s, e)
        case SelectLocationEventType:
            return selectLocation(s, e)
        case SelectIndustryEventType:
            return selectIndustry(s, e)
        case SelectLinkEventType:
            return selectLink(s, e)
        case ConfirmEventType:
            return confirm(s)
        case CancelEventType:
            return cancel(s)
        case EndTurnEventType:
            return endTurnEvent(s)
    }
    return s, newError(InvalidPhaseError, "unknown event type %d", e.Type)
}

// CanDispatch reports whether an event would be accepted, keeping none of
// its effects.
func CanDispatch(s simple.GameState, e Event) bool {
    _, err := Dispatch(s, e)
    return err == nil
}

func selectAction(s simple.GameState, e Event) (simple.GameState, *Error) {
    if s.Turn.Type != simple.NoneTurnStateType {
        return s, newError(InvalidPhaseError, "already in the middle of a %s action",
            simple.TurnStateNames[s.Turn.Type])
    }

    var tst simple.TurnStateType
    switch e.Action {
        case simple.BuildActionType:
            tst = simple.BuildingTurnState
        case simple.DevelopActionType:
            tst = simple.DevelopingTurnState
        case simple.SellActionType:
            tst = simple.SellingTurnState
        case simple.NetworkActionType:
            tst = simple.NetworkingTurnState
        case simple.LoanActionType:
            tst = simple.TakingLoanTurnState
        case simple.ScoutActionType:
            tst = simple.ScoutingTurnState
        default:
            return s, newError(InvalidPhaseError, "there is no such action")
    }

    next := s.Clone()
    next.Turn = simple.TurnState{Type: tst}
    return next, nil
}

func selectCard(s simple.GameState, e Event) (simple.GameState, *Error) {
    if s.Turn.Type == simple.NoneTurnStateType {
        return s, newError(InvalidPhaseError, "select an action before a card")
    }
    if !simple.ContainsCard(s.Current().Hand, e.Card) {
        return s, newError(SelectionMissingError, "card %s is not in your hand", e.Card)
    }

    next := s.Clone()
    if next.Turn.Type == simple.ScoutingTurnState && next.Turn.Card != "" {
        if e.Card == next.Turn.Card || containsString(next.Turn.ExtraCards, e.Card) {
            return s, newError(SelectionMissingError, "card %s is already set aside", e.Card)
        }
        if len(next.Turn.ExtraCards) >= 2 {
            return s, newError(InvalidPhaseError, "three cards are already set aside")
        }
        next.Turn.ExtraCards = append(next.Turn.ExtraCards, e.Card)
        return next, nil
    }
    next.Turn.Card = e.Card
    return next, nil
}

func selectLocation(s simple.GameState, e Event) (simple.GameState, *Error) {
    if s.Turn.Type != simple.BuildingTurnState && s.Turn.Type != simple.SellingTurnState {
        return s, newError(InvalidPhaseError, "a %s action doesn't take a location",
            simple.TurnStateNames[s.Turn.Type])
    }
    if _, ok := s.Board.GetLocation(e.Location); !ok {
        return s, newError(SelectionMissingError, "there is no location called %s", e.Location)
    }

    next := s.Clone()
    next.Turn.Location = e.Location
    return next, nil
}

func selectIndustry(s simple.GameState, e Event) (simple.GameState, *Error) {
    if _, ok := simple.IndustryNames[e.Industry]; !ok || e.Industry == simple.NoneIndustryType {
        return s, newError(SelectionMissingError, "there is no such industry")
    }

    switch s.Turn.Type {
        case simple.BuildingTurnState, simple.SellingTurnState:
            next := s.Clone()
            next.Turn.Industry = e.Industry
            return next, nil
        case simple.DevelopingTurnState:
            if len(s.Turn.Develop) >= 2 {
                return s, newError(InvalidPhaseError, "develop removes at most two tiles per action")
            }
            next := s.Clone()
            next.Turn.Develop = append(next.Turn.Develop, e.Industry)
            return next, nil
    }
    return s, newError(InvalidPhaseError, "a %s action doesn't take an industry",
        simple.TurnStateNames[s.Turn.Type])
}

func selectLink(s simple.GameState, e Event) (simple.GameState, *Error) {
    if s.Turn.Type != simple.NetworkingTurnState {
        return s, newError(InvalidPhaseError, "a %s action doesn't take a link",
            simple.TurnStateNames[s.Turn.Type])
    }
    if e.LinkA == e.LinkB {
        return s, newError(SelectionMissingError, "a link needs two different endpoints")
    }
    for _, pick := range s.Turn.Links {
        if pick.A == e.LinkA && pick.B == e.LinkB || pick.A == e.LinkB && pick.B == e.LinkA {
            return s, newError(SelectionMissingError, "that link is already picked")
        }
    }
    max := 2
    if s.Era == simple.CanalEra {
        max = 1
    }
    if len(s.Turn.Links) >= max {
        if max == 1 {
            return s, newError(InvalidPhaseError, "only one link per action in the Canal Era")
        }
        return s, newError(InvalidPhaseError, "at most two links per action")
    }

    next := s.Clone()
    next.Turn.Links = append(next.Turn.Links, simple.LinkPick{A: e.LinkA, B: e.LinkB})
    return next, nil
}

// confirm hands the pending selections to the matching resolver.  Each
// resolver works a clone over, so a rejection at any point leaves the
// caller's state exactly as it was.
func confirm(s simple.GameState) (simple.GameState, *Error) {
    if s.Turn.Type == simple.NoneTurnStateType {
        return s, newError(InvalidPhaseError, "there is nothing to confirm")
    }

    next := s.Clone()
    var err *Error
    switch next.Turn.Type {
        case simple.BuildingTurnState:
            err = resolveBuild(&next)
        case simple.DevelopingTurnState:
            err = resolveDevelop(&next)
        case simple.SellingTurnState:
            err = resolveSell(&next)
        case simple.NetworkingTurnState:
            err = resolveNetwork(&next)
        case simple.TakingLoanTurnState:
            err = resolveLoan(&next)
        case simple.ScoutingTurnState:
            err = resolveScout(&next)
    }
    if err != nil {
        return s, err
    }

    next.Turn = simple.NoneTurnState
    next.ActionsLeft--
    if next.ActionsLeft <= 0 {
        finishTurn(&next)
    }
    return next, nil
}

func cancel(s simple.GameState) (simple.GameState, *Error) {
    if s.Turn.Type == simple.NoneTurnStateType {
        return s, newError(InvalidPhaseError, "there is nothing to cancel")
    }
    next := s.Clone()
    next.Turn = simple.NoneTurnState
    return next, nil
}

func endTurnEvent(s simple.GameState) (simple.GameState, *Error) {
    if s.Turn.Type != simple.NoneTurnStateType {
        return s, newError(InvalidPhaseError, "confirm or cancel the %s action first",
            simple.TurnStateNames[s.Turn.Type])
    }
    next := s.Clone()
    finishTurn(&next)
    return next, nil
}

// requireCard resolves the pending card selection against the current
// player's hand.
func requireCard(s *simple.GameState) (simple.Card, *Error) {
    if s.Turn.Card == "" {
        return simple.Card{}, newError(SelectionMissingError, "select a card to discard first")
    }
    for _, c := range s.Current().Hand {
        if c.Id == s.Turn.Card {
            return c, nil
        }
    }
    return simple.Card{}, newError(SelectionMissingError, "card %s is not in your hand", s.Turn.Card)
}

// discardCard moves a card out of the current player's hand.  Wilds go
// home to their piles, everything else to the discard pile.
func discardCard(s *simple.GameState, id string) {
    hand, c, ok := simple.RemoveCard(s.Current().Hand, id)
    if !ok {
        panic(fmt.Sprintf("Discarding card %s that isn't in hand", id))
    }
    s.Current().Hand = hand
    switch c.Type {
        case simple.WildLocationCardType:
            s.WildLocations = append(s.WildLocations, c)
        case simple.WildIndustryCardType:
            s.WildIndustries = append(s.WildIndustries, c)
        default:
            s.Discard = append(s.Discard, c)
    }
}

// shuffleDraw shuffles the draw pile in place off the state seed, then
// steps the seed so the next shuffle comes out different.
func shuffleDraw(s *simple.GameState) {
    r := rand.New(rand.NewSource(s.Seed))
    r.Shuffle(len(s.Draw), func(i, j int) {
        s.Draw[i], s.Draw[j] = s.Draw[j], s.Draw[i]
    })
    s.Seed = r.Int63()
}

func dealHands(s *simple.GameState) {
    for pi := range s.Players {
        drawTo(s, pi, simple.HandSize)
    }
}

func drawTo(s *simple.GameState, pi int, n int) {
    for len(s.Players[pi].Hand) < n && len(s.Draw) > 0 {
        s.Players[pi].Hand = append(s.Players[pi].Hand, s.Draw[0])
        s.Draw = s.Draw[1:]
    }
}

func containsString(ss []string, v string) bool {
    for _, s := range ss {
        if s == v {
            return true
        }
    }
    return false
}
