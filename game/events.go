package game

import (
    "local/brass/simple"
)

type EventType int

const (
    NoneEventType EventType = iota
    SelectActionEventType
    SelectCardEventType
    SelectLocationEventType
    SelectIndustryEventType
    SelectLinkEventType
    ConfirmEventType
    CancelEventType
    EndTurnEventType
)

var EventNames = map[EventType]string{
    NoneEventType: "NoneEventType",
    SelectActionEventType: "SelectAction",
    SelectCardEventType: "SelectCard",
    SelectLocationEventType: "SelectLocation",
    SelectIndustryEventType: "SelectIndustry",
    SelectLinkEventType: "SelectLink",
    ConfirmEventType: "Confirm",
    CancelEventType: "Cancel",
    EndTurnEventType: "EndTurn",
}

// Event is a single intent from the current player.  Only the fields the
// Type calls for are read; the rest stay zero.
type Event struct {
    Type EventType

    // Used for SelectAction
    Action simple.ActionType

    // Used for SelectCard
    Card string

    // Used for SelectLocation
    Location string

    // Used for SelectIndustry
    Industry simple.IndustryType

    // Used for SelectLink
    LinkA string
    LinkB string
}

func SelectAction(a simple.ActionType) Event {
    return Event{Type: SelectActionEventType, Action: a}
}

func SelectCard(id string) Event {
    return Event{Type: SelectCardEventType, Card: id}
}

func SelectLocation(id string) Event {
    return Event{Type: SelectLocationEventType, Location: id}
}

func SelectIndustry(t simple.IndustryType) Event {
    return Event{Type: SelectIndustryEventType, Industry: t}
}

func SelectLink(a string, b string) Event {
    return Event{Type: SelectLinkEventType, LinkA: a, LinkB: b}
}

func Confirm() Event {
    return Event{Type: ConfirmEventType}
}

func Cancel() Event {
    return Event{Type: CancelEventType}
}

func EndTurn() Event {
    return Event{Type: EndTurnEventType}
}
