package simple

type TurnStateType int
const (
    NoneTurnStateType TurnStateType = iota // selecting an action
    BuildingTurnState
    DevelopingTurnState
    SellingTurnState
    NetworkingTurnState
    TakingLoanTurnState
    ScoutingTurnState
)

var TurnStateNames = map[TurnStateType]string{
    NoneTurnStateType: "SelectingAction",
    BuildingTurnState: "Building",
    DevelopingTurnState: "Developing",
    SellingTurnState: "Selling",
    NetworkingTurnState: "Networking",
    TakingLoanTurnState: "TakingLoan",
    ScoutingTurnState: "Scouting",
}

var NoneTurnState = TurnState{Type: NoneTurnStateType}

// LinkPick is a link the player has lined up during a Network action.
type LinkPick struct {
    A string
    B string
}

// TurnState is the current player's in-progress action. Cancelling throws
// the whole thing away; confirming hands it to the matching resolver.
// Everything in here is a selection, never an applied effect.
type TurnState struct {
    Type TurnStateType

    // Used for every action: the card that will be discarded to pay for it.
    Card string

    // Used for Building (the target city) and Selling (the city holding
    // the industry to flip).
    Location string

    // Used for Building and Selling: which industry type at Location.
    Industry IndustryType

    // Used for Developing: one or two mat piles to take the lowest tile
    // from. The same type twice is fine.
    Develop []IndustryType

    // Used for Scouting: the two extra discards beyond Card.
    ExtraCards []string

    // Used for Networking: one pick in the canal era, up to two once
    // rails allow the double build.
    Links []LinkPick
}
