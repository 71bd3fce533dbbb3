package simple

type ActionType int
const (
    NoneActionType ActionType = iota
    BuildActionType
    DevelopActionType
    SellActionType
    NetworkActionType
    LoanActionType
    ScoutActionType
)

var ActionNames = map[ActionType]string{
    NoneActionType: "None",
    BuildActionType: "Build",
    DevelopActionType: "Develop",
    SellActionType: "Sell",
    NetworkActionType: "Network",
    LoanActionType: "Loan",
    ScoutActionType: "Scout",
}
