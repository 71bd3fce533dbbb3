package bot

type Goal int
const (
    NoneGoal Goal = iota
    BuildGoal
    SellGoal
    NetworkGoal
    DevelopGoal
    ScoutGoal
    LoanGoal
)
var allGoals = []Goal{
    BuildGoal,
    SellGoal,
    NetworkGoal,
    DevelopGoal,
    ScoutGoal,
    LoanGoal,
}

var goalNames = map[Goal]string{
    NoneGoal: "None",
    BuildGoal: "Build",
    SellGoal: "Sell",
    NetworkGoal: "Network",
    DevelopGoal: "Develop",
    ScoutGoal: "Scout",
    LoanGoal: "Loan",
}
