package bot

import (
    "fmt"
    "local/brass/simple"
)

type Fitness interface {
    Calculation(Weights) string
    Value(Weights) float64
}

// GrowthFitness scores the board-advancing goals (build, sell, network,
// develop) off the deltas between the state before and after the
// simulated action.  Points is banked tile points from flips, not scored
// points; Spent is money out of the wallet including market purchases.
type GrowthFitness struct {
    Goal Goal
    Time GameTime
    Points int
    Income int
    Flips int
    Tiles int
    Links int
    Spent int
}

// ScoutFitness is nearly flat: a scout always trades three cards for the
// two wilds, so the personality knob is the whole story.
type ScoutFitness struct {
    Time GameTime
}

// LoanFitness prices thirty pounds now against three income levels
// forever.  MoneyBefore lets desperation override the usual reluctance.
type LoanFitness struct {
    Time GameTime
    MoneyBefore int
}

func (f GrowthFitness) Calculation(w Weights) string {
    calc, _ := f.calculate(w)
    return calc
}

func (f GrowthFitness) Value(w Weights) float64 {
    _, value := f.calculate(w)
    return value
}

func (f GrowthFitness) calculate(w Weights) (string, float64) {
    calc := "100"
    value := 100.0

    calc = fmt.Sprintf("%s * %.2f (GoalLike[%s][%s])", calc,
        w.GoalLike[f.Goal][f.Time], goalNames[f.Goal], gameTimeNames[f.Time])
    value *= w.GoalLike[f.Goal][f.Time]

    if f.Points > 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (Points)", calc, w.Points, f.Points)
        for i := 0; i < f.Points; i++ {
            value *= w.Points
        }
    }
    if f.Income > 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (Income)", calc, w.Income, f.Income)
        for i := 0; i < f.Income; i++ {
            value *= w.Income
        }
    }
    if f.Income < 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (IncomeLoss)", calc, w.IncomeLoss, -f.Income)
        for i := 0; i > f.Income; i-- {
            value *= w.IncomeLoss
        }
    }
    if f.Flips > 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (Flip)", calc, w.Flip, f.Flips)
        for i := 0; i < f.Flips; i++ {
            value *= w.Flip
        }
    }
    if f.Tiles > 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (Tile)", calc, w.Tile, f.Tiles)
        for i := 0; i < f.Tiles; i++ {
            value *= w.Tile
        }
    }
    if f.Links > 0 {
        calc = fmt.Sprintf("%s * %.2f^%d (Link)", calc, w.Link, f.Links)
        for i := 0; i < f.Links; i++ {
            value *= w.Link
        }
    }

    bucket := f.Spent / 5
    if bucket >= len(w.SpendAversion) {
        bucket = len(w.SpendAversion) - 1
    }
    calc = fmt.Sprintf("%s * %.2f (SpendAversion[%d])", calc, w.SpendAversion[bucket], f.Spent)
    value *= w.SpendAversion[bucket]

    return calc, value
}

func (f ScoutFitness) Calculation(w Weights) string {
    calc, _ := f.calculate(w)
    return calc
}

func (f ScoutFitness) Value(w Weights) float64 {
    _, value := f.calculate(w)
    return value
}

func (f ScoutFitness) calculate(w Weights) (string, float64) {
    calc := "100"
    value := 100.0

    calc = fmt.Sprintf("%s * %.2f (GoalLike[Scout][%s])", calc,
        w.GoalLike[ScoutGoal][f.Time], gameTimeNames[f.Time])
    value *= w.GoalLike[ScoutGoal][f.Time]

    return calc, value
}

func (f LoanFitness) Calculation(w Weights) string {
    calc, _ := f.calculate(w)
    return calc
}

func (f LoanFitness) Value(w Weights) float64 {
    _, value := f.calculate(w)
    return value
}

func (f LoanFitness) calculate(w Weights) (string, float64) {
    calc := "100"
    value := 100.0

    calc = fmt.Sprintf("%s * %.2f (GoalLike[Loan][%s])", calc,
        w.GoalLike[LoanGoal][f.Time], gameTimeNames[f.Time])
    value *= w.GoalLike[LoanGoal][f.Time]

    if f.MoneyBefore < 10 {
        calc = fmt.Sprintf("%s * %.2f (Desperation, £%d left)", calc, w.Desperation, f.MoneyBefore)
        value *= w.Desperation
    }

    return calc, value
}

// flipPoints is the tile points a player has banked for the next era
// scoring: the printed points of every flipped industry they own.
func flipPoints(p simple.Player) int {
    r := 0
    for _, ind := range p.Industries {
        if ind.Flipped {
            r += ind.Spec().Points
        }
    }
    return r
}

func flippedCount(p simple.Player) int {
    r := 0
    for _, ind := range p.Industries {
        if ind.Flipped {
            r++
        }
    }
    return r
}
