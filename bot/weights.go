package bot

// Weights is a bot personality.  Fitness starts at 100 and every factor
// multiplies it, so 1.0 entries are indifference, anything above is
// appetite and anything below is aversion.
type Weights struct {

    // Flat per-goal preference by stage of the game.  This is the main
    // personality knob: it decides what a bot reaches for when two plans
    // come out otherwise close.
    GoalLike map[Goal]map[GameTime]float64

    // Per-unit multipliers on what an action actually changes for us.
    // Points counts the tile points a flip banks for era scoring, not
    // scored points (those only land at the era turnover).
    Points float64
    Income float64
    IncomeLoss float64
    Flip float64
    Tile float64
    Link float64

    // Indexed by money spent / 5, capped at the last entry.  Spending is
    // fine when it buys position, but an empty wallet can't answer what
    // the other seats do next.
    SpendAversion []float64

    // Multiplier on loan plans when we are nearly broke.  Taking a loan
    // at that point is survival, not strategy.
    Desperation float64
}

// brindley builds early and squeezes the board; the selling comes once
// the tiles are down.
var brindleyWeights = Weights{
    GoalLike: map[Goal]map[GameTime]float64{
        BuildGoal:   map[GameTime]float64{EarlyGame: 1.4, MidGame: 1.2, LateGame: 1.0},
        SellGoal:    map[GameTime]float64{EarlyGame: 0.9, MidGame: 1.3, LateGame: 1.5},
        NetworkGoal: map[GameTime]float64{EarlyGame: 1.1, MidGame: 1.0, LateGame: 0.9},
        DevelopGoal: map[GameTime]float64{EarlyGame: 0.8, MidGame: 0.7, LateGame: 0.4},
        ScoutGoal:   map[GameTime]float64{EarlyGame: 0.5, MidGame: 0.4, LateGame: 0.3},
        LoanGoal:    map[GameTime]float64{EarlyGame: 0.6, MidGame: 0.4, LateGame: 0.15},
    },
    Points: 1.18,
    Income: 1.08,
    IncomeLoss: 0.93,
    Flip: 1.2,
    Tile: 1.25,
    Link: 1.12,
    SpendAversion: []float64{1.0, 0.97, 0.93, 0.88, 0.8, 0.7},
    Desperation: 3.5,
}

// telford plays for the scoring column: links and flips over board
// presence, and he'll pay for them.
var telfordWeights = Weights{
    GoalLike: map[Goal]map[GameTime]float64{
        BuildGoal:   map[GameTime]float64{EarlyGame: 1.2, MidGame: 1.1, LateGame: 0.9},
        SellGoal:    map[GameTime]float64{EarlyGame: 1.0, MidGame: 1.4, LateGame: 1.7},
        NetworkGoal: map[GameTime]float64{EarlyGame: 1.3, MidGame: 1.2, LateGame: 1.1},
        DevelopGoal: map[GameTime]float64{EarlyGame: 0.9, MidGame: 0.8, LateGame: 0.5},
        ScoutGoal:   map[GameTime]float64{EarlyGame: 0.6, MidGame: 0.5, LateGame: 0.3},
        LoanGoal:    map[GameTime]float64{EarlyGame: 0.7, MidGame: 0.4, LateGame: 0.15},
    },
    Points: 1.22,
    Income: 1.06,
    IncomeLoss: 0.92,
    Flip: 1.25,
    Tile: 1.15,
    Link: 1.2,
    SpendAversion: []float64{1.0, 0.98, 0.95, 0.9, 0.82, 0.72},
    Desperation: 3.0,
}

var defaultWeights = brindleyWeights
