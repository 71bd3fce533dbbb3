package bot

import (
    "fmt"
    "sort"
    "local/brass/game"
    "local/brass/log"
    "local/brass/simple"
)

// PlanBrain enumerates every action it could take this turn, simulates
// each one through the rules, and plays the one its weights like best.
// The rules engine is the only validator: a candidate that doesn't
// dispatch clean is thrown out, so nothing in here re-implements the
// build gates, the beer sourcing, or any of the rest.
type PlanBrain struct {
    name string
    weights Weights
}

func (b *PlanBrain) Name() string {
    return b.name
}

func (b *PlanBrain) TakeAction(s simple.GameState, seat int) []game.Event {
    c := buildContext(&s, seat)
    b.debugf(seat, "Planning with context %+v", c)

    plans := []Plan{}
    for _, g := range allGoals {
        plans = append(plans, b.generatePlans(s, seat, g, c)...)
    }
    if len(plans) == 0 {
        b.debugf(seat, "Nothing dispatches, ending my turn")
        return []game.Event{game.EndTurn()}
    }

    sort.SliceStable(plans, func(i, j int) bool {
        return plans[i].FitnessValue > plans[j].FitnessValue
    })
    best := plans[0]
    b.debugf(seat, "Considered %d potential plans", len(plans))
    b.debugf(seat, "Chose a %s plan with fitness %.1f", goalNames[best.Goal], best.FitnessValue)
    b.debugf(seat, "Fitness calculation: %s", best.FitnessDescription)
    return best.Events
}

func (b *PlanBrain) generatePlans(s simple.GameState, seat int, g Goal, c Context) []Plan {
    switch g {
        case BuildGoal:
            return b.generateBuildPlans(s, seat, c)
        case SellGoal:
            return b.generateSellPlans(s, seat, c)
        case NetworkGoal:
            return b.generateNetworkPlans(s, seat, c)
        case DevelopGoal:
            return b.generateDevelopPlans(s, seat, c)
        case ScoutGoal:
            return b.generateScoutPlans(s, seat, c)
        case LoanGoal:
            return b.generateLoanPlans(s, seat, c)
    }
    return []Plan{}
}

// Every distinct card shape against every city and every industry its
// slots print.  Most combinations die in the first Dispatch or two;
// the survivors are real, affordable, connected builds.
func (b *PlanBrain) generateBuildPlans(s simple.GameState, seat int, c Context) []Plan {
    r := []Plan{}
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
                if p, ok := b.scorePlan(BuildGoal, c, s, seat, events); ok {
                    r = append(r, p)
                }
            }
        }
    }
    return r
}

func (b *PlanBrain) generateSellPlans(s simple.GameState, seat int, c Context) []Plan {
    r := []Plan{}
    cards := discards(&s, seat, 1)
    if len(cards) == 0 {
        return r
    }
    for _, ind := range s.Players[seat].Industries {
        if ind.Flipped || !ind.Type.Sellable() {
            continue
        }
        events := []game.Event{
            game.SelectAction(simple.SellActionType),
            game.SelectCard(cards[0].Id),
            game.SelectLocation(ind.Location),
            game.SelectIndustry(ind.Type),
            game.Confirm(),
        }
        if p, ok := b.scorePlan(SellGoal, c, s, seat, events); ok {
            r = append(r, p)
        }
    }
    return r
}

// Single links only.  Pricing the rail double build means pricing the
// beer it drinks, and the fitness can't do that yet.
func (b *PlanBrain) generateNetworkPlans(s simple.GameState, seat int, c Context) []Plan {
    r := []Plan{}
    cards := discards(&s, seat, 1)
    if len(cards) == 0 {
        return r
    }
    for _, conn := range s.Board.Connections {
        if !conn.SupportsEra(s.Era) || s.HasLink(conn.A, conn.B) {
            continue
        }
        events := []game.Event{
            game.SelectAction(simple.NetworkActionType),
            game.SelectCard(cards[0].Id),
            game.SelectLink(conn.A, conn.B),
            game.Confirm(),
        }
        if p, ok := b.scorePlan(NetworkGoal, c, s, seat, events); ok {
            r = append(r, p)
        }
    }
    return r
}

// Singles and same-type doubles.  Mixed pairs multiply the search for
// tiles we almost never want to burn together.
func (b *PlanBrain) generateDevelopPlans(s simple.GameState, seat int, c Context) []Plan {
    r := []Plan{}
    cards := discards(&s, seat, 1)
    if len(cards) == 0 {
        return r
    }
    for t := simple.CottonIndustryType; t <= simple.BreweryIndustryType; t++ {
        single := []game.Event{
            game.SelectAction(simple.DevelopActionType),
            game.SelectCard(cards[0].Id),
            game.SelectIndustry(t),
            game.Confirm(),
        }
        if p, ok := b.scorePlan(DevelopGoal, c, s, seat, single); ok {
            r = append(r, p)
        }
        double := []game.Event{
            game.SelectAction(simple.DevelopActionType),
            game.SelectCard(cards[0].Id),
            game.SelectIndustry(t),
            game.SelectIndustry(t),
            game.Confirm(),
        }
        if p, ok := b.scorePlan(DevelopGoal, c, s, seat, double); ok {
            r = append(r, p)
        }
    }
    return r
}

func (b *PlanBrain) generateScoutPlans(s simple.GameState, seat int, c Context) []Plan {
    cards := discards(&s, seat, 3)
    if len(cards) < 3 {
        return []Plan{}
    }
    events := []game.Event{
        game.SelectAction(simple.ScoutActionType),
        game.SelectCard(cards[0].Id),
        game.SelectCard(cards[1].Id),
        game.SelectCard(cards[2].Id),
        game.Confirm(),
    }
    if p, ok := b.scorePlan(ScoutGoal, c, s, seat, events); ok {
        return []Plan{p}
    }
    return []Plan{}
}

func (b *PlanBrain) generateLoanPlans(s simple.GameState, seat int, c Context) []Plan {
    cards := discards(&s, seat, 1)
    if len(cards) == 0 {
        return []Plan{}
    }
    events := []game.Event{
        game.SelectAction(simple.LoanActionType),
        game.SelectCard(cards[0].Id),
        game.Confirm(),
    }
    if p, ok := b.scorePlan(LoanGoal, c, s, seat, events); ok {
        return []Plan{p}
    }
    return []Plan{}
}

// scorePlan simulates a candidate and prices where it lands us.  The
// false return means the rules refused it somewhere along the run.
func (b *PlanBrain) scorePlan(g Goal, c Context, before simple.GameState, seat int, events []game.Event) (Plan, bool) {
    after, ok := dispatchAll(before, events)
    if !ok {
        return Plan{}, false
    }

    var f Fitness
    switch g {
        case ScoutGoal:
            f = ScoutFitness{Time: c.GameTime}
        case LoanGoal:
            f = LoanFitness{Time: c.GameTime, MoneyBefore: c.Money}
        default:
            f = growthFitness(g, c, &before, &after, seat)
    }

    return Plan{
        Goal: g,
        Events: events,
        Fitness: f,
        FitnessValue: f.Value(b.weights),
        FitnessDescription: f.Calculation(b.weights),
    }, true
}

func growthFitness(g Goal, c Context, before, after *simple.GameState, seat int) GrowthFitness {
    pb, pa := before.Players[seat], after.Players[seat]
    spent := pb.Money - pa.Money
    if spent < 0 {
        // The action closed a round and the income phase paid out more
        // than the action cost.  Near enough to free.
        spent = 0
    }
    return GrowthFitness{
        Goal: g,
        Time: c.GameTime,
        Points: flipPoints(pa) - flipPoints(pb),
        Income: pa.Income - pb.Income,
        Flips: flippedCount(pa) - flippedCount(pb),
        Tiles: len(pa.Industries) - len(pb.Industries),
        Links: len(pa.Links) - len(pb.Links),
        Spent: spent,
    }
}

// dispatchAll chains events through the rules, bailing at the first
// rejection.  Dispatch copies, so probing candidates never touches the
// caller's state.
func dispatchAll(s simple.GameState, events []game.Event) (simple.GameState, bool) {
    cur := s
    for _, e := range events {
        next, err := game.Dispatch(cur, e)
        if err != nil {
            return s, false
        }
        cur = next
    }
    return cur, true
}

// distinctCards collapses a hand to one card per shape so duplicates
// don't make us simulate the same build five times.
func distinctCards(hand []simple.Card) []simple.Card {
    r := []simple.Card{}
    seen := map[string]bool{}
    for _, c := range hand {
        key := cardKey(c)
        if seen[key] {
            continue
        }
        seen[key] = true
        r = append(r, c)
    }
    return r
}

func cardKey(c simple.Card) string {
    key := fmt.Sprintf("%d:%s", c.Type, c.Location)
    for _, t := range c.Industries {
        key = fmt.Sprintf("%s:%d", key, t)
    }
    return key
}

// slotTypes is the union of industries a city's printed slots accept.
func slotTypes(l simple.Location) []simple.IndustryType {
    r := []simple.IndustryType{}
    seen := map[simple.IndustryType]bool{}
    for _, slot := range l.Slots {
        for _, t := range slot.Types {
            if seen[t] {
                continue
            }
            seen[t] = true
            r = append(r, t)
        }
    }
    return r
}

// discards picks the n cards we would miss least, in order.  Wilds are
// effectively never offered up.
func discards(s *simple.GameState, seat int, n int) []simple.Card {
    hand := append([]simple.Card{}, s.Players[seat].Hand...)
    sort.SliceStable(hand, func(i, j int) bool {
        return cardValue(s, seat, hand[i]) < cardValue(s, seat, hand[j])
    })
    if len(hand) > n {
        hand = hand[:n]
    }
    return hand
}

// cardValue is how much losing a card would hurt: location cards near
// our network beat far ones, industry cards for piles we've emptied are
// free, wilds are kept at all costs.
func cardValue(s *simple.GameState, seat int, c simple.Card) int {
    if c.Wild() {
        return 1000
    }
    switch c.Type {
        case simple.LocationCardType:
            if s.Players[seat].InNetwork(c.Location) {
                return 30
            }
            return 10
        case simple.IndustryCardType:
            for _, t := range c.Industries {
                if s.Players[seat].LowestMatLevel(t) > 0 {
                    return 20
                }
            }
            return 0
    }
    return 0
}

func (b *PlanBrain) debugf(seat int, msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(Bot %s) (P%d) %s", b.name, seat, msg), fargs...)
}
