package game

import (
    "local/brass/simple"
)

// scoreEra hands out the end-of-era points: one per built link, then the
// printed value of every flipped industry.  Unflipped tiles earn
// nothing, which is the whole tragedy of an unsold cotton mill.
func scoreEra(s *simple.GameState) {
    for pi := range s.Players {
        p := &s.Players[pi]
        linkPoints := 0
        for _, l := range p.Links {
            p.Points++
            linkPoints++
            s.Scores = append(s.Scores, simple.Score{
                Era: s.Era,
                Player: pi,
                Type: simple.LinkScoreType,
                Location: l.A + "-" + l.B,
                Points: 1,
            })
        }
        indPoints := 0
        for _, ind := range p.Industries {
            if !ind.Flipped {
                continue
            }
            pts := ind.Spec().Points
            p.Points += pts
            indPoints += pts
            s.Scores = append(s.Scores, simple.Score{
                Era: s.Era,
                Player: pi,
                Type: simple.IndustryScoreType,
                Location: ind.Location,
                Detail: simple.IndustryNames[ind.Type],
                Points: pts,
            })
        }
        s.AppendLog(simple.InfoLogKind, "%s scored %d from links and %d from industries",
            p.Identity.Name, linkPoints, indPoints)
    }
}

// transitionToRail tears the canal economy down and deals the rail one:
// score, sweep Level 1 tiles and every canal link, refill the merchants,
// rebuild and reshuffle the deck, fresh hands all round.
func transitionToRail(s *simple.GameState) {
    scoreEra(s)
    s.AppendLog(simple.SystemLogKind, "Canal Era ended")

    for pi := range s.Players {
        p := &s.Players[pi]
        kept := []simple.Industry{}
        for _, ind := range p.Industries {
            if ind.Level > 1 {
                kept = append(kept, ind)
            }
        }
        p.Industries = kept
        p.Links = []simple.Link{}
    }
    for _, m := range s.Board.Merchants() {
        s.Board.SetBeer(m.Id, 1)
    }

    rebuildDeck(s)
    dealHands(s)

    s.Era = simple.RailEra
    s.Round = 1
    s.TurnIndex = 0
    s.CurrentPlayer = s.Order[0]
    s.ActionsLeft = actionsPerTurn(s)
    s.AppendLog(simple.SystemLogKind, "Rail Era started")
}

// rebuildDeck gathers every card not in a wild pile back into a fresh
// shuffled draw pile.  Wilds still in hands go home to their piles
// instead of the deck.
func rebuildDeck(s *simple.GameState) {
    for pi := range s.Players {
        p := &s.Players[pi]
        for _, c := range p.Hand {
            switch c.Type {
                case simple.WildLocationCardType:
                    s.WildLocations = append(s.WildLocations, c)
                case simple.WildIndustryCardType:
                    s.WildIndustries = append(s.WildIndustries, c)
            }
        }
        p.Hand = []simple.Card{}
    }
    s.Draw = simple.NewBaseDeck(len(s.Players))
    s.Discard = []simple.Card{}
    shuffleDraw(s)
}

// endGame is the rail-era close: score, then settle the winner by
// points, income, money, and finally seat order so there is always
// exactly one.
func endGame(s *simple.GameState) {
    scoreEra(s)
    s.AppendLog(simple.SystemLogKind, "Rail Era ended")

    winner := 0
    for pi := 1; pi < len(s.Players); pi++ {
        a, b := s.Players[pi], s.Players[winner]
        if a.Points > b.Points ||
            a.Points == b.Points && a.Income > b.Income ||
            a.Points == b.Points && a.Income == b.Income && a.Money > b.Money {
            winner = pi
        }
    }
    s.Winner = winner
    s.Phase = simple.GameOverPhase
    s.AppendLog(simple.SystemLogKind, "%s wins with %d points",
        s.Players[winner].Identity.Name, s.Players[winner].Points)
}
