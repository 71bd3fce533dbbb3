package game

import (
    "local/brass/simple"
)

// Unreachable is the Distance result when no chain of built links joins
// two locations.
const Unreachable = -1

// Distance is the hop count between two locations over links built for an
// era.  A location is always at distance 0 from itself, even with nothing
// built there.
func Distance(s *simple.GameState, from string, to string, era simple.Era) int {
    if from == to {
        return 0
    }

    links := s.Links(era)
    seen := map[string]bool{from: true}
    frontier := []string{from}
    for d := 1; len(frontier) > 0; d++ {
        next := []string{}
        for _, at := range frontier {
            for _, l := range links {
                if !l.Touches(at) {
                    continue
                }
                other := l.A
                if other == at {
                    other = l.B
                }
                if seen[other] {
                    continue
                }
                if other == to {
                    return d
                }
                seen[other] = true
                next = append(next, other)
            }
        }
        frontier = next
    }
    return Unreachable
}

// connectedToMerchant says whether any merchant is reachable from a
// location this era.  Coal only moves along links, so both mine-sourcing
// and market sales hang off this.
func connectedToMerchant(s *simple.GameState, from string, era simple.Era) bool {
    for _, m := range s.Board.Merchants() {
        if Distance(s, from, m.Id, era) != Unreachable {
            return true
        }
    }
    return false
}
