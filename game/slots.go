package game

import (
    "local/brass/simple"
)

// claimedSlots replays every industry standing at a location, oldest
// first, each claiming the first free slot that accepts its type.  Slot
// occupancy is never stored; this derivation is the single source of
// truth, so it has to be deterministic: same industries in the same
// construction order, same claims.
func claimedSlots(s *simple.GameState, loc simple.Location) []bool {
    claimed := make([]bool, len(loc.Slots))
    for _, ind := range s.IndustriesAt(loc.Id) {
        for i, slot := range loc.Slots {
            if !claimed[i] && slot.Accepts(ind.Type) {
                claimed[i] = true
                break
            }
        }
    }
    return claimed
}

// CanPlace says whether a fresh tile of a type has a free slot at a
// location.  Unknown locations and merchants never do.
func CanPlace(s *simple.GameState, id string, t simple.IndustryType) bool {
    loc, ok := s.Board.GetLocation(id)
    if !ok || loc.Kind != simple.CityLocationKind {
        return false
    }
    claimed := claimedSlots(s, loc)
    for i, slot := range loc.Slots {
        if !claimed[i] && slot.Accepts(t) {
            return true
        }
    }
    return false
}
