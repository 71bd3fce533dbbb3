package simple_test

import (
    "testing"
    "local/brass/simple"
)

func TestMarketBuyWalksUpTheLadder(t *testing.T) {
    m := simple.NewCoalMarket()
    if m.Cubes() != 13 {
        t.Fatalf("a fresh coal ladder holds 13 cubes, got %d", m.Cubes())
    }
    if cost := m.Buy(3); cost != 1+1+2 {
        t.Fatalf("the first three cubes cost £1, £1 and £2, got £%d", cost)
    }
    if m.Cubes() != 10 {
        t.Fatalf("expected 10 cubes left, got %d", m.Cubes())
    }
}

func TestMarketBuyFallsBackWhenEmpty(t *testing.T) {
    m := simple.NewIronMarket()
    total := 0
    for _, l := range m.Levels {
        for c := 0; c < l.Cubes; c++ {
            total += l.Price
        }
    }
    if cost := m.Buy(m.Cubes()); cost != total {
        t.Fatalf("draining the ladder should cost £%d, got £%d", total, cost)
    }
    if cost := m.Buy(2); cost != 2*m.Fallback {
        t.Fatalf("an empty ladder sells at the £%d fallback, got £%d for two", m.Fallback, cost)
    }
    if m.Cubes() != 0 {
        t.Fatalf("fallback purchases shouldn't touch the ladder, it has %d cubes", m.Cubes())
    }
}

func TestMarketSellFillsDearestFirst(t *testing.T) {
    m := simple.NewCoalMarket()
    // Only the £7 level has room at the start, and only for one cube.
    sold, income := m.Sell(3)
    if sold != 1 || income != 7 {
        t.Fatalf("expected to place 1 cube for £7, placed %d for £%d", sold, income)
    }
    if m.Levels[6].Cubes != 2 {
        t.Fatalf("the £7 level should be full, has %d", m.Levels[6].Cubes)
    }

    // Open up the cheap end and sell again: the £4 gap fills before the
    // £1 holes, and the fourth cube finds no room at all.
    m.Levels[0].Cubes = 0
    m.Levels[3].Cubes = 1
    sold, income = m.Sell(4)
    if sold != 3 || income != 4+1+1 {
        t.Fatalf("expected 3 cubes for £6 total, placed %d for £%d", sold, income)
    }
    if m.Cubes() != 14 {
        t.Fatalf("a full ladder holds 14, got %d", m.Cubes())
    }
}
