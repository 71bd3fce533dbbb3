package store_test

import (
    "testing"
    "local/brass/game"
    "local/brass/simple"
    "local/brass/store"
)

func testState(t *testing.T) simple.GameState {
    t.Helper()
    s, err := game.Init([]simple.PlayerSetup{
        {Identity: simple.NewHumanIdentity("Florence"), Color: simple.TealPlayerColor},
        {Identity: simple.NewHumanIdentity("Eliza"), Color: simple.OrangePlayerColor},
    })
    if err != nil {
        t.Fatalf("Init: %s", err)
    }
    return s
}

func TestSnapshotRoundTrip(t *testing.T) {
    st, err := store.New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %s", err)
    }
    s := testState(t)

    if err := st.SaveLatest(&s); err != nil {
        t.Fatalf("SaveLatest: %s", err)
    }
    if !st.HasLatest() {
        t.Fatal("HasLatest should see the snapshot we just wrote")
    }
    back, err := st.Load("latest.snap")
    if err != nil {
        t.Fatalf("Load: %s", err)
    }
    if back.Json() != s.Json() {
        t.Fatal("a loaded snapshot should serialize identically to what was saved")
    }

    // A restored game keeps playing exactly like the original: same seed,
    // same decks, same everybody.
    a, aErr := game.Dispatch(s, game.EndTurn())
    b, bErr := game.Dispatch(back, game.EndTurn())
    if aErr != nil || bErr != nil {
        t.Fatalf("EndTurn should work on both copies: %v %v", aErr, bErr)
    }
    if a.CurrentPlayer != b.CurrentPlayer || len(a.Players[0].Hand) != len(b.Players[0].Hand) {
        t.Fatal("the restored game diverged from the original")
    }
}

func TestSnapshotStamped(t *testing.T) {
    st, err := store.New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %s", err)
    }
    s := testState(t)

    name, err := st.SaveStamped(&s)
    if err != nil {
        t.Fatalf("SaveStamped: %s", err)
    }
    if name == "latest.snap" {
        t.Fatal("a stamped snapshot must not clobber the rolling one")
    }
    if _, err := st.Load(name); err != nil {
        t.Fatalf("Load of stamped snapshot: %s", err)
    }
}

func TestLoadMissing(t *testing.T) {
    st, err := store.New(t.TempDir())
    if err != nil {
        t.Fatalf("New: %s", err)
    }
    if _, err := st.Load("nope.snap"); err == nil {
        t.Fatal("loading a missing snapshot should fail")
    }
}
