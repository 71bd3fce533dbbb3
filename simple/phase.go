package simple

type Phase int
const (
    NonePhase Phase = iota
    PlayingPhase
    GameOverPhase
)

var PhaseNames = map[Phase]string{
    NonePhase: "None",
    PlayingPhase: "Playing",
    GameOverPhase: "GameOver",
}
