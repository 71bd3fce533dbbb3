package simple

type ScoreType int
const (
    NoneScoreType ScoreType = iota
    LinkScoreType
    IndustryScoreType
)

var ScoreTypeNames = map[ScoreType]string{
    NoneScoreType: "None",
    LinkScoreType: "Link",
    IndustryScoreType: "Industry",
}

// Score is one line of an era scoring: which player earned what from
// which piece. The aggregate keeps every line so clients can replay the
// count-up.
type Score struct {
    Era Era
    Player int
    Type ScoreType
    Location string
    Detail string
    Points int
}
