package simple

import (
    "time"
)

type LogKind int
const (
    NoneLogKind LogKind = iota
    SystemLogKind
    ActionLogKind
    InfoLogKind
)

var LogKindNames = map[LogKind]string{
    NoneLogKind: "none",
    SystemLogKind: "system",
    ActionLogKind: "action",
    InfoLogKind: "info",
}

// LogEntry is one line of the game activity feed. The feed is append-only;
// nothing ever rewrites it.
type LogEntry struct {
    Message string
    Kind LogKind
    Time time.Time
}
