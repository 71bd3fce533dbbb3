package log

import (
    "fmt"
    "os"
    "runtime"
    "strings"
    "sync"
    "time"
)

// Leveled file logger for the brass host. Every call formats its line and
// pushes it onto a channel; a single goroutine owns the file, so callers
// never race on the handle and never block on disk. The engine packages
// don't log at all; hosts, bots, and infrastructure do.

type LogLevel int
const (
    NoneLevel LogLevel = iota
    TraceLevel
    DebugLevel
    InfoLevel
    WarnLevel
    ErrorLevel
    FatalLevel
)

var LevelNames = map[LogLevel]string{
    NoneLevel: "NONE",
    TraceLevel: "TRACE",
    DebugLevel: "DEBUG",
    InfoLevel: "INFO",
    WarnLevel: "WARN",
    ErrorLevel: "ERROR",
    FatalLevel: "FATAL",
}

var logDir string
var level LogLevel
var logfile *os.File
var feed chan string
var done chan struct{}
var midnight <-chan time.Time
var ticking bool

var stopping sync.Mutex

// Init opens today's file and starts the writer. Level is a floor:
// everything at it or above gets written. Logs aimed at a temp directory
// belong to tests and scratch runs, which never live long enough to see
// a rollover.
func Init(dir string, l LogLevel) {
    logDir = dir
    level = l
    logfile = openLog()
    feed = make(chan string, 64)
    done = make(chan struct{})

    if !strings.HasPrefix(dir, os.TempDir()) {
        first := make(chan time.Time, 1)
        midnight = first
        go awaitMidnight(first)
    }

    go drain()
}

// Stop flushes the feed and parks the caller. The lock is never
// released: the first panicking goroutine gets the flush, any later ones
// wait here for the process to die.
func Stop(what string, cause interface{}) {
    stopping.Lock()

    Fatal("log.Stop: '%s': %s", what, cause)
    close(feed)
    <-done
}

// Fatal logs and nothing more. Whether the process lives on is the
// caller's decision, not the logger's.
func Fatal(msg string, fargs ...interface{}) {
    emit(FatalLevel, msg, fargs...)
}

func Error(msg string, fargs ...interface{}) {
    emit(ErrorLevel, msg, fargs...)
}

func Warn(msg string, fargs ...interface{}) {
    emit(WarnLevel, msg, fargs...)
}

func Info(msg string, fargs ...interface{}) {
    emit(InfoLevel, msg, fargs...)
}

func Debug(msg string, fargs ...interface{}) {
    emit(DebugLevel, msg, fargs...)
}

func Trace(msg string, fargs ...interface{}) {
    emit(TraceLevel, msg, fargs...)
}

func emit(l LogLevel, msg string, fargs ...interface{}) {
    if feed == nil {
        panic("log used before log.Init")
    }
    if l < level {
        return
    }
    feed <-fmt.Sprintf(fmt.Sprintf("[%s] (%s) %s", LevelNames[l], caller(), msg), fargs...)
}

// caller names the package that logged, three frames up: the package
// func, then emit, then here.
func caller() string {
    pc, _, _, ok := runtime.Caller(3)
    details := runtime.FuncForPC(pc)
    if !ok || details == nil {
        return ""
    }
    name := details.Name()
    return name[strings.LastIndex(name, "/")+1 : strings.Index(name, ".")]
}

func drain() {
    for {
        select {
        case m, ok := <-feed:
            if !ok {
                logfile.Sync()
                close(done)
                return
            }
            writeLine(m)
        case <-midnight:
            if !ticking {
                midnight = time.NewTicker(24 * time.Hour).C
                ticking = true
            }
            logfile.Close()
            logfile = openLog()
        }
    }
}

// awaitMidnight sleeps out the rest of today and delivers the first
// rollover; drain swaps in a day ticker from there.
func awaitMidnight(first chan time.Time) {
    now := time.Now()
    dayEnd := time.Date(now.Year(), now.Month(), now.Day(),
        0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
    time.Sleep(dayEnd.Sub(now))
    first <-time.Now()
}

func openLog() *os.File {
    f, err := os.OpenFile(
        fmt.Sprintf("%s/brass.log.%s", logDir, time.Now().Format("20060102")),
        os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
    if err != nil {
        panic(fmt.Sprintf("Unable to open the brass log in %s: %s", logDir, err))
    }
    return f
}

func writeLine(msg string) {
    logfile.WriteString(fmt.Sprintf("%s %s\n",
        time.Now().Format("15:04:05.000Z"),
        strings.ReplaceAll(msg, "\n", "\\n")))
}
