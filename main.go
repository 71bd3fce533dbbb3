package main

import (
    "math/rand"
    "os"
    "syscall"
    "time"
    "local/brass/log"
    "local/brass/server"
    "local/brass/simple"
)

func main() {
    path := "/home/ec2-user/brass/server.cfg"
    if len(os.Args) > 1 {
        path = os.Args[1]
    }
    config := simple.LoadConfig(path)

    // A configured seed makes the whole run replayable; the opening deal
    // and every reshuffle hang off this.
    seed := config.Seed
    if seed == 0 {
        seed = time.Now().UTC().UnixNano()
    }
    rand.Seed(seed)

    pgid, _ := syscall.Getpgid(syscall.Getpid())
    log.Init(config.LogDirectory, log.DebugLevel)

    log.Info("********************************************************************")
    log.Info("*                                                                  *")
    log.Info("*                           Server Start                           *")
    log.Info("*                                                                  *")
    log.Info("********************************************************************")
    log.Info("Log Initialized")
    log.Debug("Seed: %d", seed)
    log.Debug("Pgid: %d", pgid)

    server.New(config).Run()
}
