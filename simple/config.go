package simple

import (
    "fmt"
    "os"
    "strconv"
    "strings"
    "time"
    "io/ioutil"
)

// Seats come from config as display names; a "bot:" prefix hands the seat
// to the bot manager. Restore names a snapshot file to resume instead of
// dealing a fresh game.
type Config struct {
    Name string
    LogDirectory string
    ServerPort int
    SnapshotDirectory string
    Seats []string
    Restore string
    Seed int64
}

var configs map[string]Config = map[string]Config {
    "local": Config{
        Name: "local",
        LogDirectory: "/tmp/brass/logs",
        ServerPort: 9000,
        SnapshotDirectory: "/tmp/brass/snapshots",
        Seats: []string{"Florence", "bot:Eliza"},
    },
    "prod": Config{
        Name: "prod",
        LogDirectory: "/home/ec2-user/brass/logs",
        ServerPort: 9000,
        SnapshotDirectory: "/home/ec2-user/brass/snapshots",
        Seats: []string{"Florence", "Harriet", "bot:Eliza"},
    },
}

func LoadConfig(filename string) Config {
    configBytes, err := ioutil.ReadFile(filename)

    now := time.Now().Format("2006-01-02T15:04:05.000Z")
    fmt.Printf("\n\n\n%s: Server Start\n", now)
    if err != nil {
        fmt.Printf("%s: LoadConfig err reading '%s', goodbye: %s\n", now, filename, err)
        os.Exit(1)
    }

    stackName := ""
    configVars := strings.TrimSpace(string(configBytes))
    for _, cfg := range strings.Split(configVars, "\n") {
        parts := strings.Split(cfg, "=")
        if parts[0] == "stack" {
            stackName = parts[1]
            break
        }
    }
    if stackName == "" {
        now := time.Now().Format("2006-01-02T15:04:05.000Z")
        fmt.Printf("%s: LoadConfig found no 'stack' in config.  goodbye.", now)
        os.Exit(1)
    }

    stack, ok := configs[stackName]
    if !ok {
        now := time.Now().Format("2006-01-02T15:04:05.000Z")
        fmt.Printf("%s: LoadConfig config unknown stack '%s' set in '%s', goodbye.\n", now, stackName, filename)
        os.Exit(1)
    }

    for _, cfg := range strings.Split(configVars, "\n") {
        parts := strings.Split(cfg, "=")
        switch parts[0] {
            case "port":
                p, err := strconv.Atoi(parts[1])
                if err != nil {
                    fmt.Printf("%s: LoadConfig bad port '%s', goodbye.\n", now, parts[1])
                    os.Exit(1)
                }
                stack.ServerPort = p
            case "seats":
                stack.Seats = strings.Split(parts[1], ",")
            case "restore":
                stack.Restore = parts[1]
            case "seed":
                s, err := strconv.ParseInt(parts[1], 10, 64)
                if err != nil {
                    fmt.Printf("%s: LoadConfig bad seed '%s', goodbye.\n", now, parts[1])
                    os.Exit(1)
                }
                stack.Seed = s
            case "logdir":
                stack.LogDirectory = parts[1]
            case "snapdir":
                stack.SnapshotDirectory = parts[1]
        }
    }

    now = time.Now().Format("2006-01-02T15:04:05.000Z")
    fmt.Printf("%s: LoadConfig '%s'\n", now, stackName)
    return stack
}
