package store

import (
    "bytes"
    "fmt"
    "io"
    "io/ioutil"
    "os"
    "path/filepath"
    "time"
    "github.com/pierrec/lz4"
    "golang.org/x/xerrors"
    "local/brass/simple"
)

// Store writes and reads game snapshots: the full GameState as json,
// lz4-compressed, one file per snapshot. "latest" is overwritten after
// every accepted event; stamped snapshots pile up on request and never
// get cleaned here.
type Store struct {
    dir string
}

const latestName = "latest.snap"

func New(dir string) (*Store, error) {
    if err := os.MkdirAll(dir, 0755); err != nil {
        return nil, xerrors.Errorf("could not create snapshot directory %s: %w", dir, err)
    }
    return &Store{dir: dir}, nil
}

func (st *Store) Dir() string {
    return st.dir
}

// SaveLatest overwrites the rolling snapshot.
func (st *Store) SaveLatest(s *simple.GameState) error {
    return st.write(latestName, s)
}

// SaveStamped writes a keeper and returns its file name.
func (st *Store) SaveStamped(s *simple.GameState) (string, error) {
    name := fmt.Sprintf("brass-%s.snap", time.Now().Format("20060102-150405"))
    if err := st.write(name, s); err != nil {
        return "", err
    }
    return name, nil
}

// Load reads a snapshot by file name within the store directory, or by
// absolute path so a config restore can point anywhere.
func (st *Store) Load(name string) (simple.GameState, error) {
    path := name
    if !filepath.IsAbs(name) {
        path = filepath.Join(st.dir, name)
    }
    data, err := ioutil.ReadFile(path)
    if err != nil {
        return simple.GameState{}, xerrors.Errorf("could not read snapshot %s: %w", path, err)
    }
    raw, err := decompress(data)
    if err != nil {
        return simple.GameState{}, xerrors.Errorf("could not decompress snapshot %s: %w", path, err)
    }
    s, err := simple.ParseGameState(raw)
    if err != nil {
        return simple.GameState{}, xerrors.Errorf("could not parse snapshot %s: %w", path, err)
    }
    return s, nil
}

func (st *Store) HasLatest() bool {
    _, err := os.Stat(filepath.Join(st.dir, latestName))
    return err == nil
}

func (st *Store) write(name string, s *simple.GameState) error {
    data, err := compress([]byte(s.Json()))
    if err != nil {
        return xerrors.Errorf("could not compress snapshot: %w", err)
    }
    path := filepath.Join(st.dir, name)
    if err := ioutil.WriteFile(path, data, 0644); err != nil {
        return xerrors.Errorf("could not write snapshot %s: %w", path, err)
    }
    return nil
}

func compress(data []byte) ([]byte, error) {
    var buf bytes.Buffer
    w := lz4.NewWriter(&buf)
    if _, err := w.Write(data); err != nil {
        w.Close()
        return nil, err
    }
    if err := w.Close(); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
    r := lz4.NewReader(bytes.NewReader(data))
    var buf bytes.Buffer
    if _, err := io.Copy(&buf, r); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}
