package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphkit/document"
)

// Store persists editor state between sessions.
type Store interface {
	// Load returns the stored state. It returns an error matching
	// fs.ErrNotExist when nothing has been stored yet.
	Load() (*document.Result, error)
	Save(document.State) error
}

// ErrNoConfigDir is returned by DefaultStatePath when the user
// configuration directory cannot be determined.
var ErrNoConfigDir = errors.New("editor: no user config directory")

// DefaultStatePath returns $XDG_CONFIG_HOME/glyphkit/state.json, or the
// platform equivalent.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "glyphkit", "state.json"), nil
}

// FileStore keeps the state as a document file. Writes go to a temporary
// file in the same directory that is then renamed over the target, so a
// crash never leaves a truncated file behind.
type FileStore struct {
	Path    string
	Options document.Options
}

// NewFileStore returns a store for the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and parses the state file.
func (s *FileStore) Load() (*document.Result, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := document.Import(f, s.Options)
	if err != nil {
		return nil, fmt.Errorf("editor: load %s: %w", s.Path, err)
	}
	return res, nil
}

// Save writes st to the state file atomically.
func (s *FileStore) Save(st document.State) (err error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = document.Write(tmp, st); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	return nil
}
