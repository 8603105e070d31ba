package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// State is the volatile session state document (state.json). Fields are
// path addressed so partial updates never rewrite unrelated values.
// It is safe for concurrent use.
type State struct {
	mu   sync.Mutex
	path string
	raw  string
}

// State document paths.
const (
	statePathLastComboFile  = "combo.last_file"
	statePathStepIndex      = "combo.step_index"
	statePathOverlayVisible = "overlay.visible"
)

// OpenState loads the state document at path, starting empty if the
// file does not exist or cannot be parsed.
func OpenState(path string) *State {
	s := &State{path: path, raw: "{}"}
	data, err := os.ReadFile(path)
	if err == nil && gjson.ValidBytes(data) {
		s.raw = string(data)
	}
	return s
}

// StatePath returns the default state file path, next to the settings
// file.
func StatePath() string {
	return filepath.Join(filepath.Dir(ConfigPath()), "state.json")
}

// LastComboFile returns the most recently loaded combo script path.
func (s *State) LastComboFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gjson.Get(s.raw, statePathLastComboFile).String()
}

// SetLastComboFile records the most recently loaded combo script path.
func (s *State) SetLastComboFile(path string) {
	s.set(statePathLastComboFile, path)
}

// StepIndex returns the persisted combo position.
func (s *State) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(gjson.Get(s.raw, statePathStepIndex).Int())
}

// SetStepIndex records the combo position.
func (s *State) SetStepIndex(index int) {
	s.set(statePathStepIndex, index)
}

// OverlayVisible returns the persisted overlay visibility, defaulting
// to true when unset.
func (s *State) OverlayVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := gjson.Get(s.raw, statePathOverlayVisible)
	if !v.Exists() {
		return true
	}
	return v.Bool()
}

// SetOverlayVisible records the overlay visibility.
func (s *State) SetOverlayVisible(visible bool) {
	s.set(statePathOverlayVisible, visible)
}

func (s *State) set(path string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw, err := sjson.Set(s.raw, path, value); err == nil {
		s.raw = raw
	}
}

// Save writes the state document to disk.
func (s *State) Save() error {
	s.mu.Lock()
	raw, path := s.raw, s.path
	s.mu.Unlock()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
