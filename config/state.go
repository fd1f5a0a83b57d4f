package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/goldberg/parameter"
)

// State is the persisted machine selection and playback position
type State struct {
	MachineNumber int     `toml:"machine_number"`
	StartTime     float64 `toml:"start_time"` // seconds of outer animation before the machine starts
	FrameRate     float64 `toml:"frame_rate"`
	Running       bool    `toml:"running"`
}

// Default returns the state used when nothing valid is stored
func Default() State {
	return State{
		MachineNumber: parameter.DefaultMachineNumber,
		FrameRate:     parameter.DefaultFrameRate,
	}
}

// ValidFrameRate reports whether rate is a usable frame rate
func ValidFrameRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0 && rate <= parameter.MaxFrameRate
}

// Sanitize replaces invalid fields with defaults and returns the names of the fields replaced
func (s *State) Sanitize() []string {
	var fixed []string
	def := Default()
	if s.MachineNumber < 1 {
		s.MachineNumber = def.MachineNumber
		fixed = append(fixed, "machine_number")
	}
	if math.IsNaN(s.StartTime) || math.IsInf(s.StartTime, 0) || s.StartTime < 0 {
		s.StartTime = def.StartTime
		fixed = append(fixed, "start_time")
	}
	if !ValidFrameRate(s.FrameRate) {
		s.FrameRate = def.FrameRate
		fixed = append(fixed, "frame_rate")
	}
	return fixed
}

// Load reads state from path, falling back per field to defaults
// A missing file is not an error; a malformed one returns defaults and the decode error
func Load(path string) (State, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}

	var stored State
	md, err := toml.Decode(string(data), &stored)
	if err != nil {
		log.Printf("config: %s unreadable, using defaults: %v", path, err)
		return s, fmt.Errorf("config: decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
	}

	if md.IsDefined("machine_number") {
		s.MachineNumber = stored.MachineNumber
	}
	if md.IsDefined("start_time") {
		s.StartTime = stored.StartTime
	}
	if md.IsDefined("frame_rate") {
		s.FrameRate = stored.FrameRate
	}
	s.Running = stored.Running

	for _, field := range s.Sanitize() {
		log.Printf("config: invalid %s in %s, using default", field, path)
	}
	return s, nil
}

// Save writes s to path through a temporary file so a crash never leaves a partial file
func Save(path string, s State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("config: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: rename: %w", err)
	}
	return nil
}
