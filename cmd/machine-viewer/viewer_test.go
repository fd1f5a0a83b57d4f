package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goldberg/audio"
	"github.com/lixenwraith/goldberg/config"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/parameter"
)

func newTestViewer(t *testing.T) (*Viewer, *engine.MockTimeProvider, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	provider := engine.NewMockTimeProvider(time.Unix(0, 0))
	v := NewViewer(screen, engine.NewPausableClock(provider), audio.NewCuePlayer(), 2)
	v.Restore(config.State{MachineNumber: 1, FrameRate: 30, Running: true})
	return v, provider, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestViewerFollowsClock verifies ticks seek the machine to the playback time
func TestViewerFollowsClock(t *testing.T) {
	v, provider, _ := newTestViewer(t)

	provider.Advance(time.Second)
	v.Tick()
	if got := v.System().MachineFrame(); got != 30 {
		t.Errorf("Expected frame 30, got %d", got)
	}

	v.HandleEvent(key(' '))
	provider.Advance(time.Second)
	v.Tick()
	if got := v.System().MachineFrame(); got != 30 {
		t.Errorf("Expected paused at frame 30, got %d", got)
	}
	if v.State().Running {
		t.Error("Expected paused state")
	}
}

// TestViewerSeekKeys verifies arrow seeks and single frame steps
func TestViewerSeekKeys(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.HandleEvent(key(' '))

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if got := v.System().MachineFrame(); got != 30 {
		t.Errorf("Expected frame 30 after seek, got %d", got)
	}
	if events := v.Tick(); events != nil {
		t.Errorf("Expected no cues after a seek, got %v", events)
	}

	v.HandleEvent(key('.'))
	if got := v.System().MachineFrame(); got != 31 {
		t.Errorf("Expected frame 31 after step, got %d", got)
	}
	v.HandleEvent(key(','))
	v.HandleEvent(key(','))
	if got := v.System().MachineFrame(); got != 29 {
		t.Errorf("Expected frame 29 after two steps back, got %d", got)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	v.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if got := v.System().MachineFrame(); got != 0 {
		t.Errorf("Expected clamp to frame 0, got %d", got)
	}
}

// TestViewerMachineKeys verifies machine selection and the physics toggle
func TestViewerMachineKeys(t *testing.T) {
	v, provider, _ := newTestViewer(t)
	provider.Advance(2 * time.Second)
	v.Tick()

	v.HandleEvent(key('2'))
	if v.System().MachineNumber() != 2 || v.System().MachineFrame() != 0 {
		t.Errorf("Expected machine 2 at frame 0, got %d at %d", v.System().MachineNumber(), v.System().MachineFrame())
	}

	v.HandleEvent(key('d'))
	if v.System().Flag()&parameter.FlagDrawPhysics == 0 {
		t.Error("Expected physics outlines on")
	}
	v.HandleEvent(key('d'))
	if v.System().Flag() != parameter.DefaultDrawFlag {
		t.Errorf("Expected default flag, got %d", v.System().Flag())
	}

	v.HandleEvent(key('m'))
	if !v.cues.Muted() {
		t.Error("Expected muted")
	}
}

// TestViewerQuit verifies the quit keys
func TestViewerQuit(t *testing.T) {
	v, _, _ := newTestViewer(t)
	if v.HandleEvent(key('x')) != true {
		t.Error("Expected unbound key to keep running")
	}
	if v.HandleEvent(key('q')) {
		t.Error("Expected q to quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected escape to quit")
	}
}

// TestViewerStartTime verifies the machine waits for its start time
func TestViewerStartTime(t *testing.T) {
	v, provider, _ := newTestViewer(t)
	v.Restore(config.State{MachineNumber: 2, FrameRate: 30, StartTime: 1, Running: true})

	provider.Advance(500 * time.Millisecond)
	v.Tick()
	if got := v.System().MachineFrame(); got != 0 {
		t.Errorf("Expected frame 0 before start, got %d", got)
	}
	provider.Advance(time.Second)
	v.Tick()
	if got := v.System().MachineFrame(); got != 15 {
		t.Errorf("Expected frame 15, got %d", got)
	}
}

// TestViewerDraw verifies the help and status rows and machine cells
func TestViewerDraw(t *testing.T) {
	v, _, screen := newTestViewer(t)
	v.Draw()

	cells, w, h := screen.GetContents()
	if w != 120 || h != 40 {
		t.Fatalf("Expected 120x40, got %dx%d", w, h)
	}
	if got := cells[0].Runes; len(got) == 0 || got[0] != []rune(helpText)[0] {
		t.Errorf("Expected help text on the first row, got %v", got)
	}
	if got := cells[(h-1)*w].Runes; len(got) == 0 || got[0] != '[' {
		t.Errorf("Expected status on the last row, got %v", got)
	}

	filled := 0
	for y := 1; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if r := cells[y*w+x].Runes; len(r) > 0 && r[0] != ' ' {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("Expected machine cells drawn")
	}
}
