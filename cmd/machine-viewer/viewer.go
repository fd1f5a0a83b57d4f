package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goldberg/audio"
	"github.com/lixenwraith/goldberg/config"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/status"
	"github.com/lixenwraith/goldberg/system"
	"github.com/lixenwraith/goldberg/vmath"
)

// Machine extent in centimeters used to fit the view
const (
	viewWidthCm   = 640.0
	viewHeightCm  = 420.0
	viewCenterYCm = 110.0

	// seekStep is the arrow key jump
	seekStep = time.Second

	// maxCueFrames is the largest per-tick advance that still plays cues; bigger jumps are seeks
	maxCueFrames = 4

	helpText = "space pause  ←/→ seek  ,/. step  home restart  1/2 machine  d physics  m mute  q quit"
)

// Viewer drives a machine system from the playback clock and draws it onto a tcell screen
// All methods run on the viewer loop goroutine
type Viewer struct {
	screen  tcell.Screen
	canvas  *render.TerminalCanvas
	system  *system.MachineSystem
	metrics *status.Registry
	clock   *engine.PausableClock
	cues    *audio.CuePlayer

	aspect float64
	zoom   float64

	statRunning *atomic.Bool
	statDebug   *atomic.Bool
}

// NewViewer wires a system to screen; cues may be uninitialized
func NewViewer(screen tcell.Screen, clock *engine.PausableClock, cues *audio.CuePlayer, aspect float64) *Viewer {
	metrics := status.NewRegistry()
	v := &Viewer{
		screen:      screen,
		canvas:      render.NewTerminalCanvas(screen, aspect, render.RGBBlack),
		system:      system.NewMachineSystem(metrics),
		metrics:     metrics,
		clock:       clock,
		cues:        cues,
		aspect:      aspect,
		statRunning: metrics.Bools.Get(status.KeyRunning),
		statDebug:   metrics.Bools.Get(status.KeyDebugDraw),
	}
	v.statRunning.Store(!clock.IsPaused())
	v.layout()
	return v
}

// Restore applies persisted state and restarts playback at frame 0
func (v *Viewer) Restore(st config.State) {
	v.system.Restore(st)
	v.restart()
	if st.Running {
		v.clock.Resume()
	} else {
		v.clock.Pause()
	}
	v.statRunning.Store(st.Running)
	v.layout()
}

// State returns what is persisted on exit
func (v *Viewer) State() config.State {
	return v.system.State(!v.clock.IsPaused())
}

// System exposes the machine system
func (v *Viewer) System() *system.MachineSystem {
	return v.system
}

// HandleEvent applies one input event; false means quit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.layout()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.seek(v.clock.Elapsed() - seekStep)
	case tcell.KeyRight:
		v.seek(v.clock.Elapsed() + seekStep)
	case tcell.KeyHome:
		v.restart()
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			v.statRunning.Store(!v.clock.Toggle())
		case ',':
			v.stepFrames(-1)
		case '.':
			v.stepFrames(1)
		case 'd':
			v.system.SetFlag(v.system.Flag() ^ parameter.FlagDrawPhysics)
			v.statDebug.Store(v.system.Flag()&parameter.FlagDrawPhysics != 0)
		case 'm':
			v.cues.SetMuted(!v.cues.Muted())
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			v.system.SetMachineNumber(int(r - '0'))
			v.restart()
		}
	}
	return true
}

// restart rewinds the clock and the machine to frame 0
func (v *Viewer) restart() {
	v.seek(0)
	log.Printf("viewer: machine %d restarted", v.system.MachineNumber())
}

// sync seeks the machine to the animation frame at elapsed; the start time delays the machine
func (v *Viewer) sync(elapsed time.Duration) {
	rate := v.system.FrameRate()
	v.system.SyncToAnimation(engine.FrameAt(elapsed, rate), rate)
}

// seek moves playback to elapsed, dropping the events crossed
func (v *Viewer) seek(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	v.clock.Seek(elapsed)
	v.sync(elapsed)
	v.system.DrainEvents()
}

// stepFrames moves by n animation frames, landing mid-frame so truncation picks the intended frame
func (v *Viewer) stepFrames(n int) {
	rate := v.system.FrameRate()
	target := engine.FrameAt(v.clock.Elapsed(), rate) + n
	if target < 0 {
		target = 0
	}
	v.seek(time.Duration((float64(target) + 0.5) / rate * float64(time.Second)))
}

// Tick advances the machine to the clock and plays cues for small forward steps
func (v *Viewer) Tick() []event.Event {
	before := v.system.MachineFrame()
	v.sync(v.clock.Elapsed())
	advance := v.system.MachineFrame() - before
	if advance == 0 {
		return nil
	}
	events := v.system.DrainEvents()
	if advance > 0 && advance <= maxCueFrames {
		v.cues.PlayAll(events)
		return events
	}
	return nil
}

// layout fits the machine to the screen and centers it
func (v *Viewer) layout() {
	w, h := v.screen.Size()
	devW := float64(w)
	devH := float64(h-2) * v.aspect // two rows for help and status
	ppc := parameter.PixelsPerCentimeter
	v.zoom = math.Max(math.Min(devW/(viewWidthCm*ppc), devH/(viewHeightCm*ppc)), 0.01)

	// Location is given before zoom
	v.system.SetLocation(vmath.V2F(
		devW/2/v.zoom,
		(v.aspect+devH/2)/v.zoom+viewCenterYCm*ppc,
	))
}

// Draw renders the machine, the help row and the status row
func (v *Viewer) Draw() {
	v.canvas.Clear()
	v.canvas.PushState()
	v.canvas.Scale(v.zoom, v.zoom)
	v.system.DrawMachine(v.canvas)
	v.canvas.PopState()

	w, h := v.screen.Size()
	v.drawRow(0, helpText, w)
	v.drawRow(h-1, v.statusLine(), w)
	v.screen.Show()
}

func (v *Viewer) statusLine() string {
	state := "running"
	if v.clock.IsPaused() {
		state = "paused"
	}
	if v.cues.Muted() {
		state += " muted"
	}
	return fmt.Sprintf("[%s] %s", state, strings.Join(v.metrics.Lines(), " "))
}

func (v *Viewer) drawRow(y int, text string, width int) {
	style := tcell.StyleDefault.Foreground(render.RGBWhite.TCell()).Background(render.RGBBlack.TCell())
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
