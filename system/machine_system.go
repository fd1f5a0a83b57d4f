package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/goldberg/config"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/machines"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/status"
	"github.com/lixenwraith/goldberg/vmath"
)

// MachineSystem exposes a machine as a seekable timeline
// Machine state is a function of (machine number, frame, frame rate): any frame is
// reached by replaying from frame 0 at the fixed step 1/frameRate
type MachineSystem struct {
	machine   *engine.Machine
	number    int
	frame     int
	frameRate float64
	location  vmath.Vec2F
	flag      int
	startTime float64

	pending []event.Event

	// Cached metric pointers
	statFrame   *atomic.Int64
	statMachine *atomic.Int64
	statResets  *atomic.Int64
	statSteps   *atomic.Int64
	statReplays *atomic.Int64
	statEvents  *atomic.Int64
	statRate    *status.AtomicFloat
	statTime    *status.AtomicFloat
	statLast    *status.AtomicString
}

// NewMachineSystem creates a system showing machine 1 at frame 0; metrics may be nil
func NewMachineSystem(metrics *status.Registry) *MachineSystem {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	s := &MachineSystem{
		frameRate:   parameter.DefaultFrameRate,
		flag:        parameter.DefaultDrawFlag,
		statFrame:   metrics.Ints.Get(status.KeyFrame),
		statMachine: metrics.Ints.Get(status.KeyMachine),
		statResets:  metrics.Ints.Get(status.KeyResets),
		statSteps:   metrics.Ints.Get(status.KeySteps),
		statReplays: metrics.Ints.Get(status.KeyReplays),
		statEvents:  metrics.Ints.Get(status.KeyEvents),
		statRate:    metrics.Floats.Get(status.KeyFrameRate),
		statTime:    metrics.Floats.Get(status.KeyTime),
		statLast:    metrics.Strings.Get(status.KeyLastEvent),
	}
	s.statRate.Set(s.frameRate)
	s.SetMachineNumber(parameter.DefaultMachineNumber)
	return s
}

// SetMachineNumber builds machine number from the catalog and rewinds to frame 0
// Unknown numbers build the default machine
func (s *MachineSystem) SetMachineNumber(number int) {
	m, actual := machines.New(number)
	m.SetFrameRate(s.frameRate)
	m.SetLocation(s.location)

	s.machine = m
	s.number = actual
	s.pending = s.pending[:0]
	s.rewind()
	s.statMachine.Store(int64(actual))
}

func (s *MachineSystem) MachineNumber() int {
	return s.number
}

// SetMachineFrame seeks to frame, replaying from 0 when going backward
// Negative frames clamp to 0
func (s *MachineSystem) SetMachineFrame(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame < s.frame {
		s.rewind()
	}

	dt := 1 / s.frameRate
	for ; s.frame < frame; s.frame++ {
		s.machine.SetMachineFrame(s.frame)
		s.machine.Update(dt)
		s.collect()
		s.statSteps.Add(1)
	}
	s.machine.SetMachineFrame(s.frame)
	s.publish()
}

// rewind resets the machine to frame 0
func (s *MachineSystem) rewind() {
	s.frame = 0
	s.machine.SetMachineFrame(0)
	s.machine.Reset()
	s.pending = s.pending[:0]
	s.collect()
	s.statResets.Add(1)
	s.publish()
}

func (s *MachineSystem) MachineFrame() int {
	return s.frame
}

// SetFrameRate changes the step rate and replays to the current frame so state stays a function of the rate
// Invalid rates fall back to the default
func (s *MachineSystem) SetFrameRate(rate float64) {
	if !config.ValidFrameRate(rate) {
		log.Printf("system: invalid frame rate %v, using %v", rate, parameter.DefaultFrameRate)
		rate = parameter.DefaultFrameRate
	}
	if rate == s.frameRate {
		return
	}
	s.frameRate = rate
	s.machine.SetFrameRate(rate)
	s.statRate.Set(rate)

	frame := s.frame
	s.rewind()
	s.SetMachineFrame(frame)
	s.statReplays.Add(1)
}

func (s *MachineSystem) FrameRate() float64 {
	return s.frameRate
}

// MachineTime is the current frame in seconds
func (s *MachineSystem) MachineTime() float64 {
	return float64(s.frame) / s.frameRate
}

// SetLocation sets the device position of the machine origin
func (s *MachineSystem) SetLocation(loc vmath.Vec2F) {
	s.location = loc
	s.machine.SetLocation(loc)
}

func (s *MachineSystem) Location() vmath.Vec2F {
	return s.location
}

// SetFlag selects what DrawMachine draws: FlagDrawMachine, FlagDrawPhysics or both
func (s *MachineSystem) SetFlag(flag int) {
	s.flag = flag
}

func (s *MachineSystem) Flag() int {
	return s.flag
}

// SetStartTime sets the outer animation time at which the machine starts
func (s *MachineSystem) SetStartTime(t float64) {
	s.startTime = t
}

func (s *MachineSystem) StartTime() float64 {
	return s.startTime
}

// SyncToAnimation seeks to the machine frame matching an outer animation frame
// The machine runs at the animation rate and starts startTime seconds in
func (s *MachineSystem) SyncToAnimation(animFrame int, animRate float64) {
	s.SetFrameRate(animRate)
	startFrame := s.startTime * s.frameRate
	s.SetMachineFrame(int(float64(animFrame) - startFrame))
}

// DrawMachine draws at the location, scaled to pixels with Y up
func (s *MachineSystem) DrawMachine(c render.Canvas) {
	c.PushState()
	c.Translate(s.location.X, s.location.Y)
	c.Scale(parameter.PixelsPerCentimeter, -parameter.PixelsPerCentimeter)

	if s.flag&parameter.FlagDrawMachine != 0 {
		s.machine.Draw(c)
	}
	if s.flag&parameter.FlagDrawPhysics != 0 {
		s.machine.DrawPhysics(c)
	}
	c.PopState()
}

// Machine returns the current machine
func (s *MachineSystem) Machine() *engine.Machine {
	return s.machine
}

// Snapshot returns the machine state at the current frame
func (s *MachineSystem) Snapshot() [][]float64 {
	return s.machine.Snapshot()
}

// DrainEvents returns events since the last drain, oldest first
// A rewind drops undrained events from the abandoned timeline
func (s *MachineSystem) DrainEvents() []event.Event {
	if len(s.pending) == 0 {
		return nil
	}
	out := make([]event.Event, len(s.pending))
	copy(out, s.pending)
	s.pending = s.pending[:0]
	return out
}

// State returns the persistable part of the system
func (s *MachineSystem) State(running bool) config.State {
	return config.State{
		MachineNumber: s.number,
		StartTime:     s.startTime,
		FrameRate:     s.frameRate,
		Running:       running,
	}
}

// Restore applies a loaded state and rewinds to frame 0
func (s *MachineSystem) Restore(st config.State) {
	for _, field := range st.Sanitize() {
		log.Printf("system: restored %s invalid, using default", field)
	}
	s.startTime = st.StartTime
	if st.FrameRate != s.frameRate {
		s.frameRate = st.FrameRate
		s.statRate.Set(st.FrameRate)
	}
	s.SetMachineNumber(st.MachineNumber)
}

func (s *MachineSystem) collect() {
	events := s.machine.Events()
	if len(events) == 0 {
		return
	}
	s.pending = append(s.pending, events...)
	s.statEvents.Add(int64(len(events)))
	s.statLast.Store(events[len(events)-1].String())
}

func (s *MachineSystem) publish() {
	s.statFrame.Store(int64(s.frame))
	s.statTime.Set(s.MachineTime())
}
