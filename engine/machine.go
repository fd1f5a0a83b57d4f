package engine

import (
	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Machine owns an ordered list of components and the physics world they live in
// Components update in insertion order; a sink added before its driver sees the drive one frame late
type Machine struct {
	number    int
	frame     int
	frameRate float64
	elapsed   float64
	location  vmath.Vec2F
	seed      uint64

	world    *physics.World
	registry *physics.Registry
	events   *event.Queue

	components []component.Component
}

// NewMachine creates an empty machine; call Reset after adding components
func NewMachine(number int) *Machine {
	m := &Machine{
		number:    number,
		frameRate: parameter.DefaultFrameRate,
		seed:      vmath.Mix64(parameter.DefaultSeed, uint64(number)),
		events:    event.NewQueue(parameter.EventQueueSize),
	}
	m.newWorld()
	return m
}

func (m *Machine) newWorld() {
	m.world = physics.NewWorld(vmath.V2F(0, parameter.Gravity))
	m.registry = physics.NewRegistry()
	m.world.SetContactListener(m.registry)
}

// AddComponent appends c and points it at this machine
func (m *Machine) AddComponent(c component.Component) {
	c.SetMachine(m)
	m.components = append(m.components, c)
}

// Components returns the components in evaluation order
func (m *Machine) Components() []component.Component {
	return m.components
}

// Update advances every component then the world by dt seconds
func (m *Machine) Update(dt float64) {
	m.elapsed += dt
	for _, c := range m.components {
		c.Update(dt)
	}
	m.world.Advance(dt, parameter.VelocityIterations, parameter.PositionIterations)
}

// Reset replaces the world and reinstalls every component at its initial placement
func (m *Machine) Reset() {
	m.world.Discard()
	m.newWorld()
	m.events = event.NewQueue(parameter.EventQueueSize)
	m.elapsed = 0

	for _, c := range m.components {
		c.Reset()
		c.InstallPhysics(m.world)
	}
	m.Emit(event.Event{Type: event.MachineReset, Source: "machine", Value: float64(m.number)})
}

// Draw draws every component in evaluation order
func (m *Machine) Draw(c render.Canvas) {
	for _, comp := range m.components {
		comp.Draw(c)
	}
}

// DrawPhysics outlines every body in the world
func (m *Machine) DrawPhysics(c render.Canvas) {
	for _, b := range m.world.Bodies() {
		for _, outline := range b.Outlines() {
			c.StrokePolygon(outline, render.ColorDebug)
		}
	}
}

// Snapshot returns each component's state in evaluation order
func (m *Machine) Snapshot() [][]float64 {
	out := make([][]float64, len(m.components))
	for i, c := range m.components {
		out[i] = c.Snapshot()
	}
	return out
}

// Events drains pending machine events
func (m *Machine) Events() []event.Event {
	return m.events.Consume()
}

// Emit queues e stamped with the current frame
func (m *Machine) Emit(e event.Event) {
	e.Frame = m.frame
	m.events.Push(e)
}

func (m *Machine) Number() int                 { return m.number }
func (m *Machine) Frame() int                  { return m.frame }
func (m *Machine) FrameRate() float64          { return m.frameRate }
func (m *Machine) Elapsed() float64            { return m.elapsed }
func (m *Machine) Location() vmath.Vec2F       { return m.location }
func (m *Machine) World() *physics.World       { return m.world }
func (m *Machine) Contacts() *physics.Registry { return m.registry }
func (m *Machine) Seed() uint64                { return m.seed }
func (m *Machine) MachineFrame() int           { return m.frame }
func (m *Machine) SetMachineFrame(frame int)   { m.frame = frame }
func (m *Machine) SetFrameRate(rate float64)   { m.frameRate = rate }
func (m *Machine) SetLocation(loc vmath.Vec2F) { m.location = loc }
func (m *Machine) SetSeed(seed uint64)         { m.seed = seed }

// MachineTime is the current frame in seconds
func (m *Machine) MachineTime() float64 {
	if m.frameRate <= 0 {
		return 0
	}
	return float64(m.frame) / m.frameRate
}
