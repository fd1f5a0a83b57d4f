package component

import (
	"errors"

	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

var (
	// ErrSinkDriven is returned when a second source is wired to a sink
	ErrSinkDriven = errors.New("component: rotation sink already has a driver")

	// ErrSourceBound is returned when a source that already drives a sink is wired again
	ErrSourceBound = errors.New("component: rotation source already drives a sink")

	// ErrBasketEmpty is raised when a basket fires with no ball touching its base
	ErrBasketEmpty = errors.New("component: basket fired with no contact")
)

// Host is the machine as seen from a component
type Host interface {
	// Contacts returns the registry of the current world
	Contacts() *physics.Registry
	MachineTime() float64
	MachineFrame() int
	// Emit queues an event stamped with the current frame
	Emit(e event.Event)
	// Seed is the machine-scoped seed for cosmetic randomness
	Seed() uint64
}

// Component is one part of a machine
// Lifecycle: construct, SetPosition, InstallPhysics, Update per frame, Reset on rewind
type Component interface {
	Draw(c render.Canvas)
	Update(dt float64)
	// Reset restores every mutable field to its post-placement value
	Reset()
	// InstallPhysics creates bodies in w from stored geometry
	InstallPhysics(w *physics.World)
	// Rotate receives a drive from a rotation source; no-op unless the component is a sink
	Rotate(rotation, speed float64)

	SetPosition(x, y float64)
	Position() vmath.Vec2F
	SetMachine(h Host)
	Machine() Host

	Name() string
	SetName(name string)
	// Snapshot returns the state that must match between replays
	Snapshot() []float64
}

// Driver is a component that owns a rotation source
type Driver interface {
	Component
	Source() *RotationSource
}

// Driven is a component that owns a rotation sink
type Driven interface {
	Component
	Sink() *RotationSink
}

// Connect wires src to drive dst
func Connect(src Driver, dst Driven) error {
	return src.Source().SetSink(dst.Sink())
}

// base carries the host reference and name shared by every component
type base struct {
	host Host
	name string
}

func (b *base) SetMachine(h Host)              { b.host = h }
func (b *base) Machine() Host                  { return b.host }
func (b *base) Name() string                   { return b.name }
func (b *base) SetName(name string)            { b.name = name }
func (b *base) Rotate(rotation, speed float64) {}

func (b *base) emit(t event.Type, value float64) {
	if b.host == nil {
		return
	}
	b.host.Emit(event.Event{Type: t, Source: b.name, Value: value})
}

func (b *base) registry() *physics.Registry {
	if b.host == nil {
		return nil
	}
	return b.host.Contacts()
}

func (b *base) machineTime() float64 {
	if b.host == nil {
		return 0
	}
	return b.host.MachineTime()
}

func boolf(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
