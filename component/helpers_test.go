package component

import (
	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/vmath"
)

// testHost is a minimal machine for component tests
type testHost struct {
	world  *physics.World
	reg    *physics.Registry
	time   float64
	frame  int
	seed   uint64
	events []event.Event
}

func newTestHost() *testHost {
	h := &testHost{
		world: physics.NewWorld(vmath.V2F(0, -9.8)),
		reg:   physics.NewRegistry(),
		seed:  7,
	}
	h.world.SetContactListener(h.reg)
	return h
}

func (h *testHost) Contacts() *physics.Registry { return h.reg }
func (h *testHost) MachineTime() float64        { return h.time }
func (h *testHost) MachineFrame() int           { return h.frame }
func (h *testHost) Seed() uint64                { return h.seed }

func (h *testHost) Emit(e event.Event) {
	e.Frame = h.frame
	h.events = append(h.events, e)
}

// install attaches and installs c the way a machine does
func (h *testHost) install(c Component) {
	c.SetMachine(h)
	c.Reset()
	c.InstallPhysics(h.world)
}

// step runs one machine frame over the given components
func (h *testHost) step(dt float64, cs ...Component) {
	for _, c := range cs {
		c.Update(dt)
	}
	h.world.Advance(dt, 6, 2)
	h.frame++
	h.time += dt
}

// fakeContact is a scripted contact between two bodies
type fakeContact struct {
	a, b     *physics.Body
	touching bool
	enabled  bool
	tangent  float64
}

func newFakeContact() *fakeContact {
	return &fakeContact{touching: true, enabled: true}
}

func (f *fakeContact) BodyA() *physics.Body          { return f.a }
func (f *fakeContact) BodyB() *physics.Body          { return f.b }
func (f *fakeContact) IsTouching() bool              { return f.touching }
func (f *fakeContact) SetEnabled(enabled bool)       { f.enabled = enabled }
func (f *fakeContact) IsEnabled() bool               { return f.enabled }
func (f *fakeContact) SetTangentSpeed(speed float64) { f.tangent = speed }
func (f *fakeContact) TangentSpeed() float64         { return f.tangent }
