package component

import (
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Body is a free-standing physical part: floor, beam, ball, domino, arm
// As a rotation sink it spins a kinematic body at the driven speed
type Body struct {
	base
	PhysicsPolygon

	sink  *RotationSink
	speed float64 // turns per second, counter-clockwise positive
}

// NewBody creates a static body with default fixture values
func NewBody() *Body {
	b := &Body{PhysicsPolygon: NewPhysicsPolygon()}
	b.sink = NewRotationSink(b)
	return b
}

func (b *Body) Sink() *RotationSink {
	return b.sink
}

// SetPosition places the body origin
func (b *Body) SetPosition(x, y float64) {
	b.SetInitialPosition(x, y)
}

func (b *Body) Position() vmath.Vec2F {
	return b.PhysicsPolygon.Position()
}

func (b *Body) Draw(c render.Canvas) {
	b.PhysicsPolygon.Draw(c)
}

func (b *Body) Update(dt float64) {}

// Rotate sets the body's angular velocity from speed in turns per second
func (b *Body) Rotate(rotation, speed float64) {
	b.speed = speed
	if b.body != nil {
		b.body.SetAngularVelocity(vmath.Turns(speed))
	}
}

func (b *Body) Reset() {
	b.speed = 0
}

func (b *Body) InstallPhysics(w *physics.World) {
	b.PhysicsPolygon.InstallPhysics(w)
}

func (b *Body) Snapshot() []float64 {
	return append(b.state(), b.speed)
}
