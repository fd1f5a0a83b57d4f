package component

import (
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Conveyor carries touching bodies left at its driven speed
type Conveyor struct {
	base
	physics.NopListener

	belt  PhysicsPolygon
	sink  *RotationSink
	speed float64
}

func NewConveyor() *Conveyor {
	c := &Conveyor{belt: NewPhysicsPolygon()}
	c.belt.BottomCenteredRectangle(parameter.ConveyorWidth, parameter.ConveyorHeight)
	c.belt.SetColor(render.ColorConveyor)
	c.sink = NewRotationSink(c)
	return c
}

func (c *Conveyor) Sink() *RotationSink {
	return c.sink
}

func (c *Conveyor) Speed() float64 {
	return c.speed
}

func (c *Conveyor) SetPosition(x, y float64) {
	c.belt.SetInitialPosition(x, y)
}

func (c *Conveyor) Position() vmath.Vec2F {
	return c.belt.InitialPosition()
}

// ShaftPosition is where the driving pulley sits
func (c *Conveyor) ShaftPosition() vmath.Vec2F {
	return vmath.V2FAdd(c.Position(), vmath.V2F(parameter.ConveyorShaftOffsetX, parameter.ConveyorShaftOffsetY))
}

// Body returns the belt body, nil before InstallPhysics
func (c *Conveyor) Body() *physics.Body {
	return c.belt.Body()
}

// Rotate stores the speed only; the belt has no visible rotation
func (c *Conveyor) Rotate(rotation, speed float64) {
	c.speed = speed
}

// Update sets every touching body moving at the belt speed
func (c *Conveyor) Update(dt float64) {
	for _, other := range c.belt.touching() {
		other.SetLinearVelocity(vmath.V2F(-c.speed, 0))
	}
}

// PreSolve gives the contact surface the belt speed
func (c *Conveyor) PreSolve(contact physics.Contact) {
	contact.SetTangentSpeed(c.speed)
}

func (c *Conveyor) Reset() {
	c.speed = 0
}

func (c *Conveyor) InstallPhysics(w *physics.World) {
	c.belt.InstallPhysics(w)
	if r := c.registry(); r != nil {
		r.Add(c.belt.Body(), c)
	}
}

func (c *Conveyor) Draw(canvas render.Canvas) {
	pos := c.Position()
	c.belt.DrawPolygon(canvas, pos.X, pos.Y, 0)

	// Rollers at both ends
	r := parameter.ConveyorHeight / 2
	var roller Polygon
	roller.Circle(r)
	roller.SetColor(render.ColorPulley)
	half := parameter.ConveyorWidth/2 - r
	roller.DrawPolygon(canvas, pos.X-half, pos.Y+r, 0)
	roller.DrawPolygon(canvas, pos.X+half, pos.Y+r, 0)
}

func (c *Conveyor) Snapshot() []float64 {
	return []float64{c.speed}
}
