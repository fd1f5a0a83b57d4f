package component

import (
	"math"

	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Polygon is drawable local geometry in centimeters
type Polygon struct {
	points []vmath.Vec2F
	radius float64 // > 0 when built by Circle
	color  render.RGB
}

// AddPoint appends a local vertex
func (p *Polygon) AddPoint(x, y float64) {
	p.points = append(p.points, vmath.V2F(x, y))
}

// Rectangle sets the geometry to a rectangle with lower-left corner (x, y)
func (p *Polygon) Rectangle(x, y, width, height float64) {
	p.points = render.Rect(x, y, width, height)
	p.radius = 0
}

// BottomCenteredRectangle sets a rectangle whose origin is its bottom center
func (p *Polygon) BottomCenteredRectangle(width, height float64) {
	p.Rectangle(-width/2, 0, width, height)
}

// CenteredSquare sets a square centered on the origin
func (p *Polygon) CenteredSquare(size float64) {
	p.Rectangle(-size/2, -size/2, size, size)
}

// Circle sets the geometry to a circle of radius around the origin
func (p *Polygon) Circle(radius float64) {
	p.radius = radius
	p.points = physics.Circle(radius).Outline()
}

func (p *Polygon) SetColor(c render.RGB) {
	p.color = c
}

func (p *Polygon) Color() render.RGB {
	return p.color
}

// Points returns the local vertices
func (p *Polygon) Points() []vmath.Vec2F {
	return p.points
}

// Bounds returns local min and max corners
func (p *Polygon) Bounds() (lo, hi vmath.Vec2F) {
	if len(p.points) == 0 {
		return
	}
	lo, hi = p.points[0], p.points[0]
	for _, q := range p.points[1:] {
		lo = vmath.V2F(math.Min(lo.X, q.X), math.Min(lo.Y, q.Y))
		hi = vmath.V2F(math.Max(hi.X, q.X), math.Max(hi.Y, q.Y))
	}
	return lo, hi
}

// DrawPolygon fills the polygon at pos rotated by rotation turns
func (p *Polygon) DrawPolygon(c render.Canvas, x, y, rotation float64) {
	p.drawAt(c, vmath.V2F(x, y), vmath.Turns(rotation))
}

// drawAt fills the polygon at pos rotated by angle radians, counter-clockwise positive
func (p *Polygon) drawAt(c render.Canvas, pos vmath.Vec2F, angle float64) {
	if len(p.points) < 3 {
		return
	}
	c.PushState()
	c.Translate(pos.X, pos.Y)
	if angle != 0 {
		c.Rotate(angle)
	}
	c.FillPolygon(p.points, p.color)
	c.PopState()
}

// shape returns the physics fixture for this geometry
func (p *Polygon) shape() physics.Shape {
	if p.radius > 0 {
		return physics.Circle(p.radius)
	}
	return physics.Polygon(p.points)
}

// PhysicsPolygon is a Polygon with a body in the machine world
type PhysicsPolygon struct {
	Polygon

	initialPosition vmath.Vec2F
	initialRotation float64 // turns
	bodyType        physics.BodyType
	density         float64
	friction        float64
	restitution     float64

	body *physics.Body
}

// NewPhysicsPolygon creates a static polygon with default fixture values
func NewPhysicsPolygon() PhysicsPolygon {
	return PhysicsPolygon{
		bodyType:    physics.Static,
		density:     parameter.DefaultDensity,
		friction:    parameter.DefaultFriction,
		restitution: parameter.DefaultRestitution,
	}
}

func (p *PhysicsPolygon) SetInitialPosition(x, y float64) {
	p.initialPosition = vmath.V2F(x, y)
}

func (p *PhysicsPolygon) InitialPosition() vmath.Vec2F {
	return p.initialPosition
}

// SetInitialRotation sets the starting rotation in turns
func (p *PhysicsPolygon) SetInitialRotation(rotation float64) {
	p.initialRotation = rotation
}

func (p *PhysicsPolygon) SetDynamic()   { p.bodyType = physics.Dynamic }
func (p *PhysicsPolygon) SetKinematic() { p.bodyType = physics.Kinematic }

func (p *PhysicsPolygon) BodyType() physics.BodyType {
	return p.bodyType
}

// SetPhysics sets fixture density, friction and restitution
func (p *PhysicsPolygon) SetPhysics(density, friction, restitution float64) {
	p.density = density
	p.friction = friction
	p.restitution = restitution
}

// InstallPhysics creates a fresh body at the initial placement, dropping any previous one
func (p *PhysicsPolygon) InstallPhysics(w *physics.World) {
	p.body = w.CreateBody(physics.BodyDef{
		Type:        p.bodyType,
		Position:    p.initialPosition,
		Angle:       vmath.Turns(p.initialRotation),
		Shapes:      []physics.Shape{p.shape()},
		Density:     p.density,
		Friction:    p.friction,
		Restitution: p.restitution,
	})
}

// Body returns the installed body, nil before InstallPhysics
func (p *PhysicsPolygon) Body() *physics.Body {
	return p.body
}

// Position returns the body position when installed, else the initial placement
func (p *PhysicsPolygon) Position() vmath.Vec2F {
	if p.body != nil && !p.body.World().Discarded() {
		return p.body.Position()
	}
	return p.initialPosition
}

// Angle returns the body angle in radians when installed, else the initial rotation
func (p *PhysicsPolygon) Angle() float64 {
	if p.body != nil && !p.body.World().Discarded() {
		return p.body.Angle()
	}
	return vmath.Turns(p.initialRotation)
}

// Draw fills the polygon at its current body pose
func (p *PhysicsPolygon) Draw(c render.Canvas) {
	p.drawAt(c, p.Position(), p.Angle())
}

// touching returns bodies in live touching contact with this body, in solver order
func (p *PhysicsPolygon) touching() []*physics.Body {
	if p.body == nil {
		return nil
	}
	var out []*physics.Body
	for _, e := range p.body.Contacts() {
		if e.Other != nil && e.Contact.IsTouching() {
			out = append(out, e.Other)
		}
	}
	return out
}

// state returns pose and velocity for snapshots
func (p *PhysicsPolygon) state() []float64 {
	if p.body == nil {
		return []float64{p.initialPosition.X, p.initialPosition.Y, vmath.Turns(p.initialRotation), 0, 0, 0}
	}
	pos := p.body.Position()
	v := p.body.LinearVelocity()
	return []float64{pos.X, pos.Y, p.body.Angle(), v.X, v.Y, p.body.AngularVelocity()}
}
