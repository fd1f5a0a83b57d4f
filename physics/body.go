package physics

import (
	"math"

	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/vmath"
)

// BodyType selects how the solver moves a body
type BodyType uint8

const (
	Static BodyType = iota
	Kinematic
	Dynamic
)

func (t BodyType) b2() uint8 {
	switch t {
	case Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

func (t BodyType) String() string {
	switch t {
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	default:
		return "static"
	}
}

// ShapeKind distinguishes fixture geometry
type ShapeKind uint8

const (
	ShapePolygon ShapeKind = iota
	ShapeCircle
)

// Shape is body-local fixture geometry in centimeters
// Polygons must be convex with at most 8 points
type Shape struct {
	Kind   ShapeKind
	Points []vmath.Vec2F
	Center vmath.Vec2F
	Radius float64
}

// Polygon builds a polygon shape from body-local points
func Polygon(points []vmath.Vec2F) Shape {
	pts := make([]vmath.Vec2F, len(points))
	copy(pts, points)
	return Shape{Kind: ShapePolygon, Points: pts}
}

// Circle builds a circle shape centered on the body origin
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Outline returns the shape as a closed point list in body-local centimeters
func (s Shape) Outline() []vmath.Vec2F {
	if s.Kind != ShapeCircle {
		return s.Points
	}
	steps := parameter.CircleSteps
	pts := make([]vmath.Vec2F, steps)
	for i := 0; i < steps; i++ {
		pts[i] = vmath.V2FAdd(s.Center, vmath.V2FPolar(s.Radius, 2*math.Pi*float64(i)/float64(steps)))
	}
	return pts
}

// BodyDef is the full initial description of a body
// Position is centimeters, Angle is radians
type BodyDef struct {
	Type        BodyType
	Position    vmath.Vec2F
	Angle       float64
	Shapes      []Shape
	Density     float64
	Friction    float64
	Restitution float64
}

// Body is a handle to a solver body owned by a World
type Body struct {
	world *World
	b2    *box2d.B2Body
	def   BodyDef
}

// ContactEdge is one live contact of a body with another
type ContactEdge struct {
	Other   *Body
	Contact Contact
}

func (b *Body) live() *box2d.B2Body {
	b.world.mustLive()
	return b.b2
}

// World returns the owning world
func (b *Body) World() *World {
	return b.world
}

// Def returns the definition the body was created from
func (b *Body) Def() BodyDef {
	return b.def
}

// Type returns the body type
func (b *Body) Type() BodyType {
	return b.def.Type
}

// Position returns the body origin in centimeters
func (b *Body) Position() vmath.Vec2F {
	p := b.live().GetPosition()
	return ToCentimeters(vmath.V2F(p.X, p.Y))
}

// Angle returns the body angle in radians
func (b *Body) Angle() float64 {
	return b.live().GetAngle()
}

// LinearVelocity returns velocity in meters per second
func (b *Body) LinearVelocity() vmath.Vec2F {
	v := b.live().GetLinearVelocity()
	return vmath.V2F(v.X, v.Y)
}

// SetLinearVelocity sets velocity in meters per second
func (b *Body) SetLinearVelocity(v vmath.Vec2F) {
	b.live().SetLinearVelocity(box2d.MakeB2Vec2(v.X, v.Y))
}

// AngularVelocity returns radians per second, counter-clockwise positive
func (b *Body) AngularVelocity() float64 {
	return b.live().GetAngularVelocity()
}

// SetAngularVelocity sets radians per second, counter-clockwise positive
func (b *Body) SetAngularVelocity(w float64) {
	b.live().SetAngularVelocity(w)
}

// ApplyImpulse applies a linear impulse in newton seconds at the center of mass and wakes the body
func (b *Body) ApplyImpulse(impulse vmath.Vec2F) {
	body := b.live()
	body.ApplyLinearImpulse(box2d.MakeB2Vec2(impulse.X, impulse.Y), body.GetWorldCenter(), true)
}

// Mass returns the body mass in kilograms
func (b *Body) Mass() float64 {
	return b.live().GetMass()
}

// Contacts returns the live contact list, touching or not, in solver order
func (b *Body) Contacts() []ContactEdge {
	var edges []ContactEdge
	for e := b.live().GetContactList(); e != nil; e = e.Next {
		other, _ := e.Other.GetUserData().(*Body)
		edges = append(edges, ContactEdge{Other: other, Contact: wrap(e.Contact)})
	}
	return edges
}

// Outlines returns every shape outline transformed to machine centimeters
func (b *Body) Outlines() [][]vmath.Vec2F {
	pos := b.Position()
	angle := b.Angle()
	out := make([][]vmath.Vec2F, 0, len(b.def.Shapes))
	for _, s := range b.def.Shapes {
		local := s.Outline()
		pts := make([]vmath.Vec2F, len(local))
		for i, p := range local {
			pts[i] = vmath.V2FAdd(pos, vmath.V2FRotate(p, angle))
		}
		out = append(out, pts)
	}
	return out
}
