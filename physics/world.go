package physics

import (
	"errors"
	"fmt"

	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/vmath"
)

// ErrWorldDiscarded is raised when a body or world is used after the owning machine replaced it
var ErrWorldDiscarded = errors.New("physics: world discarded")

// World owns one rigid body simulation
// Machine geometry is centimeters; the solver runs in meters
type World struct {
	b2        *box2d.B2World
	bodies    []*Body
	listener  *b2Listener
	discarded bool
	steps     int
}

// NewWorld creates an empty world with gravity in meters per second squared
func NewWorld(gravity vmath.Vec2F) *World {
	w := box2d.MakeB2World(box2d.MakeB2Vec2(gravity.X, gravity.Y))
	return &World{b2: &w}
}

// CreateBody adds a body built from def; bodies are kept in creation order
func (w *World) CreateBody(def BodyDef) *Body {
	w.mustLive()

	bd := box2d.MakeB2BodyDef()
	bd.Type = def.Type.b2()
	pos := ToMeters(def.Position)
	bd.Position.Set(pos.X, pos.Y)
	bd.Angle = def.Angle

	b := &Body{world: w, def: def}
	bd.UserData = b
	b.b2 = w.b2.CreateBody(&bd)

	for _, shape := range def.Shapes {
		fd := box2d.MakeB2FixtureDef()
		fd.Density = def.Density
		fd.Friction = def.Friction
		fd.Restitution = def.Restitution
		switch shape.Kind {
		case ShapeCircle:
			circle := box2d.MakeB2CircleShape()
			circle.M_radius = shape.Radius / parameter.CentimetersPerMeter
			c := ToMeters(shape.Center)
			circle.M_p.Set(c.X, c.Y)
			fd.Shape = &circle
		default:
			poly := box2d.MakeB2PolygonShape()
			verts := make([]box2d.B2Vec2, len(shape.Points))
			for i, p := range shape.Points {
				m := ToMeters(p)
				verts[i] = box2d.MakeB2Vec2(m.X, m.Y)
			}
			poly.Set(verts, len(verts))
			fd.Shape = &poly
		}
		b.b2.CreateFixtureFromDef(&fd)
	}

	w.bodies = append(w.bodies, b)
	return b
}

// SetContactListener routes contact callbacks for this world to r
func (w *World) SetContactListener(r *Registry) {
	w.mustLive()
	w.listener = &b2Listener{registry: r}
	w.b2.SetContactListener(w.listener)
}

// Advance steps the solver by dt seconds
func (w *World) Advance(dt float64, velocityIterations, positionIterations int) {
	w.mustLive()
	w.b2.Step(dt, velocityIterations, positionIterations)
	w.steps++
}

// Steps returns the number of Advance calls since creation
func (w *World) Steps() int {
	return w.steps
}

// Bodies returns bodies in creation order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Discard marks the world dead; any later use panics
func (w *World) Discard() {
	w.discarded = true
	w.listener = nil
}

// Discarded reports whether Discard was called
func (w *World) Discarded() bool {
	return w.discarded
}

func (w *World) mustLive() {
	if w.discarded {
		panic(fmt.Errorf("%w: %d bodies", ErrWorldDiscarded, len(w.bodies)))
	}
}

// ToMeters converts a machine point in centimeters to solver meters
func ToMeters(v vmath.Vec2F) vmath.Vec2F {
	return vmath.V2FScale(v, 1/parameter.CentimetersPerMeter)
}

// ToCentimeters converts a solver point back to machine centimeters
func ToCentimeters(v vmath.Vec2F) vmath.Vec2F {
	return vmath.V2FScale(v, parameter.CentimetersPerMeter)
}
