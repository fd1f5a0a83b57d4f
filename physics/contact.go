package physics

import (
	"github.com/ByteArena/box2d"
)

// Contact is one potential touching pair reported by the solver
// Valid only inside the callback or Update that received it
type Contact interface {
	BodyA() *Body
	BodyB() *Body
	IsTouching() bool
	SetEnabled(enabled bool)
	IsEnabled() bool
	SetTangentSpeed(speed float64)
	TangentSpeed() float64
}

// Other returns the body of c that is not self, or nil when self is not part of c
func Other(c Contact, self *Body) *Body {
	switch self {
	case c.BodyA():
		return c.BodyB()
	case c.BodyB():
		return c.BodyA()
	}
	return nil
}

// Listener receives contact callbacks for a registered body
type Listener interface {
	BeginContact(c Contact)
	EndContact(c Contact)
	PreSolve(c Contact)
}

// NopListener implements Listener with empty callbacks; embed to override only what is needed
type NopListener struct{}

func (NopListener) BeginContact(Contact) {}
func (NopListener) EndContact(Contact)   {}
func (NopListener) PreSolve(Contact)     {}

// contact adapts a solver contact; comparable so the same pair compares equal across edges
type contact struct {
	c box2d.B2ContactInterface
}

func wrap(c box2d.B2ContactInterface) Contact {
	return contact{c: c}
}

func bodyOf(f *box2d.B2Fixture) *Body {
	if f == nil {
		return nil
	}
	b, _ := f.GetBody().GetUserData().(*Body)
	return b
}

func (c contact) BodyA() *Body                  { return bodyOf(c.c.GetFixtureA()) }
func (c contact) BodyB() *Body                  { return bodyOf(c.c.GetFixtureB()) }
func (c contact) IsTouching() bool              { return c.c.IsTouching() }
func (c contact) SetEnabled(enabled bool)       { c.c.SetEnabled(enabled) }
func (c contact) IsEnabled() bool               { return c.c.IsEnabled() }
func (c contact) SetTangentSpeed(speed float64) { c.c.SetTangentSpeed(speed) }
func (c contact) TangentSpeed() float64         { return c.c.GetTangentSpeed() }

// b2Listener forwards solver callbacks into a Registry
type b2Listener struct {
	registry *Registry
}

func (l *b2Listener) BeginContact(c box2d.B2ContactInterface) {
	l.registry.BeginContact(wrap(c))
}

func (l *b2Listener) EndContact(c box2d.B2ContactInterface) {
	l.registry.EndContact(wrap(c))
}

func (l *b2Listener) PreSolve(c box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
	l.registry.PreSolve(wrap(c))
}

func (l *b2Listener) PostSolve(c box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}
