package component

import (
	"fmt"

	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// delayTolerance absorbs the rounding of summed frame steps, 30 steps of 1/30 add to just under 1
const delayTolerance = 1e-9

// Basket holds a landed ball for BasketDelay seconds then shoots it out
type Basket struct {
	base
	physics.NopListener

	basket   Polygon
	floor    PhysicsPolygon
	left     PhysicsPolygon
	right    PhysicsPolygon
	position vmath.Vec2F

	occupied bool
	duration float64
	fired    int
}

func NewBasket() *Basket {
	b := &Basket{floor: NewPhysicsPolygon(), left: NewPhysicsPolygon(), right: NewPhysicsPolygon()}
	b.basket.CenteredSquare(parameter.BasketSize)
	b.basket.SetColor(render.ColorBasket)
	b.floor.BottomCenteredRectangle(parameter.BasketBaseWidth, parameter.BasketBaseHeight)
	b.floor.SetColor(render.ColorTarget)
	b.left.BottomCenteredRectangle(parameter.BasketSideWidth, parameter.BasketSideHeight)
	b.left.SetColor(render.ColorTarget)
	b.right.BottomCenteredRectangle(parameter.BasketSideWidth, parameter.BasketSideHeight)
	b.right.SetColor(render.ColorTarget)
	return b
}

// Impulse is the launch impulse in newton seconds
func Impulse() vmath.Vec2F {
	return vmath.V2FScale(vmath.V2F(parameter.BasketShotX, parameter.BasketShotY), parameter.BasketImpulseScale)
}

func (b *Basket) SetPosition(x, y float64) {
	drop := parameter.BasketBaseDrop * parameter.BasketSize
	b.position = vmath.V2F(x, y)
	b.floor.SetInitialPosition(x, y-drop)
	b.left.SetInitialPosition(x-drop, y-parameter.BasketSideDrop)
	b.right.SetInitialPosition(x+drop, y-parameter.BasketSideDrop)
}

func (b *Basket) Position() vmath.Vec2F {
	return b.position
}

func (b *Basket) Occupied() bool    { return b.occupied }
func (b *Basket) Duration() float64 { return b.duration }
func (b *Basket) Fired() int        { return b.fired }

// Base returns the base body, nil before InstallPhysics
func (b *Basket) Base() *physics.Body {
	return b.floor.Body()
}

// BeginContact marks the basket occupied
func (b *Basket) BeginContact(c physics.Contact) {
	b.occupied = true
}

// EndContact clears the wait when nothing else still touches the base
func (b *Basket) EndContact(c physics.Contact) {
	if b.floor.Body() == nil {
		return
	}
	for _, e := range b.floor.Body().Contacts() {
		if e.Contact != c && e.Contact.IsTouching() {
			return
		}
	}
	b.occupied = false
	b.duration = 0
}

// Update counts the wait and launches the touching ball once it reaches BasketDelay
// Panics with ErrBasketEmpty when nothing touches the base at launch
func (b *Basket) Update(dt float64) {
	if !b.occupied {
		return
	}
	b.duration += dt
	if b.duration < parameter.BasketDelay-delayTolerance {
		return
	}

	var ball *physics.Body
	for _, other := range b.floor.touching() {
		if other.Type() == physics.Dynamic {
			ball = other
			break
		}
	}
	if ball == nil {
		panic(fmt.Errorf("%w: %q after %.3fs", ErrBasketEmpty, b.name, b.duration))
	}

	impulse := Impulse()
	ball.ApplyImpulse(impulse)
	b.occupied = false
	b.duration = 0
	b.fired++
	b.emit(event.BasketFired, vmath.V2FMag(impulse))
}

func (b *Basket) Reset() {
	b.occupied = false
	b.duration = 0
	b.fired = 0
}

func (b *Basket) InstallPhysics(w *physics.World) {
	b.floor.InstallPhysics(w)
	b.left.InstallPhysics(w)
	b.right.InstallPhysics(w)
	if r := b.registry(); r != nil {
		r.Add(b.floor.Body(), b)
	}
}

func (b *Basket) Draw(c render.Canvas) {
	b.basket.DrawPolygon(c, b.position.X, b.position.Y, 0)
}

func (b *Basket) Snapshot() []float64 {
	return []float64{boolf(b.occupied), b.duration, float64(b.fired)}
}
