package component

import (
	"math"

	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Pulley transmits rotation to a driven pulley through a belt
type Pulley struct {
	base

	radius   float64
	position vmath.Vec2F
	polygon  Polygon

	source *RotationSource
	sink   *RotationSink
	driven *Pulley

	rotation float64 // turns
	speed    float64 // turns per second
	ratio    float64 // driving radius over own radius, 0 when not belt driven

	rock      bool
	rockPhase [2]float64
	rockGain  [2]float64
}

// NewPulley creates a pulley of radius centimeters
func NewPulley(radius float64) *Pulley {
	p := &Pulley{radius: radius}
	p.polygon.Circle(radius)
	p.polygon.SetColor(render.ColorPulley)
	p.source = NewRotationSource(p)
	p.sink = NewRotationSink(p)
	return p
}

func (p *Pulley) Source() *RotationSource { return p.source }
func (p *Pulley) Sink() *RotationSink     { return p.sink }

func (p *Pulley) Radius() float64   { return p.radius }
func (p *Pulley) Rotation() float64 { return p.rotation }
func (p *Pulley) Speed() float64    { return p.speed }
func (p *Pulley) Ratio() float64    { return p.ratio }

// SetRotation sets the current rotation in turns
func (p *Pulley) SetRotation(rotation float64) {
	p.rotation = rotation
}

// Driven returns the pulley this one drives through its belt
func (p *Pulley) Driven() *Pulley {
	return p.driven
}

// SetRock enables the cosmetic belt flap
func (p *Pulley) SetRock(rock bool) {
	p.rock = rock
}

// Drive makes p the belt driver of other and fixes other's ratio from the radii
func (p *Pulley) Drive(other *Pulley) error {
	if err := p.source.SetSink(other.sink); err != nil {
		return err
	}
	p.driven = other
	other.ratio = p.radius / other.radius
	return nil
}

func (p *Pulley) SetPosition(x, y float64) {
	p.position = vmath.V2F(x, y)
}

func (p *Pulley) Position() vmath.Vec2F {
	return p.position
}

// Update pushes the current rotation to the driven sink
func (p *Pulley) Update(dt float64) {
	p.source.Rotate(p.rotation, p.speed)
}

// Rotate stores the speed and scales the rotation by the belt ratio
func (p *Pulley) Rotate(rotation, speed float64) {
	p.speed = speed
	if p.ratio != 0 {
		p.rotation = rotation * p.ratio
	} else {
		p.rotation = rotation
	}
}

func (p *Pulley) Reset() {
	p.speed = 0
	p.rotation = 0
}

// InstallPhysics derives the belt flap phases; pulleys have no bodies
func (p *Pulley) InstallPhysics(w *physics.World) {
	var seed uint64
	if p.host != nil {
		seed = p.host.Seed()
	}
	stream := math.Float64bits(p.position.X) ^ math.Float64bits(p.position.Y)<<1 ^ math.Float64bits(p.radius)<<2
	rng := vmath.NewFastRand(vmath.Mix64(seed, stream))
	for i := range p.rockPhase {
		p.rockPhase[i] = rng.Range(0, 2*math.Pi)
		p.rockGain[i] = rng.Range(0.5, 1)
	}
}

// ComputeBeta returns the belt tangent angle for pulleys of different radii
// Negative speed turns clockwise and selects the other tangent
func (p *Pulley) ComputeBeta() float64 {
	p1 := p.position
	p2 := p.driven.position
	r1 := p.radius
	r2 := p.driven.radius

	sep := vmath.V2FMag(vmath.V2FSub(p2, p1))
	theta := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	phi := math.Asin((r2 - r1) / sep)

	const positivePhase = math.Pi / 2
	const negativePhase = 3 * positivePhase
	if p.speed < 0 {
		return theta + phi + positivePhase
	}
	return theta - phi + negativePhase
}

// BeltLines returns the two belt segments; ok is false when p drives nothing
func (p *Pulley) BeltLines() (belts [2][2]vmath.Vec2F, ok bool) {
	if p.driven == nil {
		return belts, false
	}
	p1 := p.position
	p2 := p.driven.position

	var off1, off2 vmath.Vec2F
	if p.radius == p.driven.radius {
		rHat := vmath.V2FNormalize(vmath.V2FSub(p2, p1))
		off1 = vmath.V2FPerp(vmath.V2FScale(rHat, parameter.BeltScale*p.radius))
		off2 = off1
	} else {
		beta := p.ComputeBeta()
		off1 = vmath.V2FScale(vmath.V2FPolar(p.radius, beta), parameter.BeltScale)
		off2 = vmath.V2FScale(vmath.V2FPolar(p.driven.radius, beta), parameter.BeltScale)
	}

	belts[0] = [2]vmath.Vec2F{vmath.V2FAdd(p1, off1), vmath.V2FAdd(p2, off2)}
	belts[1] = [2]vmath.Vec2F{vmath.V2FSub(p1, off1), vmath.V2FSub(p2, off2)}
	return belts, true
}

// rockOffset is the perpendicular belt midpoint displacement at machine time t
func (p *Pulley) rockOffset(i int, length, t float64) float64 {
	if !p.rock || p.speed == 0 {
		return 0
	}
	rate := parameter.BeltRockBaseRate * math.Abs(p.speed)
	return parameter.BeltRockAmount * length * p.rockGain[i] * math.Sin(rate*t+p.rockPhase[i])
}

func (p *Pulley) drawBelts(c render.Canvas) {
	belts, ok := p.BeltLines()
	if !ok {
		return
	}
	t := p.machineTime()
	for i, b := range belts {
		d := vmath.V2FSub(b[1], b[0])
		length := vmath.V2FMag(d)
		off := p.rockOffset(i, length, t)
		if off == 0 {
			c.StrokeLine(b[0], b[1], render.ColorBelt)
			continue
		}
		mid := vmath.V2FAdd(vmath.V2FScale(vmath.V2FAdd(b[0], b[1]), 0.5),
			vmath.V2FScale(vmath.V2FPerp(vmath.V2FNormalize(d)), off))
		c.StrokeLine(b[0], mid, render.ColorBelt)
		c.StrokeLine(mid, b[1], render.ColorBelt)
	}
}

// Draw draws belts first so they tuck behind the pulley
func (p *Pulley) Draw(c render.Canvas) {
	p.drawBelts(c)
	p.polygon.DrawPolygon(c, p.position.X, p.position.Y, p.rotation)

	// Spoke so the rotation is visible
	spoke := vmath.V2FAdd(p.position, vmath.V2FPolar(p.radius*0.8, vmath.Turns(p.rotation)))
	c.StrokeLine(p.position, spoke, render.ColorBelt)
}

func (p *Pulley) Snapshot() []float64 {
	return []float64{p.rotation, p.speed}
}
