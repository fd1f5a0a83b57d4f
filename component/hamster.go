package component

import (
	"math"

	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// cycleMode is the direction the running images step
type cycleMode uint8

const (
	cycleAdvance cycleMode = iota
	cycleReverse
)

// Hamster is a wheel motor that sleeps until something touches its cage
// Image 0 is sleeping; running cycles 1, 2, 3, 2, 1
type Hamster struct {
	base
	physics.NopListener

	cage     PhysicsPolygon
	wheel    Polygon
	images   [parameter.HamsterImageCount]Polygon
	position vmath.Vec2F
	source   *RotationSource

	speed            float64 // turns per second
	cyclePeriod      float64
	initiallyRunning bool

	running  bool
	index    int
	mode     cycleMode
	rotation float64 // turns
	runtime  float64
}

// NewHamster creates a sleeping hamster with speed 1
func NewHamster() *Hamster {
	h := &Hamster{cage: NewPhysicsPolygon()}
	h.cage.BottomCenteredRectangle(parameter.HamsterCageWidth, parameter.HamsterCageHeight)
	h.cage.SetColor(render.ColorCage)
	h.wheel.CenteredSquare(parameter.HamsterWheelSize)
	h.wheel.SetColor(render.ColorWheel)
	for i := range h.images {
		h.images[i].CenteredSquare(parameter.HamsterSize * 0.5)
		h.images[i].SetColor(render.ColorHamster)
	}
	h.images[0].SetColor(render.ColorSleeping)
	h.source = NewRotationSource(h)
	h.SetSpeed(1)
	return h
}

func (h *Hamster) Source() *RotationSource {
	return h.source
}

func (h *Hamster) SetPosition(x, y float64) {
	h.position = vmath.V2F(x, y)
	h.cage.SetInitialPosition(x, y)
}

func (h *Hamster) Position() vmath.Vec2F {
	return h.position
}

// ShaftPosition is where a driven pulley or arm should sit
func (h *Hamster) ShaftPosition() vmath.Vec2F {
	return vmath.V2FAdd(h.position, vmath.V2F(parameter.HamsterShaftOffsetX, parameter.HamsterShaftOffsetY))
}

// WheelPosition is the center of the wheel
func (h *Hamster) WheelPosition() vmath.Vec2F {
	return vmath.V2FAdd(h.position, vmath.V2F(parameter.HamsterWheelCenterX, parameter.HamsterWheelCenterY))
}

// SetSpeed sets wheel speed in turns per second; the image cycle period follows it
func (h *Hamster) SetSpeed(speed float64) {
	h.speed = speed
	if speed == 0 {
		h.cyclePeriod = math.Inf(1)
		return
	}
	h.cyclePeriod = 1 / math.Abs(speed) / parameter.HamsterAnimationRate
}

func (h *Hamster) Speed() float64       { return h.speed }
func (h *Hamster) CyclePeriod() float64 { return h.cyclePeriod }
func (h *Hamster) Running() bool        { return h.running }
func (h *Hamster) Index() int           { return h.index }
func (h *Hamster) Rotation() float64    { return h.rotation }

// SetInitiallyRunning makes the hamster start awake on frame 0 and after every reset
func (h *Hamster) SetInitiallyRunning(running bool) {
	h.initiallyRunning = running
	h.restore()
}

func (h *Hamster) InitiallyRunning() bool {
	return h.initiallyRunning
}

// restore applies the initial configuration
func (h *Hamster) restore() {
	h.running = h.initiallyRunning
	h.index = 0
	if h.initiallyRunning {
		h.index = 1
	}
	h.mode = cycleAdvance
	h.rotation = 0
	h.runtime = 0
}

func (h *Hamster) Reset() {
	h.restore()
}

func (h *Hamster) InstallPhysics(w *physics.World) {
	h.cage.InstallPhysics(w)
	if r := h.registry(); r != nil {
		r.Add(h.cage.Body(), h)
	}
}

// BeginContact wakes the hamster
func (h *Hamster) BeginContact(c physics.Contact) {
	if h.running {
		return
	}
	h.running = true
	h.emit(event.HamsterWoke, h.speed)
}

// Update turns the wheel, steps the image cycle and drives the sink clockwise for positive speed
func (h *Hamster) Update(dt float64) {
	if !h.running {
		return
	}

	h.rotation += -h.speed * dt
	h.runtime += dt

	if h.runtime >= h.cyclePeriod {
		switch h.index {
		case 1:
			h.mode = cycleAdvance
		case 3:
			h.mode = cycleReverse
		}
		if h.mode == cycleAdvance {
			h.index++
		} else {
			h.index--
		}
		h.runtime = 0
	}

	h.source.Rotate(h.rotation, -h.speed)
}

func (h *Hamster) Draw(c render.Canvas) {
	h.cage.DrawPolygon(c, h.position.X, h.position.Y, 0)

	wheel := h.WheelPosition()
	h.wheel.DrawPolygon(c, wheel.X, wheel.Y, h.rotation)

	c.PushState()
	c.Translate(wheel.X, wheel.Y)
	if h.speed < 0 && h.index != 0 {
		c.Scale(-1, 1)
	}
	img := &h.images[h.index]
	img.DrawPolygon(c, 0, float64(h.index%2)*2, 0)
	c.PopState()
}

func (h *Hamster) Snapshot() []float64 {
	return []float64{h.rotation, boolf(h.running), float64(h.index), h.runtime, float64(h.mode)}
}
