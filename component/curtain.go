package component

import (
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Curtain opens over CurtainOpenTime seconds of machine time
// The opening is a function of machine time alone, so seeking in either direction draws the same frame
type Curtain struct {
	base

	rod      Polygon
	left     Polygon
	right    Polygon
	position vmath.Vec2F
}

func NewCurtain() *Curtain {
	c := &Curtain{}
	c.rod.Rectangle(-parameter.CurtainWidth/2, parameter.CurtainHeight-10, parameter.CurtainWidth, 10)
	c.rod.SetColor(render.ColorRod)
	c.left.BottomCenteredRectangle(parameter.CurtainWidth/2, parameter.CurtainHeight-10)
	c.left.SetColor(render.ColorCurtain)
	c.right.BottomCenteredRectangle(parameter.CurtainWidth/2, parameter.CurtainHeight-10)
	c.right.SetColor(render.ColorCurtain.Scale(0.85))
	return c
}

// CurtainScale returns the horizontal curtain scale at machine time t
func CurtainScale(t float64) float64 {
	if t <= 0 {
		return 1
	}
	if t >= parameter.CurtainOpenTime {
		return parameter.CurtainMinScale
	}
	return vmath.Lerp(1, parameter.CurtainMinScale, t/parameter.CurtainOpenTime)
}

func (c *Curtain) SetPosition(x, y float64) {
	c.position = vmath.V2F(x, y)
}

func (c *Curtain) Position() vmath.Vec2F {
	return c.position
}

// Scale returns the current horizontal scale
func (c *Curtain) Scale() float64 {
	return CurtainScale(c.machineTime())
}

func (c *Curtain) Update(dt float64)               {}
func (c *Curtain) Reset()                          {}
func (c *Curtain) InstallPhysics(w *physics.World) {}

// Draw pulls each half toward its outer edge, narrowed to the current scale
func (c *Curtain) Draw(canvas render.Canvas) {
	scale := c.Scale()
	half := parameter.CurtainWidth / 2
	quarter := half / 2

	c.rod.DrawPolygon(canvas, c.position.X, c.position.Y, 0)

	// Each half is anchored at its outer edge
	for _, side := range []struct {
		poly *Polygon
		sign float64
	}{{&c.left, -1}, {&c.right, 1}} {
		outer := c.position.X + side.sign*half
		canvas.PushState()
		canvas.Translate(outer, c.position.Y)
		canvas.Scale(scale, 1)
		side.poly.DrawPolygon(canvas, -side.sign*quarter, 0, 0)
		canvas.PopState()
	}
}

func (c *Curtain) Snapshot() []float64 {
	return []float64{c.Scale()}
}
