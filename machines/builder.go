package machines

import (
	"fmt"

	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// builder adds named components to a machine under construction
type builder struct {
	m      *engine.Machine
	counts map[string]int
}

func newBuilder(number int) *builder {
	return &builder{m: engine.NewMachine(number), counts: make(map[string]int)}
}

// add names c kind#n and appends it to the machine
func (b *builder) add(kind string, c component.Component) {
	b.counts[kind]++
	c.SetName(fmt.Sprintf("%s%d", kind, b.counts[kind]))
	b.m.AddComponent(c)
}

// finish installs physics so the machine is ready at frame 0
func (b *builder) finish() *engine.Machine {
	b.m.Reset()
	return b.m
}

// must panics on wiring errors; designs are fixed so any error is a bug
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("machines: %w", err))
	}
}

// body creates a static body with color at pos
func body(color render.RGB, pos vmath.Vec2F) *component.Body {
	b := component.NewBody()
	b.SetColor(color)
	b.SetPosition(pos.X, pos.Y)
	return b
}

// ball creates a dynamic ball resting with its center at pos
func ball(pos vmath.Vec2F, radius, restitution float64) *component.Body {
	b := body(render.ColorBall, pos)
	b.Circle(radius)
	b.SetDynamic()
	b.SetPhysics(1, 0.5, restitution)
	return b
}

// floor adds the ground with its top at y=0
func (b *builder) floor(width, height float64) *component.Body {
	f := body(render.ColorFloor, vmath.Vec2F{})
	f.Rectangle(-width/2, -height, width, height)
	b.add("floor", f)
	return f
}

// beam adds a static beam with its bottom center at pos
func (b *builder) beam(pos vmath.Vec2F, width, height float64) *component.Body {
	beam := body(render.ColorBeam, pos)
	beam.BottomCenteredRectangle(width, height)
	b.add("beam", beam)
	return beam
}
