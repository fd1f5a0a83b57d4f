package machines

import (
	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// DominoColor selects a domino finish
type DominoColor uint8

const (
	DominoBlack DominoColor = iota
	DominoRed
	DominoGreen
	DominoBlue
)

func (c DominoColor) rgb() render.RGB {
	switch c {
	case DominoRed:
		return render.ColorDominoRed
	case DominoGreen:
		return render.ColorDominoGreen
	case DominoBlue:
		return render.ColorDominoBlue
	default:
		return render.ColorDominoBlack
	}
}

// domino adds a dynamic domino centered at pos, rotated by rotation turns
func (b *builder) domino(pos vmath.Vec2F, rotation float64, color DominoColor) *component.Body {
	d := body(color.rgb(), pos)
	d.Rectangle(-parameter.DominoWidth/2, -parameter.DominoHeight/2, parameter.DominoWidth, parameter.DominoHeight)
	d.SetInitialRotation(rotation)
	d.SetDynamic()
	b.add("domino", d)
	return d
}

// dominoStack adds a three level stack of nine dominoes standing on pos
func (b *builder) dominoStack(pos vmath.Vec2F) {
	const w, h = parameter.DominoWidth, parameter.DominoHeight
	at := func(x, y float64) vmath.Vec2F { return vmath.V2FAdd(pos, vmath.V2F(x, y)) }

	b.domino(at(30, h/2), 0, DominoRed)
	b.domino(at(10, h/2), 0, DominoBlue)
	b.domino(at(20, h+w/2), 0.25, DominoGreen)

	b.domino(at(-10, h/2), 0, DominoRed)
	b.domino(at(-30, h/2), 0, DominoGreen)
	b.domino(at(-20, h+w/2), 0.25, DominoBlack)

	level2 := h + w
	b.domino(at(10, level2+h/2), 0, DominoRed)
	b.domino(at(-10, level2+h/2), 0, DominoGreen)
	b.domino(at(0, level2+h+w/2), 0.25, DominoBlack)
}

// dominoesOnBeam adds a short beam at pos with ten standing dominoes
func (b *builder) dominoesOnBeam(pos vmath.Vec2F) {
	b.beam(pos, 150, 15)
	for d := 0; d < 10; d++ {
		b.domino(vmath.V2FAdd(pos, vmath.V2F(-70+float64(d)*15, 27)), 0, DominoGreen)
	}
}
