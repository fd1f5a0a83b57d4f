package render

import (
	"math"

	"github.com/lixenwraith/goldberg/vmath"
)

// Canvas is the drawing boundary for machines
// Coordinates pass through the current transform before reaching the device
type Canvas interface {
	PushState()
	PopState()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(radians float64)

	StrokeLine(a, b vmath.Vec2F, color RGB)
	StrokePolygon(points []vmath.Vec2F, color RGB)
	FillPolygon(points []vmath.Vec2F, color RGB)
	DrawText(text string, at vmath.Vec2F, color RGB)
}

// Affine is a 2D affine transform
//
//	| A C E |
//	| B D F |
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Mul returns m applied after n
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms a point
func (m Affine) Apply(p vmath.Vec2F) vmath.Vec2F {
	return vmath.Vec2F{X: m.A*p.X + m.C*p.Y + m.E, Y: m.B*p.X + m.D*p.Y + m.F}
}

// ApplyAll transforms a slice of points into a new slice
func (m Affine) ApplyAll(pts []vmath.Vec2F) []vmath.Vec2F {
	out := make([]vmath.Vec2F, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// ScaleFactor returns the mean linear scale, used to size text
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Stack tracks the current transform and saved states
// Embed it to get the transform half of Canvas
type Stack struct {
	cur   Affine
	saved []Affine
}

// NewStack creates a stack starting at base
func NewStack(base Affine) Stack {
	return Stack{cur: base}
}

// Transform returns the current transform
func (s *Stack) Transform() Affine {
	return s.cur
}

// Depth returns the number of saved states
func (s *Stack) Depth() int {
	return len(s.saved)
}

func (s *Stack) PushState() {
	s.saved = append(s.saved, s.cur)
}

// PopState restores the last pushed transform; unbalanced pops are ignored
func (s *Stack) PopState() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Stack) Translate(x, y float64) {
	s.cur = s.cur.Mul(Affine{A: 1, D: 1, E: x, F: y})
}

func (s *Stack) Scale(sx, sy float64) {
	s.cur = s.cur.Mul(Affine{A: sx, D: sy})
}

func (s *Stack) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	s.cur = s.cur.Mul(Affine{A: cos, B: sin, C: -sin, D: cos})
}

// Rect returns the corners of an axis aligned rectangle, counter-clockwise from (x, y)
func Rect(x, y, w, h float64) []vmath.Vec2F {
	return []vmath.Vec2F{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}
