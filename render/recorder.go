package render

import (
	"github.com/lixenwraith/goldberg/vmath"
)

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpLine OpKind = iota
	OpStroke
	OpFill
	OpText
)

// Op is one draw call with points already in device space
type Op struct {
	Kind   OpKind
	Points []vmath.Vec2F
	Text   string
	Color  RGB
}

// Recorder is a Canvas that stores draw calls, for tests and headless frames
type Recorder struct {
	Stack
	Ops []Op
}

// NewRecorder creates a Recorder with an identity transform
func NewRecorder() *Recorder {
	return &Recorder{Stack: NewStack(Identity())}
}

func (r *Recorder) StrokeLine(a, b vmath.Vec2F, color RGB) {
	m := r.Transform()
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []vmath.Vec2F{m.Apply(a), m.Apply(b)}, Color: color})
}

func (r *Recorder) StrokePolygon(points []vmath.Vec2F, color RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Points: r.Transform().ApplyAll(points), Color: color})
}

func (r *Recorder) FillPolygon(points []vmath.Vec2F, color RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Points: r.Transform().ApplyAll(points), Color: color})
}

func (r *Recorder) DrawText(text string, at vmath.Vec2F, color RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []vmath.Vec2F{r.Transform().Apply(at)}, Text: text, Color: color})
}

// Count returns the number of ops of kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns recorded text in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops recorded ops and saved state
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Stack = NewStack(Identity())
}
