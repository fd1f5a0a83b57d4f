package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goldberg/vmath"
)

// grid is an in-memory CellWriter
type grid struct {
	w, h  int
	cells map[[2]int]rune
	fg    map[[2]int]tcell.Color
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make(map[[2]int]rune), fg: make(map[[2]int]tcell.Color)}
}

func (g *grid) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	g.cells[[2]int{x, y}] = primary
	fg, _, _ := style.Decompose()
	g.fg[[2]int{x, y}] = fg
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func near(a, b vmath.Vec2F) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// TestStackPushPop verifies transforms compose and restore
func TestStackPushPop(t *testing.T) {
	s := NewStack(Identity())
	s.Translate(10, 5)
	s.PushState()
	s.Scale(2, -2)

	got := s.Transform().Apply(vmath.V2F(1, 1))
	if !near(got, vmath.V2F(12, 3)) {
		t.Errorf("Expected (12, 3), got %+v", got)
	}

	s.PopState()
	got = s.Transform().Apply(vmath.V2F(1, 1))
	if !near(got, vmath.V2F(11, 6)) {
		t.Errorf("Expected (11, 6), got %+v", got)
	}

	// Unbalanced pop is ignored
	s.PopState()
	if s.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", s.Depth())
	}
}

// TestStackRotate verifies a quarter turn maps X onto Y
func TestStackRotate(t *testing.T) {
	s := NewStack(Identity())
	s.Rotate(math.Pi / 2)
	got := s.Transform().Apply(vmath.V2F(1, 0))
	if !near(got, vmath.V2F(0, 1)) {
		t.Errorf("Expected (0, 1), got %+v", got)
	}
}

// TestRecorderAppliesTransform verifies recorded points are in device space
func TestRecorderAppliesTransform(t *testing.T) {
	r := NewRecorder()
	r.Translate(100, 100)
	r.Scale(1.5, -1.5)
	r.FillPolygon(Rect(0, 0, 10, 10), ColorBeam)
	r.DrawText("04", vmath.V2F(2, 2), RGBWhite)

	if r.Count(OpFill) != 1 || r.Count(OpText) != 1 {
		t.Fatalf("Expected 1 fill and 1 text, got %d and %d", r.Count(OpFill), r.Count(OpText))
	}
	corner := r.Ops[0].Points[2]
	if !near(corner, vmath.V2F(115, 85)) {
		t.Errorf("Expected (115, 85), got %+v", corner)
	}
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "04" {
		t.Errorf("Expected [04], got %v", texts)
	}
}

// TestTerminalFillPolygon verifies cell coverage of a filled rectangle
func TestTerminalFillPolygon(t *testing.T) {
	g := newGrid(20, 10)
	c := NewTerminalCanvas(g, 1, RGBBlack)
	c.FillPolygon(Rect(2, 2, 4, 3), ColorBall)

	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if g.cells[[2]int{x, y}] != fillRune {
				t.Errorf("Expected fill at (%d, %d), got %q", x, y, g.cells[[2]int{x, y}])
			}
		}
	}
	if _, ok := g.cells[[2]int{10, 8}]; ok {
		t.Error("Expected cell outside the rectangle to stay untouched")
	}
	if g.fg[[2]int{3, 3}] != ColorBall.TCell() {
		t.Errorf("Expected ball color, got %v", g.fg[[2]int{3, 3}])
	}
}

// TestTerminalClipping verifies drawing off-screen does not reach the writer
func TestTerminalClipping(t *testing.T) {
	g := newGrid(5, 5)
	c := NewTerminalCanvas(g, 1, RGBBlack)
	c.StrokeLine(vmath.V2F(-10, -10), vmath.V2F(20, 20), ColorBelt)
	c.DrawText("hello world", vmath.V2F(3, 1), RGBWhite)

	for k := range g.cells {
		if k[0] < 0 || k[1] < 0 || k[0] >= 5 || k[1] >= 5 {
			t.Fatalf("Cell %v outside bounds", k)
		}
	}
	if g.cells[[2]int{3, 1}] != 'h' || g.cells[[2]int{4, 1}] != 'e' {
		t.Error("Expected visible prefix of text")
	}
}

// TestTerminalAspect verifies the cell aspect compresses Y
func TestTerminalAspect(t *testing.T) {
	g := newGrid(10, 10)
	c := NewTerminalCanvas(g, 2, RGBBlack)
	c.DrawText("x", vmath.V2F(4, 8), RGBWhite)
	if g.cells[[2]int{4, 4}] != 'x' {
		t.Error("Expected text at row 4 with aspect 2")
	}
}

func TestRGBLerp(t *testing.T) {
	mid := RGBBlack.Lerp(RGBWhite, 0.5)
	if mid.R != 127 || mid.G != 127 || mid.B != 127 {
		t.Errorf("Expected 127 gray, got %+v", mid)
	}
	if RGBWhite.Scale(2) != RGBWhite {
		t.Error("Expected scale to saturate")
	}
}
