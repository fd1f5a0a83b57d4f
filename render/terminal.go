package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goldberg/vmath"
)

const (
	fillRune   = '█'
	strokeRune = '·'
)

// CellWriter is the subset of tcell.Screen the terminal canvas draws into
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// TerminalCanvas rasterizes canvas calls onto terminal cells
// Device space is cells with Y down; the base transform maps a point to a cell
type TerminalCanvas struct {
	Stack
	out        CellWriter
	background RGB
}

// NewTerminalCanvas creates a canvas over out
// cellAspect is cell height over width; terminals are usually near 2
func NewTerminalCanvas(out CellWriter, cellAspect float64, background RGB) *TerminalCanvas {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	return &TerminalCanvas{
		Stack:      NewStack(Affine{A: 1, D: 1 / cellAspect}),
		out:        out,
		background: background,
	}
}

func (t *TerminalCanvas) style(fg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.TCell()).Background(t.background.TCell())
}

func (t *TerminalCanvas) plot(x, y int, r rune, style tcell.Style) {
	w, h := t.out.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.out.SetContent(x, y, r, nil, style)
}

// Clear paints every cell with the background
func (t *TerminalCanvas) Clear() {
	w, h := t.out.Size()
	style := t.style(t.background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.out.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (t *TerminalCanvas) line(a, b vmath.Vec2F, style tcell.Style) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		t.plot(int(math.Floor(a.X)), int(math.Floor(a.Y)), strokeRune, style)
		return
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		t.plot(int(math.Floor(a.X+dx*f)), int(math.Floor(a.Y+dy*f)), strokeRune, style)
	}
}

func (t *TerminalCanvas) StrokeLine(a, b vmath.Vec2F, color RGB) {
	m := t.Transform()
	t.line(m.Apply(a), m.Apply(b), t.style(color))
}

func (t *TerminalCanvas) StrokePolygon(points []vmath.Vec2F, color RGB) {
	if len(points) < 2 {
		return
	}
	dev := t.Transform().ApplyAll(points)
	style := t.style(color)
	for i := range dev {
		t.line(dev[i], dev[(i+1)%len(dev)], style)
	}
}

// FillPolygon fills cells whose centers lie inside the polygon (even-odd rule)
func (t *TerminalCanvas) FillPolygon(points []vmath.Vec2F, color RGB) {
	if len(points) < 3 {
		return
	}
	dev := t.Transform().ApplyAll(points)
	minY, maxY := dev[0].Y, dev[0].Y
	for _, p := range dev[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	style := t.style(color)
	_, h := t.out.Size()
	y0 := int(math.Max(0, math.Floor(minY)))
	y1 := int(math.Min(float64(h-1), math.Ceil(maxY)))
	xs := make([]float64, 0, 8)
	filled := 0
	for y := y0; y <= y1; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range dev {
			p, q := dev[i], dev[(i+1)%len(dev)]
			if (p.Y <= cy) == (q.Y <= cy) {
				continue
			}
			xs = append(xs, p.X+(cy-p.Y)*(q.X-p.X)/(q.Y-p.Y))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				t.plot(x, y, fillRune, style)
				filled++
			}
		}
	}

	// Thin shapes that cover no cell center still show as an outline
	if filled == 0 {
		t.StrokePolygon(points, color)
	}
}

func (t *TerminalCanvas) DrawText(text string, at vmath.Vec2F, color RGB) {
	p := t.Transform().Apply(at)
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	style := t.style(color)
	for _, r := range text {
		t.plot(x, y, r, style)
		x++
	}
}

// sortFloats is an insertion sort; scanlines cross a handful of edges
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
