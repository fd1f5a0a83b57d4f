package component

import (
	"fmt"

	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/physics"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Goal is a basketball hoop: a solid post and a pass-through target that scores
type Goal struct {
	base
	physics.NopListener

	image    Polygon
	post     PhysicsPolygon
	target   PhysicsPolygon
	position vmath.Vec2F

	score int
}

func NewGoal() *Goal {
	g := &Goal{post: NewPhysicsPolygon(), target: NewPhysicsPolygon()}
	g.image.BottomCenteredRectangle(parameter.GoalWidth, parameter.GoalHeight)
	g.image.SetColor(render.ColorGoal)
	g.post.BottomCenteredRectangle(parameter.PostWidth, parameter.PostHeight)
	g.post.SetColor(render.ColorPost)
	g.target.BottomCenteredRectangle(parameter.TargetWidth, parameter.TargetHeight)
	g.target.SetColor(render.ColorTarget)
	return g
}

func (g *Goal) SetPosition(x, y float64) {
	g.position = vmath.V2F(x, y)
	g.post.SetInitialPosition(x+parameter.PostOffsetX, y+parameter.PostOffsetY)
	g.target.SetInitialPosition(x+parameter.TargetOffsetX, y+parameter.TargetOffsetY)
}

func (g *Goal) Position() vmath.Vec2F {
	return g.position
}

func (g *Goal) Score() int {
	return g.score
}

// Target returns the scoring body, nil before InstallPhysics
func (g *Goal) Target() *physics.Body {
	return g.target.Body()
}

// BeginContact scores a basket
func (g *Goal) BeginContact(c physics.Contact) {
	g.score += parameter.GoalPoints
	g.emit(event.GoalScored, float64(g.score))
}

// PreSolve lets the ball pass through the target
func (g *Goal) PreSolve(c physics.Contact) {
	c.SetEnabled(false)
}

func (g *Goal) Update(dt float64) {}

func (g *Goal) Reset() {
	g.score = 0
}

func (g *Goal) InstallPhysics(w *physics.World) {
	g.post.InstallPhysics(w)
	g.target.InstallPhysics(w)
	if r := g.registry(); r != nil {
		r.Add(g.target.Body(), g)
	}
}

// ScoreText is the scoreboard text, at least two digits
func (g *Goal) ScoreText() string {
	return fmt.Sprintf("%02d", g.score)
}

func (g *Goal) Draw(c render.Canvas) {
	g.image.DrawPolygon(c, g.position.X, g.position.Y, 0)

	scoreX := g.position.X + parameter.ScoreboardTextX
	scoreY := g.position.Y + parameter.ScoreboardTextY
	board := render.Rect(parameter.ScoreboardScaleX*scoreX, parameter.ScoreboardScaleY*scoreY,
		parameter.ScoreboardWidth, parameter.ScoreboardHeight)
	c.FillPolygon(board, render.ColorScoreboard)
	c.StrokePolygon(board, render.RGBBlack)

	c.PushState()
	c.Translate(scoreX, scoreY)
	c.Scale(1, -1)
	c.DrawText(g.ScoreText(), vmath.Vec2F{}, render.RGBWhite)
	c.PopState()
}

func (g *Goal) Snapshot() []float64 {
	return []float64{float64(g.score)}
}
