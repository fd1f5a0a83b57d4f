package machines

import (
	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Machine2 is two hamster-driven conveyors, a basket and a basketball goal
// Dimensions are centimeters with Y up; the floor top is at y=0
func Machine2() *engine.Machine {
	b := newBuilder(2)
	b.floor(600, 15)

	b.topBeamAndRamp()

	trains := newHamsterAndConveyor(b, 30, true)

	// First conveyor with a ball sitting on it
	trains.Create(vmath.V2F(240, 0), vmath.V2F(80, 150))
	trains.AddBall(40)
	trains.Hamster().SetSpeed(-2)
	conveyor1 := trains.Conveyor()

	// Dominoes go in before the second train so they draw behind its pulleys
	conveyor2Pos := vmath.V2F(-230, 200)
	b.dominoesOnBeam(vmath.V2FAdd(conveyor2Pos, vmath.V2F(140, 0)))

	trains.Create(vmath.V2FAdd(conveyor1.Position(), vmath.V2F(-105, -40)), conveyor2Pos)
	trains.AddBall(-40)

	basket := component.NewBasket()
	basket.SetPosition(145, 20)
	b.add("basket", basket)

	// Goal last among the parts so every ball draws behind it
	b.goal(vmath.V2F(270, 0))
	b.curtain(vmath.V2F(0, -70))

	return b.finish()
}

// topBeamAndRamp adds the top beam, its wedge and the ball that rolls off toward the hoop
func (b *builder) topBeamAndRamp() {
	const beamX = -75
	b.beam(vmath.V2F(beamX, 20), 400, 20)

	wedge := body(render.ColorWedge, vmath.V2F(beamX-175, 40))
	wedge.AddPoint(-25, 0)
	wedge.AddPoint(25, 0)
	wedge.AddPoint(25, 4.5)
	wedge.AddPoint(-25, 25)
	b.add("wedge", wedge)

	b.add("ball", ball(vmath.V2F(beamX-186, 73), 12, 0.6))
}

func (b *builder) goal(pos vmath.Vec2F) *component.Goal {
	g := component.NewGoal()
	g.SetPosition(pos.X, pos.Y)
	b.add("goal", g)
	return g
}

func (b *builder) curtain(pos vmath.Vec2F) {
	c := component.NewCurtain()
	c.SetPosition(pos.X, pos.Y)
	b.add("curtain", c)
}
