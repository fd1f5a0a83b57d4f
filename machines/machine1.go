package machines

import (
	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/render"
	"github.com/lixenwraith/goldberg/vmath"
)

// Machine1 is a running hamster whose arm knocks a ball off a high beam onto a domino stack
func Machine1() *engine.Machine {
	b := newBuilder(1)
	b.floor(600, 15)

	b.beamAndSpinningArm()
	b.dominoStack(vmath.V2F(200, 0))

	// Lower train carries its ball left into the basket once the hamster wakes
	trains := newHamsterAndConveyor(b, 20, false)
	trains.Create(vmath.V2F(-60, 0), vmath.V2F(-150, 90))
	trains.AddBall(30)
	trains.Hamster().SetSpeed(-1)

	basket := component.NewBasket()
	basket.SetPosition(-250, 20)
	b.add("basket", basket)

	b.goal(vmath.V2F(270, 0))
	b.curtain(vmath.V2F(0, -70))

	return b.finish()
}

// beamAndSpinningArm adds the high beam, its ball and the hamster-driven arm that strikes it
func (b *builder) beamAndSpinningArm() {
	const beam2X = -25
	b.beam(vmath.V2F(beam2X, 240), 400, 20)
	b.add("ball", ball(vmath.V2F(beam2X-170, 240+12+20), 12, 0.75))

	h := component.NewHamster()
	h.SetPosition(-220, 185)
	h.SetInitiallyRunning(true)
	h.SetSpeed(0.6)
	b.add("hamster", h)

	shaft := h.ShaftPosition()
	arm := body(render.ColorArm, shaft)
	arm.AddPoint(-7, 10)
	arm.AddPoint(7, 10)
	arm.AddPoint(7, -60)
	arm.AddPoint(-7, -60)
	arm.SetKinematic()
	b.add("arm", arm)

	must(component.Connect(h, arm))
}
