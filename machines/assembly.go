package machines

import (
	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/parameter"
	"github.com/lixenwraith/goldberg/vmath"
)

// HamsterAndConveyor builds hamster, pulley, pulley, conveyor drive trains
// The hamster turns a small pulley at its shaft, belted to a second pulley at the conveyor shaft
type HamsterAndConveyor struct {
	b             *builder
	pulley2Radius float64
	rock          bool

	hamster  *component.Hamster
	conveyor *component.Conveyor
	pulleys  [2]*component.Pulley
}

func newHamsterAndConveyor(b *builder, pulley2Radius float64, rock bool) *HamsterAndConveyor {
	return &HamsterAndConveyor{b: b, pulley2Radius: pulley2Radius, rock: rock}
}

// Create adds one drive train; the last one built is returned by the getters
func (f *HamsterAndConveyor) Create(hamsterPos, conveyorPos vmath.Vec2F) {
	h := component.NewHamster()
	h.SetPosition(hamsterPos.X, hamsterPos.Y)
	f.b.add("hamster", h)

	c := component.NewConveyor()
	c.SetPosition(conveyorPos.X, conveyorPos.Y)

	p1 := component.NewPulley(parameter.AssemblyPulley1Radius)
	shaft := h.ShaftPosition()
	p1.SetPosition(shaft.X, shaft.Y)
	p1.SetRock(f.rock)
	f.b.add("pulley", p1)

	p2 := component.NewPulley(f.pulley2Radius)
	shaft = c.ShaftPosition()
	p2.SetPosition(shaft.X, shaft.Y)
	f.b.add("pulley", p2)

	f.b.add("conveyor", c)

	must(component.Connect(h, p1))
	must(p1.Drive(p2))
	must(component.Connect(p2, c))

	f.hamster = h
	f.conveyor = c
	f.pulleys = [2]*component.Pulley{p1, p2}
}

// AddBall rests a ball on the last conveyor, placement centimeters right of its center
func (f *HamsterAndConveyor) AddBall(placement float64) *component.Body {
	pos := f.conveyor.Position()
	r := parameter.AssemblyBallRadius
	b := ball(vmath.V2F(pos.X+placement, pos.Y+parameter.ConveyorHeight+r), r, 0.5)
	f.b.add("ball", b)
	return b
}

func (f *HamsterAndConveyor) Hamster() *component.Hamster   { return f.hamster }
func (f *HamsterAndConveyor) Conveyor() *component.Conveyor { return f.conveyor }
func (f *HamsterAndConveyor) Pulleys() [2]*component.Pulley { return f.pulleys }
