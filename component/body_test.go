package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/goldberg/render"
)

// TestCurtainScale verifies the opening is a pure function of machine time
func TestCurtainScale(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{0, 1},
		{1, 0.59},
		{2, 0.18},
		{5, 0.18},
		{-1, 1},
	}
	for _, tc := range cases {
		if got := CurtainScale(tc.t); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("CurtainScale(%f): expected %f, got %f", tc.t, tc.want, got)
		}
	}

	host := newTestHost()
	c := NewCurtain()
	host.install(c)
	host.time = 1
	if math.Abs(c.Scale()-0.59) > 1e-9 {
		t.Errorf("Expected host-timed scale 0.59, got %f", c.Scale())
	}

	rec := render.NewRecorder()
	c.Draw(rec)
	if rec.Count(render.OpFill) != 3 {
		t.Errorf("Expected rod and two halves, got %d fills", rec.Count(render.OpFill))
	}
}

// TestBodyRotateKinematic verifies a driven body spins at the drive speed
func TestBodyRotateKinematic(t *testing.T) {
	host := newTestHost()
	arm := NewBody()
	arm.Rectangle(-7, -60, 14, 70)
	arm.SetKinematic()
	arm.SetPosition(10, 10)
	host.install(arm)

	arm.Rotate(0, 0.5)
	if w := arm.Body().AngularVelocity(); math.Abs(w-math.Pi) > 1e-9 {
		t.Errorf("Expected angular velocity pi, got %f", w)
	}

	host.step(0.25, arm)
	if a := arm.Angle(); math.Abs(a-math.Pi/4) > 1e-6 {
		t.Errorf("Expected angle pi/4 after a quarter second, got %f", a)
	}
}

// TestBodyResetReinstall verifies reinstalling in a fresh world restores placement
func TestBodyResetReinstall(t *testing.T) {
	first := newTestHost()
	ball := NewBody()
	ball.Circle(5)
	ball.SetDynamic()
	ball.SetPosition(0, 100)
	first.install(ball)
	for i := 0; i < 10; i++ {
		first.step(1.0/30, ball)
	}
	if ball.Position().Y >= 100 {
		t.Fatalf("Expected ball to fall, got y=%f", ball.Position().Y)
	}
	first.world.Discard()

	if p := ball.Position(); p.Y != 100 {
		t.Errorf("Expected initial placement once world discarded, got %+v", p)
	}

	second := newTestHost()
	second.install(ball)
	snap := ball.Snapshot()
	if math.Abs(snap[0]) > 1e-9 || math.Abs(snap[1]-100) > 1e-9 || snap[3] != 0 || snap[4] != 0 {
		t.Errorf("Expected pristine snapshot, got %v", snap)
	}
}
