package machines

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/vmath"
)

func run(m *engine.Machine, frames int) {
	dt := 1 / m.FrameRate()
	for f := 0; f < frames; f++ {
		m.SetMachineFrame(f)
		m.Update(dt)
	}
	m.SetMachineFrame(frames)
}

func count(m *engine.Machine, prefix string) int {
	n := 0
	for _, c := range m.Components() {
		if strings.HasPrefix(c.Name(), prefix) {
			n++
		}
	}
	return n
}

// TestCatalogFallback verifies unknown numbers build the default machine
func TestCatalogFallback(t *testing.T) {
	m, n := New(99)
	if n != 1 || m.Number() != 1 {
		t.Errorf("Expected fallback to machine 1, got %d (%d)", n, m.Number())
	}
	m, n = New(2)
	if n != 2 || m.Number() != 2 {
		t.Errorf("Expected machine 2, got %d (%d)", n, m.Number())
	}
	if _, ok := Lookup(0); ok {
		t.Error("Expected no machine 0")
	}
	if got := Numbers(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", got)
	}
}

// TestMachine2Layout verifies the parts list of machine 2
func TestMachine2Layout(t *testing.T) {
	m := Machine2()

	cases := map[string]int{
		"floor":    1,
		"beam":     2,
		"wedge":    1,
		"ball":     3,
		"hamster":  2,
		"pulley":   4,
		"conveyor": 2,
		"domino":   10,
		"basket":   1,
		"goal":     1,
		"curtain":  1,
	}
	total := 0
	for prefix, want := range cases {
		total += want
		if got := count(m, prefix); got != want {
			t.Errorf("Expected %d %s, got %d", want, prefix, got)
		}
	}
	if len(m.Components()) != total {
		t.Errorf("Expected %d components, got %d", total, len(m.Components()))
	}

	last := m.Components()[len(m.Components())-1]
	if _, ok := last.(*component.Curtain); !ok {
		t.Errorf("Expected curtain drawn last, got %T", last)
	}
}

// TestMachine2Wiring verifies every train drives in list order
func TestMachine2Wiring(t *testing.T) {
	m := Machine2()
	report, err := m.DriveGraph()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(report.Links) != 6 {
		t.Errorf("Expected 6 drive links, got %d", len(report.Links))
	}
	if len(report.Lagging) != 0 {
		t.Errorf("Expected no lagging links, got %d", len(report.Lagging))
	}

	for _, c := range m.Components() {
		p, ok := c.(*component.Pulley)
		if !ok || p.Driven() == nil {
			continue
		}
		if math.Abs(p.Driven().Ratio()-1.0/3.0) > 1e-12 {
			t.Errorf("Expected ratio 1/3 on %s, got %f", p.Driven().Name(), p.Driven().Ratio())
		}
	}
}

// TestMachine1ArmSpins verifies the initially running hamster turns the arm from frame 0
func TestMachine1ArmSpins(t *testing.T) {
	m := Machine1()
	var arm *component.Body
	for _, c := range m.Components() {
		if c.Name() == "arm1" {
			arm = c.(*component.Body)
		}
	}
	if arm == nil {
		t.Fatal("Expected arm1")
	}

	run(m, 30)
	want := -2 * math.Pi * 0.6
	if w := arm.Body().AngularVelocity(); math.Abs(w-want) > 1e-9 {
		t.Errorf("Expected arm angular velocity %f, got %f", want, w)
	}
	if arm.Angle() >= 0 {
		t.Errorf("Expected clockwise arm, got angle %f", arm.Angle())
	}
	if _, err := m.DriveGraph(); err != nil {
		t.Errorf("Unexpected drive error: %v", err)
	}
}

// TestMachinesDeterministic verifies two fresh builds replay identically
func TestMachinesDeterministic(t *testing.T) {
	for _, n := range Numbers() {
		a, _ := New(n)
		b, _ := New(n)
		run(a, 120)
		run(b, 120)
		if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Errorf("Machine %d: expected identical snapshots", n)
		}
	}
}

// TestDominoStack verifies nine dominoes with the cross pieces turned a quarter
func TestDominoStack(t *testing.T) {
	b := newBuilder(9)
	b.dominoStack(vmath.Vec2F{})
	m := b.finish()

	if len(m.Components()) != 9 {
		t.Fatalf("Expected 9 dominoes, got %d", len(m.Components()))
	}
	turned := 0
	for _, c := range m.Components() {
		d := c.(*component.Body)
		if math.Abs(d.Angle()-math.Pi/2) < 1e-9 {
			turned++
		}
	}
	if turned != 3 {
		t.Errorf("Expected 3 cross pieces, got %d", turned)
	}
}
