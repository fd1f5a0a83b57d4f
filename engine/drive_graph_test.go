package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/goldberg/component"
)

// TestDriveGraphOrder verifies drive order and lag detection
func TestDriveGraphOrder(t *testing.T) {
	m := NewMachine(1)
	h := component.NewHamster()
	h.SetName("hamster")
	p1 := component.NewPulley(10)
	p1.SetName("p1")
	p2 := component.NewPulley(30)
	p2.SetName("p2")
	c := component.NewConveyor()
	c.SetName("conveyor")

	if err := component.Connect(h, p1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := p1.Drive(p2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := component.Connect(p2, c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// conveyor listed first
	m.AddComponent(c)
	m.AddComponent(h)
	m.AddComponent(p1)
	m.AddComponent(p2)

	report, err := m.DriveGraph()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(report.Links) != 3 {
		t.Errorf("Expected 3 links, got %d", len(report.Links))
	}
	if len(report.Lagging) != 1 || report.Lagging[0].Driven != c {
		t.Errorf("Expected conveyor to lag, got %v", report.Lagging)
	}

	want := []string{"hamster", "p1", "p2", "conveyor"}
	for i, comp := range report.Order {
		if comp.Name() != want[i] {
			t.Errorf("Order %d: expected %s, got %s", i, want[i], comp.Name())
		}
	}
}

// TestDriveGraphCycle verifies a belt loop is rejected
func TestDriveGraphCycle(t *testing.T) {
	m := NewMachine(1)
	a := component.NewPulley(10)
	a.SetName("a")
	b := component.NewPulley(10)
	b.SetName("b")
	if err := a.Drive(b); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := b.Drive(a); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m.AddComponent(a)
	m.AddComponent(b)

	if _, err := m.DriveGraph(); !errors.Is(err, ErrDriveCycle) {
		t.Errorf("Expected ErrDriveCycle, got %v", err)
	}
}

// TestDriveGraphForeignSink verifies a sink outside the machine is reported
func TestDriveGraphForeignSink(t *testing.T) {
	m := NewMachine(1)
	h := component.NewHamster()
	outside := component.NewPulley(10)
	if err := component.Connect(h, outside); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m.AddComponent(h)

	if _, err := m.DriveGraph(); !errors.Is(err, ErrForeignSink) {
		t.Errorf("Expected ErrForeignSink, got %v", err)
	}
}
