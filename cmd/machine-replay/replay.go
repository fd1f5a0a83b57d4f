package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/goldberg/component"
	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/event"
	"github.com/lixenwraith/goldberg/status"
	"github.com/lixenwraith/goldberg/system"
)

// ErrNoComponent is returned when the tracked component is not part of the machine
var ErrNoComponent = errors.New("replay: no such component")

// Trace is one headless run
type Trace struct {
	Machine int
	Name    string
	Heights []float64 // tracked component height per frame, frame 0 first
	Events  []event.Event
	Metrics *status.Registry
}

// Run replays machine number for frames at rate, sampling the named component each frame
func Run(number int, rate float64, frames int, name string) (*Trace, error) {
	metrics := status.NewRegistry()
	s := system.NewMachineSystem(metrics)
	s.SetFrameRate(rate)
	s.SetMachineNumber(number)

	tracked := find(s.Machine(), name)
	if tracked == nil {
		return nil, fmt.Errorf("%w: %q in machine %d", ErrNoComponent, name, s.MachineNumber())
	}

	tr := &Trace{
		Machine: s.MachineNumber(),
		Name:    name,
		Heights: make([]float64, 0, frames+1),
		Metrics: metrics,
	}
	tr.Heights = append(tr.Heights, tracked.Position().Y)
	tr.Events = append(tr.Events, s.DrainEvents()...)
	for f := 1; f <= frames; f++ {
		s.SetMachineFrame(f)
		tr.Heights = append(tr.Heights, tracked.Position().Y)
		tr.Events = append(tr.Events, s.DrainEvents()...)
	}
	return tr, nil
}

func find(m *engine.Machine, name string) component.Component {
	for _, c := range m.Components() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Plot renders the height trace
func (tr *Trace) Plot(height, width int) string {
	if len(tr.Heights) == 0 {
		return ""
	}
	return asciigraph.Plot(tr.Heights,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("machine %d: %s height (cm) per frame", tr.Machine, tr.Name)),
	)
}

// EventLog lists the events one per line
func (tr *Trace) EventLog() string {
	var b strings.Builder
	for _, e := range tr.Events {
		fmt.Fprintf(&b, "%6d  %-14s %-12s %g\n", e.Frame, e.Type, e.Source, e.Value)
	}
	return b.String()
}

// Mismatch describes where two seek paths disagree
type Mismatch struct {
	Path  string
	Frame int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s differs at frame %d", m.Path, m.Frame)
}

// CheckDeterminism compares incremental stepping against direct and backward seeks at every checkpoint
func CheckDeterminism(number int, rate float64, frames, every int) []Mismatch {
	if every <= 0 {
		every = 1
	}
	stepped := system.NewMachineSystem(nil)
	stepped.SetFrameRate(rate)
	stepped.SetMachineNumber(number)

	direct := system.NewMachineSystem(nil)
	direct.SetFrameRate(rate)
	direct.SetMachineNumber(number)

	var mismatches []Mismatch
	for f := every; f <= frames; f += every {
		for stepped.MachineFrame() < f {
			stepped.SetMachineFrame(stepped.MachineFrame() + 1)
		}
		want := stepped.Snapshot()

		// Seek from wherever the direct system is, then back and forth
		direct.SetMachineFrame(f)
		if !reflect.DeepEqual(direct.Snapshot(), want) {
			mismatches = append(mismatches, Mismatch{Path: "forward seek", Frame: f})
		}
		direct.SetMachineFrame(f / 2)
		direct.SetMachineFrame(f)
		if !reflect.DeepEqual(direct.Snapshot(), want) {
			mismatches = append(mismatches, Mismatch{Path: "backward seek", Frame: f})
		}
	}
	return mismatches
}

// DriveReport formats the drive graph of machine number
func DriveReport(number int) (string, error) {
	s := system.NewMachineSystem(nil)
	s.SetMachineNumber(number)
	report, err := s.Machine().DriveGraph()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "drive links: %d\n", len(report.Links))
	for _, l := range report.Links {
		fmt.Fprintf(&b, "  %s -> %s\n", l.Driver.Name(), l.Driven.Name())
	}
	for _, l := range report.Lagging {
		fmt.Fprintf(&b, "  lagging: %s updates before its driver %s\n", l.Driven.Name(), l.Driver.Name())
	}
	return b.String(), nil
}
