package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/lixenwraith/goldberg/component"
)

var (
	// ErrDriveCycle is returned when rotation drives feed back into themselves
	ErrDriveCycle = errors.New("engine: rotation drive cycle")

	// ErrForeignSink is returned when a source drives a component outside the machine
	ErrForeignSink = errors.New("engine: rotation sink outside machine")
)

// DriveLink is one wired source to sink pair
type DriveLink struct {
	Driver component.Component
	Driven component.Component
}

// DriveReport describes the rotation wiring of a machine
type DriveReport struct {
	// Order is the component order following drives, ties broken by list order
	Order []component.Component

	Links []DriveLink

	// Lagging holds links whose driven component updates before its driver
	Lagging []DriveLink
}

// DriveGraph checks the rotation wiring for cycles and stray sinks
func (m *Machine) DriveGraph() (*DriveReport, error) {
	index := make(map[component.Component]int64, len(m.components))
	g := simple.NewDirectedGraph()
	for i, c := range m.components {
		index[c] = int64(i)
		g.AddNode(simple.Node(i))
	}

	report := &DriveReport{}
	for i, c := range m.components {
		d, ok := c.(component.Driver)
		if !ok || d.Source().Sink() == nil {
			continue
		}
		target := d.Source().Sink().Component()
		j, ok := index[target]
		if !ok {
			return nil, fmt.Errorf("%w: %s drives %T", ErrForeignSink, label(c, i), target)
		}
		if j == int64(i) {
			return nil, fmt.Errorf("%w: %s drives itself", ErrDriveCycle, label(c, i))
		}

		link := DriveLink{Driver: c, Driven: target}
		report.Links = append(report.Links, link)
		if j < int64(i) {
			report.Lagging = append(report.Lagging, link)
		}
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
	}

	sorted, err := topo.SortStabilized(g, byID)
	if err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return nil, fmt.Errorf("%w: %s", ErrDriveCycle, m.describeCycles(cycles))
		}
		return nil, fmt.Errorf("engine: drive order: %w", err)
	}
	for _, n := range sorted {
		report.Order = append(report.Order, m.components[n.ID()])
	}
	return report, nil
}

// byID keeps list order among components with no drive relation
func byID(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}

func (m *Machine) describeCycles(cycles topo.Unorderable) string {
	parts := make([]string, 0, len(cycles))
	for _, cycle := range cycles {
		names := make([]string, 0, len(cycle))
		for _, n := range cycle {
			names = append(names, label(m.components[n.ID()], int(n.ID())))
		}
		parts = append(parts, strings.Join(names, " -> "))
	}
	return strings.Join(parts, "; ")
}

func label(c component.Component, i int) string {
	if n := c.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("#%d(%T)", i, c)
}
