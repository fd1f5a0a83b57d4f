package component

import "fmt"

// RotationSink receives rotation from at most one RotationSource
type RotationSink struct {
	owner  Component
	driver *RotationSource
}

// NewRotationSink creates a sink delivering to owner.Rotate
func NewRotationSink(owner Component) *RotationSink {
	return &RotationSink{owner: owner}
}

// Component returns the component that consumes the rotation
func (s *RotationSink) Component() Component {
	return s.owner
}

// Driver returns the source driving this sink, nil if undriven
func (s *RotationSink) Driver() *RotationSource {
	return s.driver
}

// Rotate forwards rotation in turns and speed in turns per second to the owner
func (s *RotationSink) Rotate(rotation, speed float64) {
	s.owner.Rotate(rotation, speed)
}

// RotationSource drives at most one RotationSink
type RotationSource struct {
	owner Component
	sink  *RotationSink
}

// NewRotationSource creates a source produced by owner
func NewRotationSource(owner Component) *RotationSource {
	return &RotationSource{owner: owner}
}

// Component returns the producer
func (s *RotationSource) Component() Component {
	return s.owner
}

// Sink returns the driven sink, nil if unwired
func (s *RotationSource) Sink() *RotationSink {
	return s.sink
}

// SetSink wires this source to sink
// A sink keeps its first driver; rewiring the same pair is a no-op
func (s *RotationSource) SetSink(sink *RotationSink) error {
	if sink == nil {
		return fmt.Errorf("component: nil sink for %q", nameOf(s.owner))
	}
	if s.sink == sink && sink.driver == s {
		return nil
	}
	if sink.driver != nil {
		return fmt.Errorf("%w: %q driven by %q, refused %q",
			ErrSinkDriven, nameOf(sink.owner), nameOf(sink.driver.owner), nameOf(s.owner))
	}
	if s.sink != nil {
		return fmt.Errorf("%w: %q drives %q", ErrSourceBound, nameOf(s.owner), nameOf(s.sink.owner))
	}
	s.sink = sink
	sink.driver = s
	return nil
}

// Rotate pushes rotation to the sink if wired
func (s *RotationSource) Rotate(rotation, speed float64) {
	if s.sink != nil {
		s.sink.Rotate(rotation, speed)
	}
}

func nameOf(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if n := c.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("%T", c)
}
