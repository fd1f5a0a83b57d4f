package event

import "fmt"

// Type identifies a machine event
type Type uint8

const (
	// GoalScored fires when a ball touches a goal target; Value is the new score
	GoalScored Type = iota + 1

	// BasketFired fires when a basket launches its ball; Value is the impulse magnitude
	BasketFired

	// HamsterWoke fires when a sleeping hamster starts running; Value is its speed
	HamsterWoke

	// MachineReset fires when the machine rebuilds its world; Value is the machine number
	MachineReset
)

var typeNames = map[Type]string{
	GoalScored:   "goal_scored",
	BasketFired:  "basket_fired",
	HamsterWoke:  "hamster_woke",
	MachineReset: "machine_reset",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint8(t))
}

// Event is one machine occurrence, stamped with the frame it happened on
type Event struct {
	Type   Type
	Frame  int
	Source string
	Value  float64
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%d[%s]=%g", e.Type, e.Frame, e.Source, e.Value)
}
