package machines

import (
	"log"
	"sort"

	"github.com/lixenwraith/goldberg/engine"
	"github.com/lixenwraith/goldberg/parameter"
)

// Factory builds a machine ready at frame 0
type Factory func() *engine.Machine

var catalog = map[int]Factory{
	1: Machine1,
	2: Machine2,
}

// Lookup returns the factory for number
func Lookup(number int) (Factory, bool) {
	f, ok := catalog[number]
	return f, ok
}

// New builds machine number, falling back to the default machine for unknown numbers
// The returned number is the machine actually built
func New(number int) (*engine.Machine, int) {
	f, ok := catalog[number]
	if !ok {
		log.Printf("machines: unknown machine %d, using %d", number, parameter.DefaultMachineNumber)
		number = parameter.DefaultMachineNumber
		f = catalog[number]
	}
	return f(), number
}

// Numbers returns the available machine numbers in ascending order
func Numbers() []int {
	out := make([]int, 0, len(catalog))
	for n := range catalog {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
