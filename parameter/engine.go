package parameter

import "time"

// Simulation stepping
const (
	// Gravity is the world gravity along Y in meters per second squared
	Gravity = -9.8

	// VelocityIterations is the solver velocity pass count per step
	VelocityIterations = 6

	// PositionIterations is the solver position pass count per step
	PositionIterations = 2

	// CentimetersPerMeter converts machine geometry to physics units
	CentimetersPerMeter = 100.0
)

// Machine system defaults, also the fallbacks for malformed state
const (
	DefaultFrameRate     = 30.0
	DefaultMachineNumber = 1
	DefaultMachineFrame  = 0

	// PixelsPerCentimeter is the drawing scale applied by the machine system
	PixelsPerCentimeter = 1.5

	// MaxFrameRate bounds accepted frame rates
	MaxFrameRate = 1000.0
)

// Draw flags
const (
	FlagDrawMachine = 1 << 0
	FlagDrawPhysics = 1 << 1
	DefaultDrawFlag = FlagDrawMachine
)

// Viewer loop timing
const (
	// FrameUpdateInterval is the viewer redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the initial capacity of the machine event queue
	EventQueueSize = 64
)

// DefaultSeed is the machine seed base for cosmetic randomness
const DefaultSeed uint64 = 0x9E3779B97F4A7C15
