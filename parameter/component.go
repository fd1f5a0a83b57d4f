package parameter

import "math"

// Hamster geometry in centimeters, relative to the cage bottom center
const (
	HamsterCageWidth  = 75.0
	HamsterCageHeight = 50.0
	HamsterWheelSize  = 45.0
	HamsterSize       = 45.0

	HamsterWheelCenterX = -12.0
	HamsterWheelCenterY = 24.0
	HamsterShaftOffsetX = 25.0
	HamsterShaftOffsetY = 40.0

	// HamsterAnimationRate is image switches per wheel turn
	HamsterAnimationRate = 4.0

	// HamsterImageCount is sleeping plus three running images
	HamsterImageCount = 4
)

// Conveyor geometry
const (
	ConveyorWidth        = 125.0
	ConveyorHeight       = 14.0
	ConveyorShaftOffsetX = 48.0
	ConveyorShaftOffsetY = 4.0
)

// Basket geometry and launch
const (
	BasketSize       = 40.0
	BasketBaseWidth  = 20.0
	BasketBaseHeight = 1.0
	BasketSideWidth  = 5.0
	BasketSideHeight = 20.0

	// BasketBaseDrop is the base offset below the basket position as a fraction of the basket size
	BasketBaseDrop = 0.4

	// BasketSideDrop is the side offset below the basket position
	BasketSideDrop = 5.0

	// BasketDelay is seconds between the ball landing and the launch
	BasketDelay = 1.0

	BasketImpulseScale = 0.0425
	BasketShotX        = 1.0
	BasketShotY        = 7.0
)

// Goal geometry
const (
	GoalWidth     = 65.0
	GoalHeight    = 247.0
	PostWidth     = 10.0
	PostHeight    = 250.0
	PostOffsetX   = 22.0
	PostOffsetY   = 0.0
	TargetWidth   = 20.0
	TargetHeight  = 5.0
	TargetOffsetX = -12.0
	TargetOffsetY = 165.0

	// GoalPoints is the score added per ball through the hoop
	GoalPoints = 2

	ScoreboardX      = 5.0
	ScoreboardY      = 280.0
	ScoreboardWidth  = 30.0
	ScoreboardHeight = 20.0
	ScoreboardTextX  = 9.0
	ScoreboardTextY  = 299.0
	ScoreboardScaleX = 0.984
	ScoreboardScaleY = 0.930
	ScoreboardFont   = 20.0
)

// Pulley belts
const (
	// BeltScale tucks the belt behind the pulley rim
	BeltScale = 0.95

	// BeltRockAmount is the peak belt displacement as a fraction of belt length
	BeltRockAmount = 0.01

	// BeltRockBaseRate is the rocking angular rate scale in radians per second per unit speed
	BeltRockBaseRate = math.Pi * 1000
)

// Curtain
const (
	CurtainWidth    = 750.0
	CurtainHeight   = 500.0
	CurtainOpenTime = 2.0
	CurtainMinScale = 0.18
)

// Body defaults, matching the usual rigid body fixture defaults
const (
	DefaultDensity     = 1.0
	DefaultFriction    = 0.5
	DefaultRestitution = 0.5

	// CircleSteps is the outline resolution for circular bodies
	CircleSteps = 20
)

// Dominoes
const (
	DominoWidth  = 5.0
	DominoHeight = 25.0
)

// Assemblies
const (
	// AssemblyPulley1Radius is the hamster-side pulley radius
	AssemblyPulley1Radius = 10.0

	// AssemblyBallRadius is the radius of balls placed on conveyors and beams
	AssemblyBallRadius = 12.0
)
