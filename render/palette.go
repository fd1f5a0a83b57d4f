package render

// Named fills standing in for component images
var (
	ColorFloor      = RGB{110, 84, 60}
	ColorBeam       = RGB{150, 110, 70}
	ColorWedge      = RGB{120, 95, 70}
	ColorBall       = RGB{230, 110, 30}
	ColorArm        = RGB{170, 170, 180}
	ColorCage       = RGB{190, 190, 200}
	ColorWheel      = RGB{120, 120, 140}
	ColorHamster    = RGB{205, 150, 95}
	ColorSleeping   = RGB{160, 120, 80}
	ColorPulley     = RGB{90, 90, 100}
	ColorBelt       = RGBBlack
	ColorConveyor   = RGB{60, 60, 60}
	ColorBasket     = RGB{200, 170, 120}
	ColorGoal       = RGB{230, 230, 230}
	ColorScoreboard = RGB{24, 69, 59}
	ColorCurtain    = RGB{150, 20, 30}
	ColorRod        = RGB{200, 170, 60}
	ColorDebug      = RGB{0, 255, 0}
	ColorPost       = RGB{0, 0, 255}
	ColorTarget     = RGB{0, 255, 0}

	ColorDominoBlack = RGB{30, 30, 30}
	ColorDominoRed   = RGB{200, 30, 30}
	ColorDominoGreen = RGB{30, 160, 60}
	ColorDominoBlue  = RGB{40, 70, 200}
)
