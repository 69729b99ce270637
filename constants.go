package main

import "image/color"

// Presentation constants
const (
	starCount       = 70
	starMinRadius   = 0.5
	starMaxRadius   = 1.5
	blinkPeriodMS   = 500 // start-prompt blink half-period
	hudMarginX      = 10
	hudMarginY      = 10
	pauseHintMargin = 110 // distance of the pause hint from the right edge
	strokeWidth     = 1.5 // line width for entity outlines
)

// Ship silhouette offsets, in fractions of the collision radius. The model
// points along +x; rotation aligns it with the heading.
const (
	shipNoseScale = 1.0
	shipTailX     = -0.7
	shipTailY     = 0.6
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 10, G: 10, B: 30, A: 255}
	colorStar       = color.NRGBA{R: 110, G: 110, B: 130, A: 255}
	colorShip       = color.NRGBA{R: 230, G: 230, B: 240, A: 255}
	colorAsteroid   = color.NRGBA{R: 170, G: 170, B: 180, A: 255}
	colorProjectile = color.NRGBA{R: 255, G: 220, B: 120, A: 255}
	colorTitle      = color.NRGBA{R: 255, G: 100, B: 150, A: 255}
	colorText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorDimText    = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	colorGameOver   = color.NRGBA{R: 255, G: 50, B: 50, A: 255}
	colorRestart    = color.NRGBA{R: 100, G: 255, B: 100, A: 255}
	colorQuit       = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
)
