package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"asteroids/game"
)

// asteroidJitter distorts the asteroid outline into a lumpy rock. Every
// asteroid shares the table, so fragments keep a family resemblance;
// scale and tumble keep them visually distinct.
var asteroidJitter = [...]float64{1.0, 0.85, 0.95, 0.7, 0.9, 1.0, 0.8, 0.95, 0.75, 0.9}

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p vec2, angle float64) vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return vec2{
		x: p.x*cosA - p.y*sinA,
		y: p.x*sinA + p.y*cosA,
	}
}

// drawWorld renders the play field: backdrop, asteroids, projectiles
// and the ship.
func (a *App) drawWorld(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.drawStarfield(screen)

	for _, ast := range a.session.Asteroids() {
		drawAsteroid(screen, ast)
	}
	for _, p := range a.session.Projectiles() {
		drawProjectile(screen, p)
	}
	drawShip(screen, a.session.Ship())
}

// drawShip draws the ship as a stroked triangle pointing along its
// heading. Model space runs nose-first along +x; screen angles grow
// clockwise, so the heading is negated before rotating.
func drawShip(screen *ebiten.Image, s *game.Ship) {
	angle := -s.Rotation * math.Pi / 180
	r := s.Radius

	nose := rotatePoint(vec2{x: shipNoseScale * r}, angle)
	tailLeft := rotatePoint(vec2{x: shipTailX * r, y: -shipTailY * r}, angle)
	tailRight := rotatePoint(vec2{x: shipTailX * r, y: shipTailY * r}, angle)

	x, y := float32(s.X), float32(s.Y)
	vector.StrokeLine(screen, x+float32(nose.x), y+float32(nose.y), x+float32(tailLeft.x), y+float32(tailLeft.y), strokeWidth, colorShip, true)
	vector.StrokeLine(screen, x+float32(tailLeft.x), y+float32(tailLeft.y), x+float32(tailRight.x), y+float32(tailRight.y), strokeWidth, colorShip, true)
	vector.StrokeLine(screen, x+float32(tailRight.x), y+float32(tailRight.y), x+float32(nose.x), y+float32(nose.y), strokeWidth, colorShip, true)
}

// drawAsteroid draws an asteroid as a stroked polygon spun by its
// tumble angle.
func drawAsteroid(screen *ebiten.Image, ast *game.Asteroid) {
	angle := -ast.Rotation * math.Pi / 180
	n := len(asteroidJitter)

	verts := make([]vec2, n)
	for i := range verts {
		vertexAngle := float64(i) * 2 * math.Pi / float64(n)
		verts[i] = rotatePoint(vec2{
			x: math.Cos(vertexAngle) * ast.Radius * asteroidJitter[i],
			y: math.Sin(vertexAngle) * ast.Radius * asteroidJitter[i],
		}, angle)
	}

	x, y := float32(ast.X), float32(ast.Y)
	for i := range verts {
		p0 := verts[i]
		p1 := verts[(i+1)%n]
		vector.StrokeLine(screen, x+float32(p0.x), y+float32(p0.y), x+float32(p1.x), y+float32(p1.y), strokeWidth, colorAsteroid, true)
	}
}

// drawProjectile draws a projectile as a filled dot.
func drawProjectile(screen *ebiten.Image, p *game.Projectile) {
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), colorProjectile, true)
}
