package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VoidMesh/terrain/internal/camera"
	"github.com/VoidMesh/terrain/services/terrain"
)

// Monster chases a target in a straight line at fixed speed, constrained by
// walkability like every other entity.
type Monster struct {
	X, Y  float64
	Speed float64 // tiles per second

	target Entity
}

// NewMonster creates a monster at the given world position chasing target.
func NewMonster(x, y, speed float64, target Entity) *Monster {
	return &Monster{X: x, Y: y, Speed: speed, target: target}
}

// Update steps toward the target, stopping inside one tile so the monster
// does not jitter on top of it.
func (m *Monster) Update(dt float64, t *terrain.Service) {
	tx, ty := m.target.Position()
	dx := tx - m.X
	dy := ty - m.Y

	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}

	step := m.Speed * dt
	m.X, m.Y = tryMove(t, m.X, m.Y, dx/dist*step, dy/dist*step)
}

// Draw renders the monster as a filled square at its screen position.
func (m *Monster) Draw(screen *ebiten.Image, cam *camera.Camera, tileSize, screenW, screenH int) {
	sx, sy := cam.WorldToScreen(m.X, m.Y, tileSize, screenW, screenH)
	vector.DrawFilledRect(screen,
		float32(sx), float32(sy), float32(tileSize), float32(tileSize),
		color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}, false)
}

// Position returns the monster's world position.
func (m *Monster) Position() (float64, float64) {
	return m.X, m.Y
}
