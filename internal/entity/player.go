package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VoidMesh/terrain/internal/camera"
	"github.com/VoidMesh/terrain/services/terrain"
)

// Player is the keyboard-driven actor the camera follows.
type Player struct {
	X, Y  float64
	Speed float64 // tiles per second

	inputX, inputY float64
}

// NewPlayer creates a player at the given world position.
func NewPlayer(x, y, speed float64) *Player {
	return &Player{X: x, Y: y, Speed: speed}
}

// SetInput stores the current movement intent as a direction in [-1,1] per
// axis. The game loop reads the keyboard and calls this each frame.
func (p *Player) SetInput(dx, dy float64) {
	p.inputX = dx
	p.inputY = dy
}

// Update applies the buffered input, rejecting moves onto non-walkable tiles.
func (p *Player) Update(dt float64, t *terrain.Service) {
	dx := p.inputX * p.Speed * dt
	dy := p.inputY * p.Speed * dt
	p.X, p.Y = tryMove(t, p.X, p.Y, dx, dy)
}

// Draw renders the player as a filled square at its screen position.
func (p *Player) Draw(screen *ebiten.Image, cam *camera.Camera, tileSize, screenW, screenH int) {
	sx, sy := cam.WorldToScreen(p.X, p.Y, tileSize, screenW, screenH)
	vector.DrawFilledRect(screen,
		float32(sx), float32(sy), float32(tileSize), float32(tileSize),
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false)
}

// Position returns the player's world position.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}
