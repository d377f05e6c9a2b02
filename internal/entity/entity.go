// Package entity holds the moving actors of the demo game. Movement is gated
// by the terrain walkability predicate; entities never occupy water tiles.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VoidMesh/terrain/internal/camera"
	"github.com/VoidMesh/terrain/services/terrain"
)

// Entity is the capability contract every actor implements. The type system
// enforces it at compile time; there are no runtime identity checks.
type Entity interface {
	Update(dt float64, t *terrain.Service)
	Draw(screen *ebiten.Image, cam *camera.Camera, tileSize, screenW, screenH int)
	Position() (float64, float64)
}

// tryMove applies a proposed delta one axis at a time, rejecting any axis that
// would land on a non-walkable tile. Resolving per axis lets entities slide
// along coastlines instead of sticking.
func tryMove(t *terrain.Service, x, y, dx, dy float64) (float64, float64) {
	if t.IsWalkable(x+dx, y) {
		x += dx
	}
	if t.IsWalkable(x, y+dy) {
		y += dy
	}
	return x, y
}
