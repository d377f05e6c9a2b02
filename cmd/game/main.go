// Command game is a playable demo of the terrain engine: an infinite world
// rendered around a smooth-follow camera, a keyboard-driven player, and a
// monster that chases it across walkable ground.
package main

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/VoidMesh/terrain/internal/camera"
	"github.com/VoidMesh/terrain/internal/config"
	"github.com/VoidMesh/terrain/internal/entity"
	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/terrain"
	"github.com/VoidMesh/terrain/services/world"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

var classColors = map[terrain.Class]color.RGBA{
	terrain.Water: {R: 0x2a, G: 0x5c, B: 0xaa, A: 0xff},
	terrain.Sand:  {R: 0xd8, G: 0xc9, B: 0x7a, A: 0xff},
	terrain.Grass: {R: 0x4c, G: 0x9a, B: 0x3f, A: 0xff},
	terrain.Dirt:  {R: 0x8a, G: 0x5f, B: 0x3b, A: 0xff},
	terrain.Rock:  {R: 0x6e, G: 0x6e, B: 0x6e, A: 0xff},
	terrain.Snow:  {R: 0xee, G: 0xee, B: 0xf4, A: 0xff},
}

// Game drives one frame loop over a world session.
type Game struct {
	world   *world.World
	cam     *camera.Camera
	player  *entity.Player
	monster *entity.Monster
	actors  []entity.Entity

	tileSize   int
	viewRadius int
}

// NewGame assembles the session and spawns the actors on walkable ground.
func NewGame(cfg *config.Config) (*Game, error) {
	w, err := world.New(cfg)
	if err != nil {
		return nil, err
	}

	px, py := findSpawn(w.Terrain, 0, 0)
	player := entity.NewPlayer(px, py, 6)
	mx, my := findSpawn(w.Terrain, px+12, py+12)
	monster := entity.NewMonster(mx, my, 3.5, player)

	g := &Game{
		world:      w,
		cam:        camera.New(px, py, cfg.View.CameraSmoothing),
		player:     player,
		monster:    monster,
		actors:     []entity.Entity{player, monster},
		tileSize:   cfg.Terrain.TileSize,
		viewRadius: cfg.View.Radius,
	}
	return g, nil
}

// findSpawn scans outward from a preferred position for a walkable tile.
func findSpawn(t *terrain.Service, x, y float64) (float64, float64) {
	for radius := 0; radius < 64; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if t.IsWalkable(x+float64(dx), y+float64(dy)) {
					return x + float64(dx), y + float64(dy)
				}
			}
		}
	}
	return x, y
}

// Update advances one frame: input, entity movement, camera follow, eviction.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	var ix, iy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		ix -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		ix += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		iy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		iy += 1
	}
	g.player.SetInput(ix, iy)

	for _, a := range g.actors {
		a.Update(dt, g.world.Terrain)
	}

	g.cam.Follow(g.player.X, g.player.Y, dt)
	g.world.EvictOutsideView(g.cam.X, g.cam.Y)

	return nil
}

// Draw renders the visible chunks, resource nodes, and actors.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, vc := range g.world.Terrain.VisibleChunks(g.cam.X, g.cam.Y, g.viewRadius) {
		size := vc.Chunk.Size()
		for ly := 0; ly < size; ly++ {
			for lx := 0; lx < size; lx++ {
				v, ok := vc.Chunk.Tile(lx, ly)
				if !ok {
					continue
				}
				sx, sy := g.cam.WorldToScreen(
					float64(vc.OriginX+lx), float64(vc.OriginY+ly),
					g.tileSize, screenWidth, screenHeight)

				vector.DrawFilledRect(screen,
					float32(sx), float32(sy),
					float32(g.tileSize), float32(g.tileSize),
					classColors[g.world.Terrain.Classify(v)], false)
			}
		}

		coord := vc.Chunk.Coord()
		for _, node := range g.world.Resources.NodesIn(coord.X, coord.Y) {
			sx, sy := g.cam.WorldToScreen(
				float64(vc.OriginX+node.LocalX)+0.25, float64(vc.OriginY+node.LocalY)+0.25,
				g.tileSize, screenWidth, screenHeight)
			vector.DrawFilledRect(screen,
				float32(sx), float32(sy),
				float32(g.tileSize)/2, float32(g.tileSize)/2,
				color.RGBA{R: 0xf0, G: 0xb0, B: 0x20, A: 0xff}, false)
		}
	}

	for _, a := range g.actors {
		a.Draw(screen, g.cam, g.tileSize, screenWidth, screenHeight)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	logging.InitLogger()
	logger := logging.GetLogger()

	cfg := config.Load()
	game, err := NewGame(cfg)
	if err != nil {
		logger.Error("Failed to create game", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting terrain demo",
		"seed", game.world.Seed(), "view_radius", game.viewRadius)

	ebiten.SetWindowTitle("terrain demo")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("Game loop exited", "error", err)
		os.Exit(1)
	}
}
