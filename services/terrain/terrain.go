// Package terrain exposes the read-only query surface over generated chunks:
// height lookups, terrain classification, the walkability predicate, and the
// view-window enumeration used by renderers.
package terrain

import (
	"fmt"
	"math"

	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/chunk"
)

// Class is a terrain class derived from a height value.
type Class int

const (
	Water Class = iota
	Sand
	Grass
	Dirt
	Rock
	Snow
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Dirt:
		return "dirt"
	case Rock:
		return "rock"
	case Snow:
		return "snow"
	default:
		return "unknown"
	}
}

// Thresholds holds the ordered class boundaries over the normalized [0,1]
// height scale. A boundary belongs to the class above it: a value of exactly
// Water classifies as Sand.
type Thresholds struct {
	Water float64
	Sand  float64
	Grass float64
	Dirt  float64
	Rock  float64
}

// DefaultThresholds returns the standard class boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Water: 0.43,
		Sand:  0.45,
		Grass: 0.48,
		Dirt:  0.65,
		Rock:  0.75,
	}
}

// Validate checks that the boundaries are strictly increasing within [0,1].
func (t Thresholds) Validate() error {
	bounds := []float64{t.Water, t.Sand, t.Grass, t.Dirt, t.Rock}
	prev := 0.0
	for i, b := range bounds {
		if b <= prev || b >= 1 {
			return fmt.Errorf("terrain thresholds: boundary %d out of order: %g", i, b)
		}
		prev = b
	}
	return nil
}

// Decomposition is the result of mapping a world coordinate into chunk space.
type Decomposition struct {
	ChunkX, ChunkY int
	LocalX, LocalY int
}

// Service answers terrain queries against a chunk manager. It owns no mutable
// state of its own; the chunk cache stays exclusively with the manager.
type Service struct {
	chunks     *chunk.Manager
	thresholds Thresholds
}

// NewService creates a terrain service over the given chunk manager.
func NewService(chunks *chunk.Manager, thresholds Thresholds) (*Service, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Service{chunks: chunks, thresholds: thresholds}, nil
}

// Thresholds returns the service's class boundaries.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

// ChunkSize returns the tile edge length of one chunk.
func (s *Service) ChunkSize() int {
	return s.chunks.Size()
}

// Decompose maps a world coordinate to its chunk coordinate and local tile
// offset. The mapping is total and invertible:
// chunkX*size + localX == floor(worldX), and local offsets are in [0, size).
func (s *Service) Decompose(worldX, worldY float64) Decomposition {
	size := s.chunks.Size()
	wx := int(math.Floor(worldX))
	wy := int(math.Floor(worldY))

	return Decomposition{
		ChunkX: chunk.FloorDiv(wx, size),
		ChunkY: chunk.FloorDiv(wy, size),
		LocalX: chunk.FloorMod(wx, size),
		LocalY: chunk.FloorMod(wy, size),
	}
}

// HeightAt returns the generated height value at a world coordinate. The -1
// fallback is defensive: a local index outside the grid would mean Decompose
// and chunk generation disagree, which is logged as an invariant violation.
func (s *Service) HeightAt(worldX, worldY float64) float64 {
	d := s.Decompose(worldX, worldY)
	c := s.chunks.ChunkAt(d.ChunkX, d.ChunkY)

	v, ok := c.Tile(d.LocalX, d.LocalY)
	if !ok {
		logging.WithChunkCoords(d.ChunkX, d.ChunkY).Error(
			"Local coordinate outside generated grid",
			"local_x", d.LocalX, "local_y", d.LocalY, "chunk_size", c.Size())
		return -1
	}
	return v
}

// Classify maps a raw height value in [-1,1] to a terrain class by normalizing
// to [0,1] and thresholding. Boundaries are half-open on the lower side.
func (s *Service) Classify(value float64) Class {
	norm := (value + 1) / 2

	switch {
	case norm < s.thresholds.Water:
		return Water
	case norm < s.thresholds.Sand:
		return Sand
	case norm < s.thresholds.Grass:
		return Grass
	case norm < s.thresholds.Dirt:
		return Dirt
	case norm < s.thresholds.Rock:
		return Rock
	default:
		return Snow
	}
}

// ClassAt classifies the terrain at a world coordinate.
func (s *Service) ClassAt(worldX, worldY float64) Class {
	return s.Classify(s.HeightAt(worldX, worldY))
}

// IsWalkable reports whether entities may occupy the tile at the world
// coordinate. Everything but water is walkable.
func (s *Service) IsWalkable(worldX, worldY float64) bool {
	return s.ClassAt(worldX, worldY) != Water
}

// VisibleChunk pairs a chunk with its world origin for renderers.
type VisibleChunk struct {
	Chunk            *chunk.Chunk
	OriginX, OriginY int
}

// VisibleChunks returns every chunk within radius (Chebyshev, inclusive) of
// the chunk containing the camera position, generating missing ones. This is
// the sole demand-generation trigger: chunks outside the view window are never
// created implicitly.
func (s *Service) VisibleChunks(camX, camY float64, radius int) []VisibleChunk {
	center := s.Decompose(camX, camY)

	visible := make([]VisibleChunk, 0, (2*radius+1)*(2*radius+1))
	for cy := center.ChunkY - radius; cy <= center.ChunkY+radius; cy++ {
		for cx := center.ChunkX - radius; cx <= center.ChunkX+radius; cx++ {
			c := s.chunks.ChunkAt(cx, cy)
			ox, oy := c.WorldOrigin()
			visible = append(visible, VisibleChunk{Chunk: c, OriginX: ox, OriginY: oy})
		}
	}
	return visible
}
