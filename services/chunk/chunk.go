package chunk

import (
	"time"

	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/noise"
)

const (
	// DefaultSize is the edge length of a chunk in tiles.
	DefaultSize = 16
	// DefaultFrequencyScale maps world tile coordinates into noise space.
	// Terrain features span roughly 1/0.03 = 33 tiles at this scale.
	DefaultFrequencyScale = 0.03
)

// Coord identifies a chunk by its integer position in chunk space.
type Coord struct {
	X, Y int
}

// Chunk is a fixed-size square tile grid whose cell values are fractal noise
// outputs at world coordinates. The grid is immutable once generated; all
// state is behind read-only accessors.
type Chunk struct {
	coord    Coord
	size     int
	tileSize int
	tiles    [][]float64
}

// Coord returns the chunk's position in chunk space.
func (c *Chunk) Coord() Coord {
	return c.coord
}

// Size returns the chunk's edge length in tiles.
func (c *Chunk) Size() int {
	return c.size
}

// TileSize returns the pixel scale of one tile.
func (c *Chunk) TileSize() int {
	return c.tileSize
}

// Tile returns the height value at local coordinates (lx, ly) and whether the
// coordinates fall inside the grid.
func (c *Chunk) Tile(lx, ly int) (float64, bool) {
	if ly < 0 || ly >= c.size || lx < 0 || lx >= c.size {
		return 0, false
	}
	return c.tiles[ly][lx], true
}

// WorldOrigin returns the world coordinate of the chunk's (0,0) tile.
func (c *Chunk) WorldOrigin() (int, int) {
	return c.coord.X * c.size, c.coord.Y * c.size
}

// Generate builds the chunk at the given coordinate by sampling the fractal
// field at every cell's world position. Generation is pure: the same
// (coord, sampler) pair always produces an identical grid, which is what lets
// the manager cache chunks without ever regenerating them.
func Generate(coord Coord, size, tileSize int, sampler *noise.Sampler, frequencyScale float64) *Chunk {
	logger := logging.WithChunkCoords(coord.X, coord.Y)
	logger.Debug("Starting chunk generation", "size", size)

	start := time.Now()
	tiles := make([][]float64, size)
	for ly := 0; ly < size; ly++ {
		tiles[ly] = make([]float64, size)
		for lx := 0; lx < size; lx++ {
			worldX := coord.X*size + lx
			worldY := coord.Y*size + ly

			tiles[ly][lx] = sampler.Sample(
				float64(worldX)*frequencyScale,
				float64(worldY)*frequencyScale,
			)
		}
	}

	logger.Debug("Chunk generation completed",
		"duration", time.Since(start), "cells_generated", size*size)

	return &Chunk{
		coord:    coord,
		size:     size,
		tileSize: tileSize,
		tiles:    tiles,
	}
}
