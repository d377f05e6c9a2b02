// Package world assembles a terrain session: the seeded noise field, the
// chunk cache, the terrain query surface, and resource placement, all built
// from one validated configuration.
package world

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/VoidMesh/terrain/internal/config"
	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/chunk"
	"github.com/VoidMesh/terrain/services/noise"
	"github.com/VoidMesh/terrain/services/resource"
	"github.com/VoidMesh/terrain/services/terrain"
)

// World is one terrain session. Everything it owns is fixed at construction;
// only the chunk and resource caches grow as the world is explored.
type World struct {
	ID   uuid.UUID
	Name string

	cfg *config.Config

	Chunks    *chunk.Manager
	Terrain   *terrain.Service
	Resources *resource.Service
}

// New builds a world from the config, failing fast on invalid tuning.
func New(cfg *config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	id := uuid.New()
	logger := logging.WithSeed(cfg.World.Seed)
	logger.Info("Creating world", "world_id", id, "name", cfg.World.Name)

	field := noise.NewField(cfg.World.Seed)
	sampler, err := noise.NewSampler(field, cfg.Terrain.Fractal)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	chunks := chunk.NewManager(sampler,
		cfg.Terrain.ChunkSize, cfg.Terrain.TileSize, cfg.Terrain.FrequencyScale)

	terrainSvc, err := terrain.NewService(chunks, cfg.Terrain.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	return &World{
		ID:        id,
		Name:      cfg.World.Name,
		cfg:       cfg,
		Chunks:    chunks,
		Terrain:   terrainSvc,
		Resources: resource.NewService(id, cfg.World.Seed, terrainSvc),
	}, nil
}

// Seed returns the world seed.
func (w *World) Seed() int64 {
	return w.cfg.World.Seed
}

// Config returns the world's configuration.
func (w *World) Config() *config.Config {
	return w.cfg
}

// EvictOutsideView drops chunks beyond the view radius plus hysteresis around
// the camera. Intended to run once per frame.
func (w *World) EvictOutsideView(camX, camY float64) int {
	bound := w.cfg.View.Radius + w.cfg.View.EvictionHysteresis
	return w.Chunks.EvictBeyond(camX, camY, bound)
}
