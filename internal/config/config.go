package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/VoidMesh/terrain/services/chunk"
	"github.com/VoidMesh/terrain/services/noise"
	"github.com/VoidMesh/terrain/services/terrain"
)

// Config carries every tunable of a terrain session. All values are fixed for
// the lifetime of a world; there is no runtime reconfiguration.
type Config struct {
	World   WorldConfig
	Terrain TerrainConfig
	View    ViewConfig
	Logging LoggingConfig
}

type WorldConfig struct {
	// Seed drives the permutation table; the same seed reproduces the world.
	Seed int64
	Name string
}

type TerrainConfig struct {
	// TileSize is the pixel edge of one tile when rendered.
	TileSize int
	// ChunkSize is the tile edge length of one chunk.
	ChunkSize int
	// FrequencyScale maps world tile coordinates into noise space.
	FrequencyScale float64
	Fractal        noise.FractalConfig
	Thresholds     terrain.Thresholds
}

type ViewConfig struct {
	// Radius is the Chebyshev chunk radius rendered around the camera.
	Radius int
	// EvictionHysteresis widens the eviction bound past the view radius so
	// chunks are not dropped the moment they scroll off screen.
	EvictionHysteresis int
	// CameraSmoothing is the exponential follow factor per second.
	CameraSmoothing float64
}

type LoggingConfig struct {
	Level string
}

// Load builds a Config from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		World: WorldConfig{
			Seed: getEnvInt64("WORLD_SEED", time.Now().UnixNano()),
			Name: getEnvStr("WORLD_NAME", "terrain world"),
		},
		Terrain: TerrainConfig{
			TileSize:       getEnvInt("TILE_SIZE", 16),
			ChunkSize:      getEnvInt("CHUNK_SIZE", chunk.DefaultSize),
			FrequencyScale: getEnvFloat("FREQUENCY_SCALE", chunk.DefaultFrequencyScale),
			Fractal: noise.FractalConfig{
				Octaves:    getEnvInt("FRACTAL_OCTAVES", 8),
				Lacunarity: getEnvFloat("FRACTAL_LACUNARITY", 2.1),
				Gain:       getEnvFloat("FRACTAL_GAIN", 0.45),
			},
			Thresholds: terrain.Thresholds{
				Water: getEnvFloat("THRESHOLD_WATER", 0.43),
				Sand:  getEnvFloat("THRESHOLD_SAND", 0.45),
				Grass: getEnvFloat("THRESHOLD_GRASS", 0.48),
				Dirt:  getEnvFloat("THRESHOLD_DIRT", 0.65),
				Rock:  getEnvFloat("THRESHOLD_ROCK", 0.75),
			},
		},
		View: ViewConfig{
			Radius:             getEnvInt("VIEW_RADIUS", 2),
			EvictionHysteresis: getEnvInt("EVICTION_HYSTERESIS", 2),
			CameraSmoothing:    getEnvFloat("CAMERA_SMOOTHING", 5.0),
		},
		Logging: LoggingConfig{
			Level: getEnvStr("LOG_LEVEL", "info"),
		},
	}
}

// Validate fails fast on values that would produce degenerate terrain.
func (c *Config) Validate() error {
	if c.Terrain.TileSize < 1 {
		return fmt.Errorf("config: tile size must be >= 1, got %d", c.Terrain.TileSize)
	}
	if c.Terrain.ChunkSize < 1 {
		return fmt.Errorf("config: chunk size must be >= 1, got %d", c.Terrain.ChunkSize)
	}
	if c.Terrain.FrequencyScale <= 0 {
		return fmt.Errorf("config: frequency scale must be > 0, got %g", c.Terrain.FrequencyScale)
	}
	if err := c.Terrain.Fractal.Validate(); err != nil {
		return err
	}
	if err := c.Terrain.Thresholds.Validate(); err != nil {
		return err
	}
	if c.View.Radius < 0 {
		return fmt.Errorf("config: view radius must be >= 0, got %d", c.View.Radius)
	}
	if c.View.EvictionHysteresis < 0 {
		return fmt.Errorf("config: eviction hysteresis must be >= 0, got %d", c.View.EvictionHysteresis)
	}
	return nil
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
