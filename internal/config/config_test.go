package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrain/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	cfg := Load()

	assert.Equal(t, "terrain world", cfg.World.Name)
	assert.Equal(t, 16, cfg.Terrain.TileSize)
	assert.Equal(t, 16, cfg.Terrain.ChunkSize)
	assert.Equal(t, 0.03, cfg.Terrain.FrequencyScale)
	assert.Equal(t, 8, cfg.Terrain.Fractal.Octaves)
	assert.Equal(t, 2.1, cfg.Terrain.Fractal.Lacunarity)
	assert.Equal(t, 0.45, cfg.Terrain.Fractal.Gain)
	assert.Equal(t, 0.43, cfg.Terrain.Thresholds.Water)
	assert.Equal(t, 0.45, cfg.Terrain.Thresholds.Sand)
	assert.Equal(t, 0.48, cfg.Terrain.Thresholds.Grass)
	assert.Equal(t, 0.65, cfg.Terrain.Thresholds.Dirt)
	assert.Equal(t, 0.75, cfg.Terrain.Thresholds.Rock)
	assert.Equal(t, 2, cfg.View.Radius)
	assert.Equal(t, 2, cfg.View.EvictionHysteresis)
	assert.Equal(t, 5.0, cfg.View.CameraSmoothing)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	t.Setenv("WORLD_SEED", "424242")
	t.Setenv("WORLD_NAME", "override world")
	t.Setenv("TILE_SIZE", "32")
	t.Setenv("CHUNK_SIZE", "64")
	t.Setenv("FREQUENCY_SCALE", "0.05")
	t.Setenv("FRACTAL_OCTAVES", "4")
	t.Setenv("FRACTAL_LACUNARITY", "2.5")
	t.Setenv("FRACTAL_GAIN", "0.5")
	t.Setenv("THRESHOLD_ROCK", "0.95")
	t.Setenv("VIEW_RADIUS", "3")
	t.Setenv("EVICTION_HYSTERESIS", "1")
	t.Setenv("CAMERA_SMOOTHING", "8.0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, int64(424242), cfg.World.Seed)
	assert.Equal(t, "override world", cfg.World.Name)
	assert.Equal(t, 32, cfg.Terrain.TileSize)
	assert.Equal(t, 64, cfg.Terrain.ChunkSize)
	assert.Equal(t, 0.05, cfg.Terrain.FrequencyScale)
	assert.Equal(t, 4, cfg.Terrain.Fractal.Octaves)
	assert.Equal(t, 2.5, cfg.Terrain.Fractal.Lacunarity)
	assert.Equal(t, 0.5, cfg.Terrain.Fractal.Gain)
	assert.Equal(t, 0.95, cfg.Terrain.Thresholds.Rock)
	assert.Equal(t, 3, cfg.View.Radius)
	assert.Equal(t, 1, cfg.View.EvictionHysteresis)
	assert.Equal(t, 8.0, cfg.View.CameraSmoothing)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_MalformedEnvFallsBackToDefaults(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	t.Setenv("WORLD_SEED", "not-a-number")
	t.Setenv("TILE_SIZE", "sixteen")
	t.Setenv("FREQUENCY_SCALE", "fast")

	cfg := Load()

	assert.Equal(t, 16, cfg.Terrain.TileSize)
	assert.Equal(t, 0.03, cfg.Terrain.FrequencyScale)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:    "tile size below one",
			mutate:  func(c *Config) { c.Terrain.TileSize = 0 },
			wantErr: "tile size",
		},
		{
			name:    "chunk size below one",
			mutate:  func(c *Config) { c.Terrain.ChunkSize = 0 },
			wantErr: "chunk size",
		},
		{
			name:    "zero frequency scale",
			mutate:  func(c *Config) { c.Terrain.FrequencyScale = 0 },
			wantErr: "frequency scale",
		},
		{
			name:    "fractal octaves below one",
			mutate:  func(c *Config) { c.Terrain.Fractal.Octaves = 0 },
			wantErr: "octaves",
		},
		{
			name:    "threshold order broken",
			mutate:  func(c *Config) { c.Terrain.Thresholds.Grass = 0.40 },
			wantErr: "thresholds",
		},
		{
			name:    "negative view radius",
			mutate:  func(c *Config) { c.View.Radius = -1 },
			wantErr: "view radius",
		},
		{
			name:    "negative eviction hysteresis",
			mutate:  func(c *Config) { c.View.EvictionHysteresis = -2 },
			wantErr: "hysteresis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
