package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrain/internal/testutil"
	"github.com/VoidMesh/terrain/services/chunk"
	"github.com/VoidMesh/terrain/services/noise"
	"github.com/VoidMesh/terrain/services/terrain"
)

// terrainWithThresholds builds a terrain service whose class boundaries are
// pushed to one extreme, giving tests a world that is effectively all land or
// all water regardless of seed.
func terrainWithThresholds(t *testing.T, th terrain.Thresholds) *terrain.Service {
	t.Helper()

	sampler, err := noise.NewSampler(
		noise.NewField(testutil.SeedTestData.World1), noise.DefaultFractalConfig())
	require.NoError(t, err)
	manager := chunk.NewManager(sampler, chunk.DefaultSize, 16, chunk.DefaultFrequencyScale)

	svc, err := terrain.NewService(manager, th)
	require.NoError(t, err)
	return svc
}

func allLandTerrain(t *testing.T) *terrain.Service {
	return terrainWithThresholds(t, terrain.Thresholds{
		Water: 0.0001, Sand: 0.0002, Grass: 0.0003, Dirt: 0.0004, Rock: 0.0005,
	})
}

func allWaterTerrain(t *testing.T) *terrain.Service {
	return terrainWithThresholds(t, terrain.Thresholds{
		Water: 0.9995, Sand: 0.9996, Grass: 0.9997, Dirt: 0.9998, Rock: 0.9999,
	})
}

func TestPlayer_UpdateAppliesInput(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allLandTerrain(t)
	player := NewPlayer(10, 10, 4.0)

	player.SetInput(1, 0)
	player.Update(0.5, terrainSvc)

	x, y := player.Position()
	assert.InDelta(t, 12.0, x, 1e-9, "speed 4 for half a second moves 2 tiles")
	assert.InDelta(t, 10.0, y, 1e-9)
}

func TestPlayer_UpdateWithoutInputStaysPut(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allLandTerrain(t)
	player := NewPlayer(5, -3, 4.0)

	player.Update(1.0, terrainSvc)

	x, y := player.Position()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -3.0, y)
}

func TestPlayer_UpdateBlockedByWater(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allWaterTerrain(t)
	player := NewPlayer(10, 10, 4.0)

	player.SetInput(1, 1)
	player.Update(0.5, terrainSvc)

	x, y := player.Position()
	assert.Equal(t, 10.0, x, "move onto water must be rejected")
	assert.Equal(t, 10.0, y, "move onto water must be rejected")
}

func TestPlayer_MovementNeverLandsOnWater(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	// Real terrain with default boundaries: walk the player in a spiral and
	// check it never ends a frame on a non-walkable tile.
	sampler, err := noise.NewSampler(
		noise.NewField(testutil.SeedTestData.World2), noise.DefaultFractalConfig())
	require.NoError(t, err)
	manager := chunk.NewManager(sampler, chunk.DefaultSize, 16, chunk.DefaultFrequencyScale)
	terrainSvc, err := terrain.NewService(manager, terrain.DefaultThresholds())
	require.NoError(t, err)

	// Find a walkable start near the origin.
	var startX, startY float64
	found := false
	for r := 0; r < 64 && !found; r++ {
		for i := -r; i <= r && !found; i++ {
			if terrainSvc.IsWalkable(float64(i), float64(r)) {
				startX, startY = float64(i), float64(r)
				found = true
			}
		}
	}
	require.True(t, found, "expected walkable terrain near the origin")

	player := NewPlayer(startX, startY, 6.0)
	const dt = 1.0 / 60.0
	directions := [][2]float64{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for step := 0; step < 2000; step++ {
		d := directions[(step/50)%len(directions)]
		player.SetInput(d[0], d[1])
		player.Update(dt, terrainSvc)

		x, y := player.Position()
		require.True(t, terrainSvc.IsWalkable(x, y),
			"player standing on non-walkable tile at (%g, %g) after step %d", x, y, step)
	}
}

func TestMonster_ChasesTarget(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allLandTerrain(t)
	player := NewPlayer(20, 20, 0)
	monster := NewMonster(0, 0, 5.0, player)

	const dt = 1.0 / 60.0
	startDist := math.Hypot(20, 20)
	for i := 0; i < 600; i++ {
		monster.Update(dt, terrainSvc)
	}

	mx, my := monster.Position()
	endDist := math.Hypot(20-mx, 20-my)
	assert.Less(t, endDist, startDist, "monster should close on its target")
	assert.GreaterOrEqual(t, endDist, 1.0-5.0*dt, "monster stops about one tile short")
}

func TestMonster_StopsWithinOneTile(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allLandTerrain(t)
	player := NewPlayer(0.5, 0, 0)
	monster := NewMonster(0, 0, 5.0, player)

	monster.Update(1.0/60.0, terrainSvc)

	mx, my := monster.Position()
	assert.Equal(t, 0.0, mx, "inside one tile the monster holds position")
	assert.Equal(t, 0.0, my)
}

func TestMonster_BlockedByWater(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	terrainSvc := allWaterTerrain(t)
	player := NewPlayer(10, 0, 0)
	monster := NewMonster(0, 0, 5.0, player)

	for i := 0; i < 60; i++ {
		monster.Update(1.0/60.0, terrainSvc)
	}

	mx, my := monster.Position()
	assert.Equal(t, 0.0, mx, "chase steps onto water must be rejected")
	assert.Equal(t, 0.0, my)
}
