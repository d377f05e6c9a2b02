package resource

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrain/internal/testutil"
	"github.com/VoidMesh/terrain/services/chunk"
	"github.com/VoidMesh/terrain/services/noise"
	"github.com/VoidMesh/terrain/services/terrain"
)

func newTestResources(t testing.TB, seed int64) (*Service, *terrain.Service) {
	t.Helper()

	sampler, err := noise.NewSampler(noise.NewField(seed), noise.DefaultFractalConfig())
	require.NoError(t, err)
	manager := chunk.NewManager(sampler, chunk.DefaultSize, 16, chunk.DefaultFrequencyScale)
	terrainSvc, err := terrain.NewService(manager, terrain.DefaultThresholds())
	require.NoError(t, err)

	worldID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("test-world"))
	return NewService(worldID, seed, terrainSvc), terrainSvc
}

func TestNodeType_String(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	assert.Equal(t, "herb patch", HerbPatch.String())
	assert.Equal(t, "berry bush", BerryBush.String())
	assert.Equal(t, "tree", Tree.String())
	assert.Equal(t, "stone deposit", StoneDeposit.String())
	assert.Equal(t, "iron vein", IronVein.String())
	assert.Equal(t, "unknown", NodeType(99).String())
}

func TestService_NodesInDeterminism(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	a, _ := newTestResources(t, testutil.SeedTestData.World1)
	b, _ := newTestResources(t, testutil.SeedTestData.World1)

	for cy := -2; cy <= 2; cy++ {
		for cx := -2; cx <= 2; cx++ {
			require.Equal(t, a.NodesIn(cx, cy), b.NodesIn(cx, cy),
				"chunk (%d, %d) must place identical nodes for the same seed", cx, cy)
		}
	}
}

func TestService_NodesInCached(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	svc, _ := newTestResources(t, testutil.SeedTestData.World1)

	first := svc.NodesIn(1, 1)
	second := svc.NodesIn(1, 1)
	assert.Equal(t, first, second)
	if len(first) > 0 {
		// Same backing slice, not a regeneration.
		assert.Same(t, &first[0], &second[0])
	}
}

func TestService_NodesRespectBoundsAndCap(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	svc, terrainSvc := newTestResources(t, testutil.SeedTestData.World2)
	size := terrainSvc.ChunkSize()

	for cy := -4; cy <= 4; cy++ {
		for cx := -4; cx <= 4; cx++ {
			nodes := svc.NodesIn(cx, cy)
			require.LessOrEqual(t, len(nodes), MaxNodesPerChunk,
				"chunk (%d, %d) exceeds the node cap", cx, cy)

			occupied := make(map[[2]int]bool)
			for _, n := range nodes {
				require.Equal(t, cx, n.ChunkX)
				require.Equal(t, cy, n.ChunkY)
				require.GreaterOrEqual(t, n.LocalX, 0)
				require.Less(t, n.LocalX, size)
				require.GreaterOrEqual(t, n.LocalY, 0)
				require.Less(t, n.LocalY, size)
				require.Positive(t, n.Yield)

				key := [2]int{n.LocalX, n.LocalY}
				require.False(t, occupied[key],
					"two nodes share tile (%d, %d) in chunk (%d, %d)", n.LocalX, n.LocalY, cx, cy)
				occupied[key] = true
			}
		}
	}
}

func TestService_NodesNeverOnWater(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	svc, terrainSvc := newTestResources(t, testutil.SeedTestData.World1)
	size := terrainSvc.ChunkSize()

	total := 0
	for cy := -6; cy <= 6; cy++ {
		for cx := -6; cx <= 6; cx++ {
			for _, n := range svc.NodesIn(cx, cy) {
				worldX := cx*size + n.LocalX
				worldY := cy*size + n.LocalY
				class := terrainSvc.ClassAt(float64(worldX), float64(worldY))
				require.NotEqual(t, terrain.Water, class,
					"%s placed on water at (%d, %d)", n.Type, worldX, worldY)
				total++
			}
		}
	}

	assert.Positive(t, total, "a 13x13 chunk window should place at least one node")
}

func TestService_NodeTypesMatchTerrainClass(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	svc, terrainSvc := newTestResources(t, testutil.SeedTestData.World1)
	size := terrainSvc.ChunkSize()

	classFor := map[NodeType]terrain.Class{
		HerbPatch:    terrain.Grass,
		BerryBush:    terrain.Grass,
		Tree:         terrain.Dirt,
		StoneDeposit: terrain.Rock,
		IronVein:     terrain.Rock,
	}

	for cy := -6; cy <= 6; cy++ {
		for cx := -6; cx <= 6; cx++ {
			for _, n := range svc.NodesIn(cx, cy) {
				worldX := cx*size + n.LocalX
				worldY := cy*size + n.LocalY
				class := terrainSvc.ClassAt(float64(worldX), float64(worldY))
				require.Equal(t, classFor[n.Type], class,
					"%s must sit on %s terrain, found %s at (%d, %d)",
					n.Type, classFor[n.Type], class, worldX, worldY)
			}
		}
	}
}

func TestService_NodeAt(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	svc, terrainSvc := newTestResources(t, testutil.SeedTestData.World1)
	size := terrainSvc.ChunkSize()

	// Find a chunk with at least one node, then look it up by world coordinate.
	var found *Node
	var foundChunk chunk.Coord
	for cy := -6; cy <= 6 && found == nil; cy++ {
		for cx := -6; cx <= 6 && found == nil; cx++ {
			nodes := svc.NodesIn(cx, cy)
			if len(nodes) > 0 {
				found = &nodes[0]
				foundChunk = chunk.Coord{X: cx, Y: cy}
			}
		}
	}
	require.NotNil(t, found, "expected at least one node in the search window")

	worldX := foundChunk.X*size + found.LocalX
	worldY := foundChunk.Y*size + found.LocalY

	got, ok := svc.NodeAt(worldX, worldY)
	require.True(t, ok)
	assert.Equal(t, *found, got)

	// An unoccupied tile in a fully generated chunk returns nothing.
	occupied := make(map[[2]int]bool)
	for _, n := range svc.NodesIn(foundChunk.X, foundChunk.Y) {
		occupied[[2]int{n.LocalX, n.LocalY}] = true
	}
	for ly := 0; ly < size; ly++ {
		for lx := 0; lx < size; lx++ {
			if !occupied[[2]int{lx, ly}] {
				_, ok := svc.NodeAt(foundChunk.X*size+lx, foundChunk.Y*size+ly)
				assert.False(t, ok)
				return
			}
		}
	}
}

func TestService_NodeIDsStableAcrossInstances(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	worldID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("stable-world"))

	build := func() *Service {
		sampler, err := noise.NewSampler(
			noise.NewField(testutil.SeedTestData.World1), noise.DefaultFractalConfig())
		require.NoError(t, err)
		manager := chunk.NewManager(sampler, chunk.DefaultSize, 16, chunk.DefaultFrequencyScale)
		terrainSvc, err := terrain.NewService(manager, terrain.DefaultThresholds())
		require.NoError(t, err)
		return NewService(worldID, testutil.SeedTestData.World1, terrainSvc)
	}

	a := build()
	b := build()

	nodesA := a.NodesIn(0, 0)
	nodesB := b.NodesIn(0, 0)
	require.Equal(t, len(nodesA), len(nodesB))

	for i := range nodesA {
		assert.Equal(t, nodesA[i].ID, nodesB[i].ID,
			"node identity must be a pure function of world identity and position")
		assert.NotEqual(t, uuid.Nil, nodesA[i].ID)
	}
}

func TestService_DifferentSeedsPlaceDifferently(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	a, _ := newTestResources(t, testutil.SeedTestData.World1)
	b, _ := newTestResources(t, testutil.SeedTestData.World2)

	same := true
	for cy := -4; cy <= 4 && same; cy++ {
		for cx := -4; cx <= 4; cx++ {
			na := a.NodesIn(cx, cy)
			nb := b.NodesIn(cx, cy)
			if len(na) != len(nb) {
				same = false
				break
			}
			for i := range na {
				if na[i].LocalX != nb[i].LocalX || na[i].LocalY != nb[i].LocalY || na[i].Type != nb[i].Type {
					same = false
					break
				}
			}
		}
	}

	assert.False(t, same, "different world seeds should not reproduce the same placements")
}
