// Package resource places harvestable resource nodes on generated terrain.
// Placement is deterministic per (world seed, chunk coordinate): a chunk's
// nodes are the same every time it is visited, without any stored state.
package resource

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"

	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/chunk"
	"github.com/VoidMesh/terrain/services/terrain"
)

const (
	// MoistureScale is the noise-space scale of the moisture field gating
	// node placement. Larger values spread resources out.
	MoistureScale = 150.0
	// MaxNodesPerChunk caps placement so dense chunks stay readable.
	MaxNodesPerChunk = 12
	// candidateRolls is how many placement attempts a chunk gets before the
	// cap or the gates stop it.
	candidateRolls = 48
)

// NodeType identifies what a resource node yields.
type NodeType int

const (
	HerbPatch NodeType = iota
	BerryBush
	Tree
	StoneDeposit
	IronVein
)

// String returns the node type name.
func (t NodeType) String() string {
	switch t {
	case HerbPatch:
		return "herb patch"
	case BerryBush:
		return "berry bush"
	case Tree:
		return "tree"
	case StoneDeposit:
		return "stone deposit"
	case IronVein:
		return "iron vein"
	default:
		return "unknown"
	}
}

// Node is a placed resource node.
type Node struct {
	ID             uuid.UUID
	Type           NodeType
	ChunkX, ChunkY int
	LocalX, LocalY int
	Yield          int
}

// nodeSpec describes where a node type may spawn and how rare it is.
type nodeSpec struct {
	nodeType NodeType
	class    terrain.Class
	// moisture gate in [0,1]; the node spawns only where the normalized
	// moisture field exceeds it
	moisture float64
	// weight for the per-cell type roll among specs sharing a class
	weight   int
	yieldMin int
	yieldMax int
}

var specs = []nodeSpec{
	{nodeType: HerbPatch, class: terrain.Grass, moisture: 0.30, weight: 60, yieldMin: 1, yieldMax: 3},
	{nodeType: BerryBush, class: terrain.Grass, moisture: 0.50, weight: 40, yieldMin: 2, yieldMax: 4},
	{nodeType: Tree, class: terrain.Dirt, moisture: 0.35, weight: 100, yieldMin: 2, yieldMax: 5},
	{nodeType: StoneDeposit, class: terrain.Rock, moisture: 0.20, weight: 80, yieldMin: 3, yieldMax: 6},
	{nodeType: IronVein, class: terrain.Rock, moisture: 0.70, weight: 20, yieldMin: 1, yieldMax: 2},
}

// Service generates and caches resource nodes per chunk.
type Service struct {
	worldID  uuid.UUID
	seed     int64
	terrain  *terrain.Service
	moisture *perlin.Perlin

	mu    sync.RWMutex
	nodes map[chunk.Coord][]Node
}

// NewService creates a resource service bound to a terrain service. The
// moisture field uses its own noise source so resource distribution is
// decorrelated from elevation.
func NewService(worldID uuid.UUID, seed int64, terrainSvc *terrain.Service) *Service {
	logger := logging.GetLogger()
	logger.Debug("Creating new resource service", "world_id", worldID, "seed", seed)

	return &Service{
		worldID:  worldID,
		seed:     seed,
		terrain:  terrainSvc,
		moisture: perlin.NewPerlin(2, 2, 3, seed+1),
		nodes:    make(map[chunk.Coord][]Node),
	}
}

// NodesIn returns the resource nodes of a chunk, generating them on first
// access. The slice is shared; callers must not modify it.
func (s *Service) NodesIn(cx, cy int) []Node {
	coord := chunk.Coord{X: cx, Y: cy}

	s.mu.RLock()
	if nodes, ok := s.nodes[coord]; ok {
		s.mu.RUnlock()
		return nodes
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if nodes, ok := s.nodes[coord]; ok {
		return nodes
	}

	nodes := s.generate(coord)
	s.nodes[coord] = nodes
	return nodes
}

// NodeAt returns the node occupying a world coordinate, if any.
func (s *Service) NodeAt(worldX, worldY int) (Node, bool) {
	d := s.terrain.Decompose(float64(worldX), float64(worldY))
	for _, n := range s.NodesIn(d.ChunkX, d.ChunkY) {
		if n.LocalX == d.LocalX && n.LocalY == d.LocalY {
			return n, true
		}
	}
	return Node{}, false
}

// generate rolls candidate cells against the terrain class and moisture gates.
func (s *Service) generate(coord chunk.Coord) []Node {
	logger := logging.WithChunkCoords(coord.X, coord.Y)

	chunkSize := s.terrain.ChunkSize()
	rng := rand.New(rand.NewSource(chunkSeed(s.seed, coord)))

	var nodes []Node
	occupied := make(map[[2]int]bool)

	for roll := 0; roll < candidateRolls && len(nodes) < MaxNodesPerChunk; roll++ {
		lx := rng.Intn(chunkSize)
		ly := rng.Intn(chunkSize)
		if occupied[[2]int{lx, ly}] {
			continue
		}

		worldX := coord.X*chunkSize + lx
		worldY := coord.Y*chunkSize + ly

		class := s.terrain.ClassAt(float64(worldX), float64(worldY))
		if class == terrain.Water {
			continue
		}

		moist := s.moistureAt(worldX, worldY)

		spec, ok := pickSpec(rng, class, moist)
		if !ok {
			continue
		}

		occupied[[2]int{lx, ly}] = true
		nodes = append(nodes, Node{
			ID:     s.nodeID(worldX, worldY),
			Type:   spec.nodeType,
			ChunkX: coord.X,
			ChunkY: coord.Y,
			LocalX: lx,
			LocalY: ly,
			Yield:  spec.yieldMin + rng.Intn(spec.yieldMax-spec.yieldMin+1),
		})
	}

	logger.Debug("Generated resource nodes", "count", len(nodes))
	return nodes
}

// moistureAt samples the moisture field normalized to [0,1].
func (s *Service) moistureAt(worldX, worldY int) float64 {
	v := s.moisture.Noise2D(float64(worldX)/MoistureScale, float64(worldY)/MoistureScale)
	return (v + 1) / 2
}

// pickSpec runs a weighted roll among the specs whose class and moisture gates
// both pass.
func pickSpec(rng *rand.Rand, class terrain.Class, moisture float64) (nodeSpec, bool) {
	total := 0
	var eligible []nodeSpec
	for _, spec := range specs {
		if spec.class == class && moisture >= spec.moisture {
			eligible = append(eligible, spec)
			total += spec.weight
		}
	}
	if total == 0 {
		return nodeSpec{}, false
	}

	pick := rng.Intn(total)
	for _, spec := range eligible {
		pick -= spec.weight
		if pick < 0 {
			return spec, true
		}
	}
	return eligible[len(eligible)-1], true
}

// nodeID derives a stable UUID from the world identity and position, so node
// identity survives chunk eviction and regeneration.
func (s *Service) nodeID(worldX, worldY int) uuid.UUID {
	return uuid.NewSHA1(s.worldID, []byte(fmt.Sprintf("node:%d:%d", worldX, worldY)))
}

// chunkSeed folds the world seed and chunk coordinate into a per-chunk seed.
func chunkSeed(worldSeed int64, coord chunk.Coord) int64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt64(buf[:], worldSeed)
	h.Write(buf[:])
	putInt64(buf[:], int64(coord.X))
	h.Write(buf[:])
	putInt64(buf[:], int64(coord.Y))
	h.Write(buf[:])
	return int64(h.Sum64())
}

func putInt64(buf []byte, v int64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}
