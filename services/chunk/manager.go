package chunk

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/VoidMesh/terrain/internal/logging"
	"github.com/VoidMesh/terrain/services/noise"
)

// Manager owns the chunk cache. It maps chunk coordinates to generated chunks,
// creating each chunk at most once for its lifetime. Lookups are cheap reads;
// generation for the same coordinate is serialized so concurrent callers share
// one chunk instance and never observe a partially built grid.
type Manager struct {
	sampler        *noise.Sampler
	size           int
	tileSize       int
	frequencyScale float64

	mu     sync.RWMutex
	chunks map[Coord]*Chunk
	// in-flight generation records, keyed like chunks
	pending map[Coord]*generation

	generated atomic.Int64
}

type generation struct {
	done  chan struct{}
	chunk *Chunk
}

// NewManager creates a chunk manager over the given fractal sampler.
func NewManager(sampler *noise.Sampler, size, tileSize int, frequencyScale float64) *Manager {
	logger := logging.GetLogger()
	logger.Debug("Creating new chunk manager",
		"chunk_size", size, "tile_size", tileSize, "frequency_scale", frequencyScale)

	return &Manager{
		sampler:        sampler,
		size:           size,
		tileSize:       tileSize,
		frequencyScale: frequencyScale,
		chunks:         make(map[Coord]*Chunk),
		pending:        make(map[Coord]*generation),
	}
}

// Size returns the chunk edge length in tiles.
func (m *Manager) Size() int {
	return m.size
}

// ChunkAt returns the cached chunk for the coordinate, generating it on first
// access. Repeated and concurrent calls for the same coordinate return the
// same chunk instance.
func (m *Manager) ChunkAt(cx, cy int) *Chunk {
	coord := Coord{X: cx, Y: cy}

	m.mu.RLock()
	if c, ok := m.chunks[coord]; ok {
		m.mu.RUnlock()
		return c
	}
	m.mu.RUnlock()

	m.mu.Lock()
	// Re-check under the write lock; another caller may have won the race.
	if c, ok := m.chunks[coord]; ok {
		m.mu.Unlock()
		return c
	}
	if g, ok := m.pending[coord]; ok {
		// Someone else is generating this chunk; wait for it outside the lock.
		m.mu.Unlock()
		<-g.done
		return g.chunk
	}
	g := &generation{done: make(chan struct{})}
	m.pending[coord] = g
	m.mu.Unlock()

	// Generate outside the lock so unrelated chunks proceed in parallel.
	c := Generate(coord, m.size, m.tileSize, m.sampler, m.frequencyScale)
	m.generated.Add(1)

	m.mu.Lock()
	m.chunks[coord] = c
	delete(m.pending, coord)
	m.mu.Unlock()

	// Publish only after the grid is fully populated and cached.
	g.chunk = c
	close(g.done)

	return c
}

// Cached reports whether the chunk at the coordinate has already been generated.
func (m *Manager) Cached(cx, cy int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.chunks[Coord{X: cx, Y: cy}]
	return ok
}

// Len returns the number of resident chunks.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}

// GeneratedCount returns how many chunk generations have run since the manager
// was created. With at-most-once generation it can never exceed the number of
// distinct coordinates requested.
func (m *Manager) GeneratedCount() int64 {
	return m.generated.Load()
}

// EvictBeyond drops every resident chunk whose Chebyshev distance from the
// chunk containing (camX, camY) exceeds the given bound. Chunks are pure
// functions of their coordinates, so eviction only costs re-synthesis if the
// camera returns. It returns the number of chunks evicted.
func (m *Manager) EvictBeyond(camX, camY float64, bound int) int {
	center := Coord{
		X: FloorDiv(int(floor(camX)), m.size),
		Y: FloorDiv(int(floor(camY)), m.size),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for coord := range m.chunks {
		dx := absInt(coord.X - center.X)
		dy := absInt(coord.Y - center.Y)
		if dx > bound || dy > bound {
			delete(m.chunks, coord)
			evicted++
		}
	}

	if evicted > 0 {
		logging.GetLogger().Debug("Evicted distant chunks",
			"evicted", evicted, "resident", len(m.chunks), "bound", bound)
	}
	return evicted
}

// Prewarm generates every chunk within radius (Chebyshev) of the chunk
// containing (camX, camY) using a small worker pool. At-most-once generation
// holds: workers racing on the same coordinate share a single generation.
func (m *Manager) Prewarm(ctx context.Context, camX, camY float64, radius int) error {
	center := Coord{
		X: FloorDiv(int(floor(camX)), m.size),
		Y: FloorDiv(int(floor(camY)), m.size),
	}

	var coords []Coord
	for cy := center.Y - radius; cy <= center.Y+radius; cy++ {
		for cx := center.X - radius; cx <= center.X+radius; cx++ {
			coords = append(coords, Coord{X: cx, Y: cy})
		}
	}
	if len(coords) == 0 {
		return nil
	}

	workerCount := 4
	if len(coords) < workerCount {
		workerCount = len(coords)
	}

	coordChan := make(chan Coord, len(coords))
	for _, c := range coords {
		coordChan <- c
	}
	close(coordChan)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for coord := range coordChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				m.ChunkAt(coord.X, coord.Y)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("prewarm canceled: %w", err)
	}
	return nil
}
