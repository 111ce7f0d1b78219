package access

import (
	"context"
	"sync"

	"github.com/coder/hnsw"
	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/recognition"
)

// hnswMaxNeighbors is the M parameter of the HNSW graph.
const hnswMaxNeighbors = 16

// HNSWMatcher is the approximate nearest-neighbor alternative to
// LinearMatcher, for deployments where the enrolled set outgrows the linear
// scan. Same contract: deterministic best match, ErrNoEnrolledMembers on an
// empty set. The graph lives in memory and is fed on every enrollment.
type HNSWMatcher struct {
	mu    sync.RWMutex
	graph *hnsw.Graph[int64]
	byID  map[int64]database.Member
}

// NewHNSWMatcher creates an empty HNSW matcher.
func NewHNSWMatcher() *HNSWMatcher {
	return &HNSWMatcher{byID: make(map[int64]database.Member)}
}

func newGraph() *hnsw.Graph[int64] {
	g := hnsw.NewGraph[int64]()
	g.M = hnswMaxNeighbors
	g.Ml = 1.0 / float64(hnswMaxNeighbors) // Standard HNSW formula
	g.Distance = hnsw.CosineDistance
	return g
}

// Build replaces the index contents with the given member set. Called once
// at startup with the store's full listing.
func (m *HNSWMatcher) Build(members []database.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(members) == 0 {
		m.graph = nil
		m.byID = make(map[int64]database.Member)
		return
	}

	g := newGraph()
	m.byID = make(map[int64]database.Member, len(members))
	for _, member := range members {
		if len(member.Embedding) == 0 {
			continue
		}
		g.Add(hnsw.MakeNode(member.ID, member.Embedding))
		m.byID[member.ID] = member
	}
	m.graph = g
}

// Add inserts a single newly enrolled member into the index.
func (m *HNSWMatcher) Add(member *database.Member) {
	if len(member.Embedding) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.graph == nil {
		m.graph = newGraph()
	}
	m.graph.Add(hnsw.MakeNode(member.ID, member.Embedding))
	m.byID[member.ID] = *member
}

// Count returns the number of indexed members.
func (m *HNSWMatcher) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// BestMatch returns the nearest indexed member to the query. The score is
// recomputed as exact cosine similarity against the stored embedding so the
// decision threshold sees the same number the linear matcher would produce.
func (m *HNSWMatcher) BestMatch(ctx context.Context, query []float32) (*Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.graph == nil || len(m.byID) == 0 {
		return nil, ErrNoEnrolledMembers
	}

	neighbors := m.graph.Search(query, 1)
	if len(neighbors) == 0 {
		return nil, ErrNoEnrolledMembers
	}

	member, ok := m.byID[neighbors[0].Key]
	if !ok {
		return nil, ErrNoEnrolledMembers
	}

	return &Match{
		Member: member,
		Score:  recognition.CosineSimilarity(query, member.Embedding),
	}, nil
}
