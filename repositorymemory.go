package geospatial

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// RepositoryMemory is the in-memory backend: a map keyed by node ID with no
// auxiliary spatial index. Search is a linear scan filtered by Haversine,
// O(n) per call. Correctness over performance; it doubles as the oracle the
// indexed backends are checked against.
type RepositoryMemory struct {
	mu    sync.RWMutex
	nodes map[string]Node
}

var _ Repository = (*RepositoryMemory)(nil)

func NewRepositoryMemory() *RepositoryMemory {
	return &RepositoryMemory{nodes: make(map[string]Node)}
}

func (r *RepositoryMemory) Upsert(ctx context.Context, node Node) (Node, error) {
	if err := node.Point.Validate(); err != nil {
		return Node{}, err
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	node.Distance = 0

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.ID] = node

	return node, nil
}

// Search holds the read lock for the duration of the scan, so the result is
// a consistent snapshot of the repository at invocation time. No result
// order is guaranteed.
func (r *RepositoryMemory) Search(ctx context.Context, center Point, radius Radius) ([]Node, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if err := radius.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []Node
	for _, node := range r.nodes {
		if d := Haversine(center, node.Point); d <= radius.Meters() {
			node.Distance = d
			results = append(results, node)
		}
	}

	return results, nil
}

func (r *RepositoryMemory) Get(ctx context.Context, id string) (Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node, ok := r.nodes[id]
	if !ok {
		return Node{}, ErrNotFound
	}
	return node, nil
}

func (r *RepositoryMemory) Contains(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.nodes[id]
	return ok, nil
}

func (r *RepositoryMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.nodes[id]; !ok {
		return ErrNotFound
	}
	delete(r.nodes, id)
	return nil
}

func (r *RepositoryMemory) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.nodes), nil
}
