// Package geospatial provides radius-bounded proximity search over located
// entities, behind one repository contract with interchangeable backends:
// an in-memory linear scan, PostgreSQL/PostGIS, and SpatiaLite. For the
// same stored nodes, every backend returns the same set of matches for the
// same (center, radius) query.
package geospatial

import "context"

// Repository stores nodes keyed by identity and answers radius searches.
// Backend choice is a construction-time decision; all backends satisfy the
// same semantics.
type Repository interface {
	// Upsert inserts the node, or replaces the stored value and point when
	// a node with the same ID already exists. A node with an empty ID is
	// assigned one. The stored node is returned.
	Upsert(ctx context.Context, node Node) (Node, error)

	// Search returns every stored node within radius meters of center,
	// boundary inclusive. Result order is unspecified unless the backend
	// documents otherwise.
	Search(ctx context.Context, center Point, radius Radius) ([]Node, error)

	// Get returns the node with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Node, error)

	// Contains reports whether a node with the given ID is stored.
	Contains(ctx context.Context, id string) (bool, error)

	// Delete removes the node with the given ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored nodes.
	Count(ctx context.Context) (int, error)
}
