package geospatial

// Node is a located entity: an opaque value pinned to a point on Earth.
// ID is the upsert identity; at most one node per ID is ever stored.
type Node struct {
	ID    string `json:"id"`
	Point Point  `json:"point"`
	Value string `json:"value"`

	// Distance from the search center in meters. Only populated on nodes
	// returned from Search, using the backend's own distance metric.
	Distance float64 `json:"distance,omitempty"`
}
