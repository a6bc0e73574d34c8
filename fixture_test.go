package geospatial

import "context"

// louthCenter is the query point the County Louth fixture is measured from.
var louthCenter = Point{Latitude: 54.098494, Longitude: -6.242611}

// louthNodes is a fixture of nodes at increasing distances from
// louthCenter: 0 m, 864 m, 8.1 km, 36.6 km, 59.7 km and 230.6 km.
func louthNodes() []Node {
	return []Node{
		{ID: "me", Point: Point{Latitude: 54.098494, Longitude: -6.242611}, Value: "me"},
		{ID: "you", Point: Point{Latitude: 54.103859, Longitude: -6.252195}, Value: "you"},
		{ID: "him", Point: Point{Latitude: 54.035867, Longitude: -6.307209}, Value: "him"},
		{ID: "her", Point: Point{Latitude: 54.395999, Longitude: -6.482304}, Value: "her"},
		{ID: "them", Point: Point{Latitude: 54.387373, Longitude: -7.017335}, Value: "them"},
		{ID: "us", Point: Point{Latitude: 52.146571, Longitude: -7.408515}, Value: "us"},
	}
}

// radiusLadder maps search radii in meters to the fixture IDs expected
// within them.
var radiusLadder = map[float64][]string{
	0:      {"me"},
	500:    {"me"},
	5000:   {"me", "you"},
	10000:  {"me", "you", "him"},
	25000:  {"me", "you", "him"},
	50000:  {"me", "you", "him", "her"},
	100000: {"me", "you", "him", "her", "them"},
	250000: {"me", "you", "him", "her", "them", "us"},
}

func upsertAll(ctx context.Context, repo Repository, nodes []Node) error {
	for _, node := range nodes {
		if _, err := repo.Upsert(ctx, node); err != nil {
			return err
		}
	}
	return nil
}

func nodeIDs(nodes []Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}
	return ids
}
