package geospatial

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	createNodeTableSpatialite = `CREATE TABLE IF NOT EXISTS nodes(
    	id varchar(64) primary key,
    	value text
	);`

	addNodeGeoColumn = `SELECT AddGeometryColumn('nodes', 'location', 4326, 'POINT', 'XY');`

	createNodeLocationIndexSpatialite = `SELECT CreateSpatialIndex('nodes', 'location');`
)

// RepositorySpatialite delegates storage and distance filtering to a
// SpatiaLite database with an R*Tree index on the point geometry. The
// database handle's lifecycle is owned by the caller.
type RepositorySpatialite struct {
	db *sql.DB
}

// NewRepositorySpatialite initializes the spatial metadata, the nodes table
// and its spatial index. The spatialite loadable extension must be
// available to the sqlite driver.
func NewRepositorySpatialite(ctx context.Context, db *sql.DB) (Repository, error) {
	_, err := db.ExecContext(ctx, "SELECT InitSpatialMetaData();")
	if err != nil {
		return nil, storeErr(err)
	}

	_, err = db.ExecContext(ctx, createNodeTableSpatialite)
	if err != nil {
		return nil, storeErr(err)
	}

	_, err = db.ExecContext(ctx, addNodeGeoColumn)
	if err != nil {
		return nil, storeErr(err)
	}

	_, err = db.ExecContext(ctx, createNodeLocationIndexSpatialite)
	if err != nil {
		return nil, storeErr(err)
	}

	return &RepositorySpatialite{db: db}, nil
}

// wkt renders a point as well-known text, longitude first. %v keeps the
// shortest exact float representation, unlike %f.
func wkt(p Point) string {
	return fmt.Sprintf("POINT(%v %v)", p.Longitude, p.Latitude)
}

func (r *RepositorySpatialite) Upsert(ctx context.Context, node Node) (Node, error) {
	if err := node.Point.Validate(); err != nil {
		return Node{}, err
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	node.Distance = 0

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO nodes(id, value, location) VALUES(?, ?, GeomFromText(?, 4326))
		ON CONFLICT(id) DO UPDATE SET value = excluded.value, location = excluded.location;`,
		node.ID, node.Value, wkt(node.Point))
	if err != nil {
		return Node{}, storeErr(err)
	}

	return node, nil
}

// Search issues a single PTDistWithin query; Distance(..., true) computes
// meters on the ellipsoid. Results come back nearest first.
func (r *RepositorySpatialite) Search(ctx context.Context, center Point, radius Radius) ([]Node, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if err := radius.Validate(); err != nil {
		return nil, err
	}

	point := wkt(center)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, value, Y(location), X(location), Distance(location, GeomFromText(?, 4326), true) AS distance
		FROM nodes
		WHERE PTDistWithin(location, GeomFromText(?, 4326), ?)
		ORDER BY distance ASC`,
		point, point, radius.Meters())
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var results []Node
	for rows.Next() {
		var n Node
		if err = rows.Scan(&n.ID, &n.Value, &n.Point.Latitude, &n.Point.Longitude, &n.Distance); err != nil {
			return nil, storeErr(err)
		}
		results = append(results, n)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr(err)
	}

	return results, nil
}

func (r *RepositorySpatialite) Get(ctx context.Context, id string) (Node, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, value, Y(location), X(location) FROM nodes WHERE id = ?;", id)

	var n Node
	err := row.Scan(&n.ID, &n.Value, &n.Point.Latitude, &n.Point.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return Node{}, ErrNotFound
	} else if err != nil {
		return Node{}, storeErr(err)
	}
	return n, nil
}

func (r *RepositorySpatialite) Contains(ctx context.Context, id string) (bool, error) {
	_, err := r.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RepositorySpatialite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM nodes WHERE id = ?;", id)
	if err != nil {
		return storeErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RepositorySpatialite) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM nodes;").Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
