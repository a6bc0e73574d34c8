package geospatial

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createNodeTablePgx = `CREATE TABLE IF NOT EXISTS nodes(
    	id varchar(64) primary key,
    	value text,
    	location geometry(Point, 4326)
	);`

	createNodeLocationIndex = `CREATE INDEX IF NOT EXISTS idx_nodes_location ON nodes USING gist(location);`
)

// RepositoryPgx delegates storage and distance filtering to a
// PostgreSQL/PostGIS database with a GiST index on the point geometry. The
// database is the source of truth for distance; no local recomputation
// happens here. The pool's lifecycle is owned by the caller.
type RepositoryPgx struct {
	conn *pgxpool.Pool
}

// NewRepositoryPgx bootstraps the nodes table and its spatial index. The
// postgis extension must already be installed in the target database.
func NewRepositoryPgx(ctx context.Context, conn *pgxpool.Pool) (Repository, error) {
	_, err := conn.Exec(ctx, createNodeTablePgx)
	if err != nil {
		return nil, storeErr(err)
	}

	_, err = conn.Exec(ctx, createNodeLocationIndex)
	if err != nil {
		return nil, storeErr(err)
	}

	return &RepositoryPgx{conn: conn}, nil
}

func (r *RepositoryPgx) Upsert(ctx context.Context, node Node) (Node, error) {
	if err := node.Point.Validate(); err != nil {
		return Node{}, err
	}
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	node.Distance = 0

	// PostGIS points are longitude first.
	_, err := r.conn.Exec(ctx,
		`INSERT INTO nodes(id, value, location) VALUES($1, $2, ST_SetSRID(ST_Point($3, $4), 4326))
		ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value, location = EXCLUDED.location;`,
		node.ID, node.Value, node.Point.Longitude, node.Point.Latitude)
	if err != nil {
		return Node{}, storeErr(err)
	}

	return node, nil
}

// Search issues a single ST_DWithin query against the spatial index.
// Results come back nearest first.
func (r *RepositoryPgx) Search(ctx context.Context, center Point, radius Radius) ([]Node, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if err := radius.Validate(); err != nil {
		return nil, err
	}

	/*
		SRID: tells postgis what measurement system we're using
		location::geography ensures we're using the dwithin query on a geography
		st_setsrid(st_point())::geography again using a geography
	*/
	rows, err := r.conn.Query(ctx,
		`SELECT id, value, ST_Y(location), ST_X(location),
		ST_Distance(location::geography, ST_SetSRID(ST_Point($1, $2), 4326)::geography) AS distance
		FROM nodes
		WHERE ST_DWithin(location::geography, ST_SetSRID(ST_Point($1, $2), 4326)::geography, $3)
		ORDER BY distance`,
		center.Longitude, center.Latitude, radius.Meters())
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

func (r *RepositoryPgx) Get(ctx context.Context, id string) (Node, error) {
	row := r.conn.QueryRow(ctx,
		"SELECT id, value, ST_Y(location), ST_X(location) FROM nodes WHERE id = $1;", id)

	var n Node
	err := row.Scan(&n.ID, &n.Value, &n.Point.Latitude, &n.Point.Longitude)
	if errors.Is(err, pgx.ErrNoRows) {
		return Node{}, ErrNotFound
	} else if err != nil {
		return Node{}, storeErr(err)
	}
	return n, nil
}

func (r *RepositoryPgx) Contains(ctx context.Context, id string) (bool, error) {
	_, err := r.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (r *RepositoryPgx) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM nodes WHERE id = $1;", id)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RepositoryPgx) Count(ctx context.Context) (int, error) {
	var count int
	err := r.conn.QueryRow(ctx, "SELECT count(*) FROM nodes;").Scan(&count)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
