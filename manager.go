package geospatial

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Valentin-Kaiser/go-dbase/dbase"
)

// Manager bulk-loads nodes into a repository. Malformed rows are logged and
// skipped so one bad record does not abort a whole import; repository
// errors on individual rows are handled the same way. Both imports return
// the number of nodes actually upserted.
type Manager interface {
	// ImportCSV reads id,latitude,longitude,value rows. The first row is
	// treated as a header. An empty id column lets the repository assign one.
	ImportCSV(ctx context.Context, r io.Reader) (int, error)

	// ImportDBF reads records from a dBase/FoxPro table, picking fields by
	// the given mapping.
	ImportDBF(ctx context.Context, path string, mapping DBFMapping) (int, error)
}

// DBFMapping names the DBF columns to read a node from. ValueField may be
// empty, in which case the id doubles as the value.
type DBFMapping struct {
	IDField        string
	LatitudeField  string
	LongitudeField string
	ValueField     string
}

type ManagerImpl struct {
	repository Repository
}

func NewManagerImpl(repository Repository) Manager {
	m := &ManagerImpl{
		repository: repository,
	}

	return m
}

func (m *ManagerImpl) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	// One read to read the header
	cr.Read()

	imported := 0
	for {
		fields, err := cr.Read()
		if err != nil && errors.Is(io.EOF, err) {
			break
		} else if err != nil {
			slog.Error("error reading line", "err", err)
			continue
		}

		if len(fields) < 4 {
			slog.Error("short row", "fields", len(fields))
			continue
		}

		lat, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			slog.Error("error parsing latitude", "raw", fields[1], "err", err)
			continue
		}
		lon, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			slog.Error("error parsing longitude", "raw", fields[2], "err", err)
			continue
		}

		node := Node{
			ID:    fields[0],
			Point: Point{Latitude: lat, Longitude: lon},
			Value: fields[3],
		}

		slog.Info("node at", "id", node.ID, "lat", lat, "lon", lon)

		if _, err = m.repository.Upsert(ctx, node); err != nil {
			slog.Error("error upserting node", "id", node.ID, "err", err)
			continue
		}
		imported++
	}

	return imported, nil
}

func (m *ManagerImpl) ImportDBF(ctx context.Context, path string, mapping DBFMapping) (int, error) {
	table, err := dbase.OpenTable(&dbase.Config{
		Filename:   path,
		TrimSpaces: true,
	})
	if err != nil {
		return 0, fmt.Errorf("opening dbf table: %w", err)
	}
	defer table.Close()

	imported := 0
	for !table.EOF() {
		row, err := table.Next()
		if err != nil {
			slog.Error("error reading dbf row", "err", err)
			continue
		}
		if row.Deleted {
			continue
		}

		id, err := stringField(row, mapping.IDField)
		if err != nil {
			slog.Error("error reading id field", "field", mapping.IDField, "err", err)
			continue
		}
		lat, err := floatField(row, mapping.LatitudeField)
		if err != nil {
			slog.Error("error reading latitude field", "field", mapping.LatitudeField, "err", err)
			continue
		}
		lon, err := floatField(row, mapping.LongitudeField)
		if err != nil {
			slog.Error("error reading longitude field", "field", mapping.LongitudeField, "err", err)
			continue
		}

		value := id
		if mapping.ValueField != "" {
			if value, err = stringField(row, mapping.ValueField); err != nil {
				slog.Error("error reading value field", "field", mapping.ValueField, "err", err)
				continue
			}
		}

		node := Node{
			ID:    id,
			Point: Point{Latitude: lat, Longitude: lon},
			Value: value,
		}

		if _, err = m.repository.Upsert(ctx, node); err != nil {
			slog.Error("error upserting node", "id", node.ID, "err", err)
			continue
		}
		imported++
	}

	return imported, nil
}

func stringField(row *dbase.Row, name string) (string, error) {
	v, err := row.ValueByName(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", v), nil
}

func floatField(row *dbase.Row, name string) (float64, error) {
	v, err := row.ValueByName(name)
	if err != nil {
		return 0, err
	}
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	case int64:
		return float64(f), nil
	case int32:
		return float64(f), nil
	case string:
		return strconv.ParseFloat(f, 64)
	default:
		return 0, fmt.Errorf("field %s: unexpected type %T", name, v)
	}
}
