package postgis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opennorth/geotrafic-to-open511/open511"
)

// Reprojection happens in the database: PostGIS parses the feed's GML,
// transforms it from the source reference into WGS84, and hands back
// GeoJSON.
const reprojectSQL = `SELECT ST_AsGeoJSON(ST_Transform(ST_GeomFromGML($1, $2), 4326));`

// Reprojector converts link geometries through a PostGIS connection
// pool. It implements converter.Reprojector.
type Reprojector struct {
	pool *pgxpool.Pool
}

// NewReprojector creates a connection pool and fails fast if the
// database is unreachable.
func NewReprojector(ctx context.Context, dsn string) (*Reprojector, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Reprojector{pool: pool}, nil
}

// Reproject transforms one GML geometry fragment from srid into a WGS84
// GeoJSON geometry.
func (r *Reprojector) Reproject(ctx context.Context, gml string, srid int) (*open511.Geometry, error) {
	var raw string
	if err := r.pool.QueryRow(ctx, reprojectSQL, gml, srid).Scan(&raw); err != nil {
		return nil, fmt.Errorf("postgis reprojection: %w", err)
	}
	var geom open511.Geometry
	if err := json.Unmarshal([]byte(raw), &geom); err != nil {
		return nil, fmt.Errorf("decoding reprojected geometry: %w", err)
	}
	return &geom, nil
}

// Close shuts down the connection pool.
func (r *Reprojector) Close() {
	r.pool.Close()
}
