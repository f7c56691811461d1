package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

func taskGeography(ctx context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	var geoms []*open511.Geometry
	for _, loc := range src.LocationGroups() {
		gml := strings.TrimSpace(loc.Geometry.GML)
		if gml == "" {
			// every location must carry its geometry; a bare
			// <link-geometry/> aborts the record rather than silently
			// thinning the combined shape
			return dataErrorf("location %q is missing link-geometry", loc.LinkName)
		}
		g, err := c.reproj.Reproject(ctx, gml, c.cfg.Feed.SourceSRID)
		if err != nil {
			return fmt.Errorf("reprojecting link-geometry: %w", err)
		}
		geoms = append(geoms, g)
	}

	geom, err := CombineGeometries(geoms)
	if err != nil {
		return err
	}
	ev.Geography = geom
	return nil
}

// CombineGeometries merges reprojected geometry fragments into the
// event's single geography. One fragment passes through unchanged;
// several collapse into the matching Multi- geometry, which requires
// every fragment to share one of the basic types.
func CombineGeometries(geoms []*open511.Geometry) (*open511.Geometry, error) {
	switch len(geoms) {
	case 0:
		return nil, dataErrorf("event is missing link-geometry")
	case 1:
		return geoms[0], nil
	}

	baseType := geoms[0].Type
	for _, g := range geoms[1:] {
		if g.Type != baseType {
			return nil, dataErrorf("event has multiple link-geometries of different types")
		}
	}
	switch baseType {
	case "Point", "LineString", "Polygon":
	default:
		return nil, dataErrorf("unsupported geometry type %s", baseType)
	}

	parts := make([]json.RawMessage, len(geoms))
	for i, g := range geoms {
		parts[i] = g.Coordinates
	}
	coords, err := json.Marshal(parts)
	if err != nil {
		return nil, fmt.Errorf("combining link-geometries: %w", err)
	}
	return &open511.Geometry{Type: "Multi" + baseType, Coordinates: coords}, nil
}
