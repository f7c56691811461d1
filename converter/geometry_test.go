package converter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

func TestCombineGeometriesSingle(t *testing.T) {
	g := lineString(`[[0,0],[1,1]]`)
	combined, err := CombineGeometries([]*open511.Geometry{g})
	require.NoError(t, err)
	require.Equal(t, g, combined)
}

func TestCombineGeometriesMulti(t *testing.T) {
	combined, err := CombineGeometries([]*open511.Geometry{
		lineString(`[[0,0],[1,1]]`),
		lineString(`[[2,2],[3,3]]`),
	})
	require.NoError(t, err)

	require.Equal(t, "MultiLineString", combined.Type)
	var parts []json.RawMessage
	require.NoError(t, json.Unmarshal(combined.Coordinates, &parts))
	require.Len(t, parts, 2)
	require.JSONEq(t, `[[0,0],[1,1]]`, string(parts[0]))
	require.JSONEq(t, `[[2,2],[3,3]]`, string(parts[1]))
}

func TestCombineGeometriesErrors(t *testing.T) {
	tests := []struct {
		name  string
		geoms []*open511.Geometry
	}{
		{
			name:  "no fragments",
			geoms: nil,
		},
		{
			name: "mixed types",
			geoms: []*open511.Geometry{
				{Type: "Point", Coordinates: json.RawMessage(`[0,0]`)},
				lineString(`[[0,0],[1,1]]`),
			},
		},
		{
			name: "unsupported multi type",
			geoms: []*open511.Geometry{
				{Type: "MultiPoint", Coordinates: json.RawMessage(`[[0,0]]`)},
				{Type: "MultiPoint", Coordinates: json.RawMessage(`[[1,1]]`)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CombineGeometries(tt.geoms)
			var de *DataError
			require.ErrorAs(t, err, &de)
		})
	}
}

func TestTaskGeographyMissingGeometryFatal(t *testing.T) {
	c := newTestConverter(t, &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{{LinkName: "Rue A"}}, // no link-geometry
	}
	err := taskGeography(context.Background(), c, src, &open511.Event{})
	var de *DataError
	require.ErrorAs(t, err, &de)
}

func TestTaskGeographyEmptyFragmentAmongFullOnesFatal(t *testing.T) {
	reproj := &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)}
	c := newTestConverter(t, reproj)
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{
			{LinkName: "Rue A", Geometry: geotrafic.RawGeometry{GML: "<LineString/>"}},
			{LinkName: "Rue B"}, // bare link-geometry
		},
	}
	err := taskGeography(context.Background(), c, src, &open511.Event{})
	var de *DataError
	require.ErrorAs(t, err, &de)
	require.Contains(t, err.Error(), "Rue B")
}

func TestTaskGeographyReprojectionFailureAbortsRecord(t *testing.T) {
	boom := errors.New("srid not found")
	c := newTestConverter(t, &fakeReprojector{err: boom})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{
			{LinkName: "Rue A", Geometry: geotrafic.RawGeometry{GML: "<LineString/>"}},
		},
	}
	err := taskGeography(context.Background(), c, src, &open511.Event{})
	require.ErrorIs(t, err, boom)
}

func TestTaskGeographyCombinesFragments(t *testing.T) {
	c := newTestConverter(t, &fakeReprojector{perCall: []*open511.Geometry{
		{Type: "Point", Coordinates: json.RawMessage(`[-73.57,45.50]`)},
		{Type: "Point", Coordinates: json.RawMessage(`[-73.58,45.51]`)},
	}})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{
			{Geometry: geotrafic.RawGeometry{GML: "<Point/>"}},
			{Geometry: geotrafic.RawGeometry{GML: "<Point/>"}},
		},
	}
	ev := &open511.Event{}
	require.NoError(t, taskGeography(context.Background(), c, src, ev))
	require.Equal(t, "MultiPoint", ev.Geography.Type)
	require.JSONEq(t, `[[-73.57,45.50],[-73.58,45.51]]`, string(ev.Geography.Coordinates))
}
