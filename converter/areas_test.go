package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

func TestNormalizeAreaName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "canonical", input: "Le Plateau-Mont-Royal", expected: "leplateaumontroyal"},
		{name: "spaces only", input: "le plateau mont royal", expected: "leplateaumontroyal"},
		{name: "en dashes", input: "Côte-des-Neiges–Notre-Dame-de-Grâce", expected: "côtedesneigesnotredamedegrâce"},
		{name: "mixed case", input: "VILLE-MARIE", expected: "villemarie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, normalizeAreaName(tt.input))
		})
	}
}

func TestGazetteerIndexCoversAllBoroughs(t *testing.T) {
	// Montreal has 19 arrondissements; every one must resolve through
	// its normalized key back to its canonical spelling.
	require.Len(t, arrondissements, 19)
	require.Len(t, arrondissementsByKey, 19)
	for _, a := range arrondissements {
		entry, ok := arrondissementsByKey[normalizeAreaName(a.name)]
		require.True(t, ok, a.name)
		require.Equal(t, a.name, entry.name)
		require.Equal(t, a.geonamesID, entry.geonamesID)
	}
}

func TestTaskAreasResolvesVariantSpellings(t *testing.T) {
	c := newTestConverter(t, &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{
			{LeftJurisdiction: "le plateau mont royal"},
		},
	}
	ev := &open511.Event{}
	require.NoError(t, taskAreas(context.Background(), c, src, ev))

	require.Equal(t, []open511.Area{
		{Name: "Le Plateau-Mont-Royal", ID: "geonames.org/6052594"},
	}, ev.Areas)
}

func TestTaskAreasUnknownNameOmitted(t *testing.T) {
	c := newTestConverter(t, &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{
			{LeftJurisdiction: "Laval", RightJurisdiction: "Verdun"},
		},
	}
	ev := &open511.Event{}
	require.NoError(t, taskAreas(context.Background(), c, src, ev))

	// Laval is not a borough: warned and skipped, not fatal.
	require.Equal(t, []open511.Area{
		{Name: "Verdun", ID: "geonames.org/6173767"},
	}, ev.Areas)
}

func TestTaskAreasNoneResolve(t *testing.T) {
	c := newTestConverter(t, &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)})
	src := &geotrafic.Event{
		Locations: []geotrafic.LocationOnLink{{LeftJurisdiction: "Laval"}},
	}
	ev := &open511.Event{}
	require.NoError(t, taskAreas(context.Background(), c, src, ev))
	require.Nil(t, ev.Areas)
}
