package converter

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

// areaIDPrefix qualifies gazetteer ids in Open511 output.
const areaIDPrefix = "geonames.org/"

// arrondissements is the fixed gazetteer of Montreal boroughs with
// their GeoNames ids.
var arrondissements = []struct {
	name       string
	geonamesID int
}{
	{"Ahuntsic-Cartierville", 5882726},
	{"Anjou", 5885369},
	{"Côte-des-Neiges–Notre-Dame-de-Grâce", 5928430},
	{"L'Île-Bizard–Sainte-Geneviève", 6053852},
	{"LaSalle", 6945990},
	{"Lachine", 6545041},
	{"Le Plateau-Mont-Royal", 6052594},
	{"Le Sud-Ouest", 6053102},
	{"Mercier–Hochelaga-Maisonneuve", 6072211},
	{"Montréal-Nord", 6077254},
	{"Outremont", 6095438},
	{"Pierrefonds-Roxboro", 6104320},
	{"Rivière-des-Prairies–Pointe-aux-Trembles", 6123696},
	{"Rosemont–La Petite-Patrie", 6127689},
	{"Saint-Laurent", 6138610},
	{"Saint-Léonard", 6138625},
	{"Verdun", 6173767},
	{"Ville-Marie", 6174337},
	{"Villeray–Saint-Michel–Parc-Extension", 6174349},
}

type gazetteerEntry struct {
	name       string
	geonamesID int
}

// arrondissementsByKey indexes the gazetteer by normalized name, built
// once at startup.
var arrondissementsByKey = func() map[string]gazetteerEntry {
	lookup := make(map[string]gazetteerEntry, len(arrondissements))
	for _, a := range arrondissements {
		lookup[normalizeAreaName(a.name)] = gazetteerEntry{name: a.name, geonamesID: a.geonamesID}
	}
	return lookup
}()

// normalizeAreaName lowercases and strips whitespace, hyphens, and en
// dashes, so feed spellings with inconsistent dashes still resolve.
func normalizeAreaName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '–' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func taskAreas(_ context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	var areas []open511.Area
	for _, name := range src.JurisdictionNames() {
		entry, ok := arrondissementsByKey[normalizeAreaName(name)]
		if !ok {
			c.warn(WarningUnknownArrondissement, name)
			continue
		}
		areas = append(areas, open511.Area{
			Name: entry.name,
			ID:   areaIDPrefix + strconv.Itoa(entry.geonamesID),
		})
	}
	if len(areas) > 0 {
		ev.Areas = areas
	}
	return nil
}
