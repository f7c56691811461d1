package converter

import (
	"context"
	"strings"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

func taskRoads(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	var roads []open511.Road
	for _, loc := range src.LocationGroups() {
		name := strings.TrimSpace(loc.LinkName)
		if name == "" {
			continue
		}
		r := open511.Road{Name: name}
		from := strings.TrimSpace(loc.CrossStreetFrom)
		if from != "" {
			r.From = from
		}
		to := strings.TrimSpace(loc.CrossStreetTo)
		// "to" is only meaningful when it closes a from/to span
		if to != "" && from != "" && to != from {
			r.To = to
		}
		roads = append(roads, r)
	}

	roads = MergeAdjacentSegments(roads)
	if len(roads) > 0 {
		ev.Roads = roads
	}
	return nil
}

// MergeAdjacentSegments collapses neighbouring segments of the same
// road that share an endpoint, until no adjacent pair merges. Only
// adjacent entries are considered; non-adjacent mergeable segments are
// left alone on purpose, matching the feed's ordering semantics.
func MergeAdjacentSegments(roads []open511.Road) []open511.Road {
	i := 1
	for i < len(roads) {
		prev := &roads[i-1]
		cur := roads[i]
		if cur.Name == prev.Name && spansBoth(cur) && spansBoth(*prev) {
			if cur.To == prev.From {
				prev.From = cur.From
				roads = append(roads[:i], roads[i+1:]...)
				continue
			}
			if cur.From == prev.To {
				prev.To = cur.To
				roads = append(roads[:i], roads[i+1:]...)
				continue
			}
		}
		i++
	}
	return roads
}

func spansBoth(r open511.Road) bool {
	return r.From != "" && r.To != ""
}
