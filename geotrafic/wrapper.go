package geotrafic

import (
	"sort"
	"strings"
	"time"
)

// Accessor methods below expose the fields the converter consumes as
// optional values, so the conversion tasks never depend on the literal
// document shape.

// SourceID returns the feed's event identifier.
func (e *Event) SourceID() string {
	return strings.TrimSpace(e.SID)
}

// Headline returns the event name, when present.
func (e *Event) Headline() (string, bool) {
	return optional(e.Name)
}

// ProjectDescription returns the free-text description, when present.
func (e *Event) ProjectDescription() (string, bool) {
	if e.Description == "" {
		return "", false
	}
	return e.Description, true
}

// StatusCode returns the TMDD status code, when present.
func (e *Event) StatusCode() (string, bool) {
	return optional(e.StatusID)
}

// SeverityCode returns the TMDD severity code, when present.
func (e *Event) SeverityCode() (string, bool) {
	return optional(e.SeverityID)
}

// EventClassCode returns the planned-event class code, when present.
func (e *Event) EventClassCode() (string, bool) {
	return optional(e.ClassID)
}

// FlagCode returns the TMDD event flag, when present.
func (e *Event) FlagCode() (string, bool) {
	return optional(e.FlagID)
}

// LastUpdate returns the raw last-update timestamp string, when present.
func (e *Event) LastUpdate() (string, bool) {
	return optional(e.LastUpdateTime)
}

// ExpectedStartTime returns the raw expected start timestamp, when present.
func (e *Event) ExpectedStartTime() (string, bool) {
	return optional(e.ExpectedStart)
}

// ExpectedEndTime returns the raw expected end timestamp, when present.
func (e *Event) ExpectedEndTime() (string, bool) {
	return optional(e.ExpectedEnd)
}

// CauseCategoryIDs returns the distinct ITIS category codes attached to
// the event, sorted so output is stable across runs.
func (e *Event) CauseCategoryIDs() []string {
	seen := map[string]struct{}{}
	for _, cause := range e.Causes {
		code := strings.TrimSpace(cause.CategoryID)
		if code == "" {
			continue
		}
		seen[code] = struct{}{}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LocationGroups returns the location-on-link groups in document order.
func (e *Event) LocationGroups() []LocationOnLink {
	return e.Locations
}

// JurisdictionNames returns the distinct left/right jurisdiction names
// across all location groups, sorted.
func (e *Event) JurisdictionNames() []string {
	seen := map[string]struct{}{}
	for _, loc := range e.Locations {
		for _, name := range []string{loc.LeftJurisdiction, loc.RightJurisdiction} {
			name = strings.TrimSpace(name)
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecurrenceTimes returns the raw HHMMHHMM schedule-times strings in
// document order.
func (e *Event) RecurrenceTimes() []string {
	times := make([]string, 0, len(e.ScheduleTimes))
	for _, s := range e.ScheduleTimes {
		s = strings.TrimSpace(s)
		if s != "" {
			times = append(times, s)
		}
	}
	return times
}

func optional(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// timeLayouts are the timestamp shapes the feed has been observed to
// emit. Layouts carrying a zone are tried first.
var timeLayouts = []struct {
	layout  string
	hasZone bool
}{
	{time.RFC3339, true},
	{"2006-01-02T15:04Z07:00", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", false},
}

// ParseTime parses a feed timestamp. The second return reports whether
// the value carried a UTC offset; callers decide how to localize naive
// values.
func ParseTime(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, l := range timeLayouts {
		t, err := time.Parse(l.layout, s)
		if err == nil {
			return t, l.hasZone, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, false, firstErr
}
