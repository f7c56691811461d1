package converter

import (
	"context"
	"strings"
	"time"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

// A task extracts one aspect of the source event into the Open511
// event. A task that cannot produce its field leaves the event
// untouched; a task hitting an unrecoverable condition returns an
// error, aborting the record.
type task func(ctx context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error

// tasks run in this order for every record. The order is part of the
// contract: taskStatus must precede taskActiveFlag, which only fills in
// a default status.
var tasks = []task{
	taskID,
	taskHeadline,
	taskDescription,
	taskStatus,
	taskActiveFlag,
	taskSeverity,
	taskEventType,
	taskEventSubtypes,
	taskLastUpdate,
	taskRoads,
	taskGeography,
	taskSchedule,
	taskAreas,
}

func taskID(_ context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	sid := src.SourceID()
	if sid == "" {
		return dataErrorf("event is missing event-sid")
	}
	ev.ID = c.cfg.Jurisdiction + "/" + sid
	return nil
}

func taskHeadline(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	if name, ok := src.Headline(); ok {
		ev.Headline = name
	}
	return nil
}

func taskDescription(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	if descr, ok := src.ProjectDescription(); ok {
		ev.Description = strings.ReplaceAll(descr, "\r", "")
	}
	return nil
}

func taskStatus(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	code, ok := src.StatusCode()
	if !ok || !isDigits(code) {
		return nil
	}
	switch code {
	case "11", "12", "13":
		// ended/deleted/cancelled
		ev.Status = open511.StatusArchived
	case "5":
		// reported
		ev.Certainty = open511.CertaintyPossible
	case "6":
		// confirmed
		ev.Certainty = open511.CertaintyObserved
	}
	return nil
}

func taskActiveFlag(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	if ev.Status == "" {
		ev.Status = open511.StatusActive
	}
	if flag, _ := src.FlagCode(); flag == "2" {
		ev.Status = open511.StatusArchived
	}
	return nil
}

func taskSeverity(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	sev, _ := src.SeverityCode()
	switch sev {
	case "1", "2":
		ev.Severity = open511.SeverityMinor
	case "3", "4":
		ev.Severity = open511.SeverityMajor
	default:
		ev.Severity = open511.SeverityUnknown
	}
	return nil
}

func taskEventType(_ context.Context, _ *Converter, src *geotrafic.Event, ev *open511.Event) error {
	code, _ := src.EventClassCode()
	switch code {
	case "2":
		ev.EventType = open511.TypeConstruction
	case "3":
		ev.EventType = open511.TypeSpecialEvent
	default:
		ev.EventType = open511.TypeIncident
	}
	return nil
}

func taskLastUpdate(_ context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	var ts time.Time
	if raw, ok := src.LastUpdate(); ok {
		parsed, hasZone, err := geotrafic.ParseTime(raw)
		if err != nil {
			return dataErrorf("unparseable last-update-time %q: %v", raw, err)
		}
		ts = parsed
		if !hasZone {
			// make timezone-aware in the project timezone
			ts = time.Date(parsed.Year(), parsed.Month(), parsed.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0, c.cfg.Location)
		}
	} else {
		// use current time if none in source
		ts = clock.Now().In(c.cfg.Location)
	}
	ts = ts.Truncate(time.Second)
	stamp := strings.Replace(ts.Format(time.RFC3339), "+00:00", "Z", 1)
	ev.Created = stamp
	ev.Updated = stamp
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
