package converter

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

const (
	intervalLayout = "2006-01-02T15:04"
	dateLayout     = "2006-01-02"
)

// The feed sometimes tags events with an explicit all-day window; it
// adds no information, so it is dropped before schedule resolution.
var allDayWindows = map[string]bool{
	"00012359": true,
	"00002359": true,
}

// taskSchedule turns the expected start/end instants and the recurring
// daily windows into an Open511 schedule. All comparisons are on naive
// local wall-clock values, matching how the feed expresses them.
func taskSchedule(_ context.Context, c *Converter, src *geotrafic.Event, ev *open511.Event) error {
	var start time.Time
	if raw, ok := src.ExpectedStartTime(); ok {
		parsed, _, err := geotrafic.ParseTime(raw)
		if err != nil {
			return dataErrorf("unparseable expected-start-time %q: %v", raw, err)
		}
		start = stripZone(parsed)
	} else {
		start = stripZone(clock.Now().In(c.cfg.Location))
	}

	var end time.Time
	hasEnd := false
	if raw, ok := src.ExpectedEndTime(); ok {
		parsed, _, err := geotrafic.ParseTime(raw)
		if err != nil {
			return dataErrorf("unparseable expected-end-time %q: %v", raw, err)
		}
		end = stripZone(parsed)
		hasEnd = true
	}
	if hasEnd && !end.After(start) {
		return dataErrorf("expected-end-time %s is not after expected-start-time %s",
			end.Format(intervalLayout), start.Format(intervalLayout))
	}

	var recurrences []string
	for _, r := range src.RecurrenceTimes() {
		if !allDayWindows[r] {
			recurrences = append(recurrences, r)
		}
	}

	if len(recurrences) == 0 {
		ev.Schedule = absoluteSchedule(start, end, hasEnd)
		return nil
	}

	windows, err := parseWindows(recurrences)
	if err != nil {
		return err
	}
	startDate, endDate, exceptions := resolveRecurringRange(start, end, hasEnd, windows)

	scheds := make([]open511.RecurringSchedule, 0, len(recurrences))
	for _, r := range recurrences {
		sched := open511.RecurringSchedule{
			StartDate:      startDate.Format(dateLayout),
			DailyStartTime: r[0:2] + ":" + r[2:4],
			DailyEndTime:   r[4:6] + ":" + r[6:8],
		}
		if hasEnd {
			sched.EndDate = endDate.Format(dateLayout)
		}
		scheds = append(scheds, sched)
	}
	ev.Schedule = &open511.Schedule{RecurringSchedules: scheds}
	if len(exceptions) > 0 {
		ev.Schedule.Exceptions = exceptions
	}
	return nil
}

// absoluteSchedule covers events with no daily recurrence: either a
// pure date range, or a single minute-precision interval. An intervals
// schedule would still be valid for the midnight-to-23:59 case; the
// date-range form just reads better when the times aren't meaningful.
func absoluteSchedule(start, end time.Time, hasEnd bool) *open511.Schedule {
	if start.Hour() == 0 && start.Minute() == 0 &&
		(!hasEnd || (end.Hour() == 23 && end.Minute() == 59)) {
		sched := open511.RecurringSchedule{StartDate: start.Format(dateLayout)}
		if hasEnd {
			sched.EndDate = end.Format(dateLayout)
		}
		return &open511.Schedule{RecurringSchedules: []open511.RecurringSchedule{sched}}
	}

	interval := start.Format(intervalLayout) + "/"
	if hasEnd {
		interval += end.Format(intervalLayout)
	}
	return &open511.Schedule{Intervals: []string{interval}}
}

// secondOfDay is a naive time of day in seconds since midnight.
// Boundary comparisons are exact to the second; the rendered form
// drops seconds, as the Open511 exception grammar is minute-precision.
type secondOfDay int

func (s secondOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(s)/3600, int(s)%3600/60)
}

// window is one daily recurring active range.
type window struct {
	start, end secondOfDay
}

func parseWindows(recurrences []string) ([]window, error) {
	windows := make([]window, 0, len(recurrences))
	for _, r := range recurrences {
		if len(r) != 8 || !isDigits(r) {
			return nil, dataErrorf("malformed schedule-times %q", r)
		}
		start, err := parseTimeOfDay(r[0:4])
		if err != nil {
			return nil, dataErrorf("malformed schedule-times %q: %v", r, err)
		}
		end, err := parseTimeOfDay(r[4:8])
		if err != nil {
			return nil, dataErrorf("malformed schedule-times %q: %v", r, err)
		}
		windows = append(windows, window{start: start, end: end})
	}
	return windows, nil
}

func parseTimeOfDay(hhmm string) (secondOfDay, error) {
	hour := 10*int(hhmm[0]-'0') + int(hhmm[1]-'0')
	minute := 10*int(hhmm[2]-'0') + int(hhmm[3]-'0')
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("time of day %s out of range", hhmm)
	}
	return secondOfDay(hour*3600 + minute*60), nil
}

// resolveRecurringRange deals with the edge cases where the expected
// start or end instant falls inside the daily windows, e.g. the event
// starts at noon on August 1 but in general runs 9am-6pm daily. Rather
// than reporting a misleading full first/last day, it shifts the date
// range to full days and emits Open511 exception entries for the
// partial ones.
//
// "Earliest" and "latest" are the first window's start and the last
// window's end after sorting by (start, end) - deliberately not a true
// min/max scan; downstream consumers rely on this derivation.
func resolveRecurringRange(start, end time.Time, hasEnd bool, windows []window) (time.Time, time.Time, []string) {
	sorted := make([]window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		return sorted[i].end < sorted[j].end
	})
	earliest := sorted[0].start
	latest := sorted[len(sorted)-1].end

	startTime := secondOf(start)
	startDate := dateOf(start)
	var exceptions []string
	if startTime > latest {
		// starts after the latest in-effect time: first active day is tomorrow
		startDate = startDate.AddDate(0, 0, 1)
	} else if startTime > earliest {
		var tokens []string
		for _, w := range sorted {
			if startTime < w.end {
				tokens = append(tokens, maxSecond(startTime, w.start).String()+"-"+w.end.String())
			}
		}
		exceptions = append(exceptions, startDate.Format(dateLayout)+" "+strings.Join(tokens, " "))
	}

	var endDate time.Time
	if hasEnd {
		endTime := secondOf(end)
		endDate = dateOf(end)
		if endTime < earliest {
			// ends before the earliest in-effect time: last active day was yesterday
			endDate = endDate.AddDate(0, 0, -1)
		} else if endTime < latest {
			var tokens []string
			for _, w := range sorted {
				if endTime > w.start {
					tokens = append(tokens, w.start.String()+"-"+minSecond(endTime, w.end).String())
				}
			}
			exceptions = append(exceptions, endDate.Format(dateLayout)+" "+strings.Join(tokens, " "))
		}
	}

	return startDate, endDate, exceptions
}

func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func secondOf(t time.Time) secondOfDay {
	return secondOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func maxSecond(a, b secondOfDay) secondOfDay {
	if a > b {
		return a
	}
	return b
}

func minSecond(a, b secondOfDay) secondOfDay {
	if a < b {
		return a
	}
	return b
}
