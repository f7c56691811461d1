package converter

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/open511"
)

func resolveSchedule(t *testing.T, start, end string, recurrences []string) (*open511.Schedule, error) {
	t.Helper()
	c := newTestConverter(t, &fakeReprojector{geom: lineString(`[[0,0],[1,1]]`)})
	src := &geotrafic.Event{
		ExpectedStart: start,
		ExpectedEnd:   end,
		ScheduleTimes: recurrences,
	}
	ev := &open511.Event{}
	if err := taskSchedule(context.Background(), c, src, ev); err != nil {
		return nil, err
	}
	return ev.Schedule, nil
}

func TestSchedulePureDateRange(t *testing.T) {
	sched, err := resolveSchedule(t, "2020-01-01T00:00", "2020-01-10T23:59", nil)
	require.NoError(t, err)

	require.Empty(t, sched.Intervals)
	require.Empty(t, sched.Exceptions)
	require.Equal(t, []open511.RecurringSchedule{
		{StartDate: "2020-01-01", EndDate: "2020-01-10"},
	}, sched.RecurringSchedules)
}

func TestScheduleIntervals(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{
			name:     "open-ended",
			start:    "2020-01-01T10:00",
			expected: "2020-01-01T10:00/",
		},
		{
			name:     "bounded",
			start:    "2020-01-01T10:00",
			end:      "2020-01-02T16:30",
			expected: "2020-01-01T10:00/2020-01-02T16:30",
		},
		{
			name:     "midnight start with specific end time",
			start:    "2020-01-01T00:00",
			end:      "2020-01-02T16:30",
			expected: "2020-01-01T00:00/2020-01-02T16:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := resolveSchedule(t, tt.start, tt.end, nil)
			require.NoError(t, err)
			require.Empty(t, sched.RecurringSchedules)
			require.Equal(t, []string{tt.expected}, sched.Intervals)
		})
	}
}

func TestScheduleInvertedIntervalFatal(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "end before start", start: "2020-01-10T10:00", end: "2020-01-01T10:00"},
		{name: "end equals start", start: "2020-01-10T10:00", end: "2020-01-10T10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSchedule(t, tt.start, tt.end, nil)
			var de *DataError
			require.ErrorAs(t, err, &de)
		})
	}
}

func TestScheduleAllDayWindowsFiltered(t *testing.T) {
	// All-day windows carry no information: with them gone this is a
	// plain date range.
	sched, err := resolveSchedule(t, "2020-01-01T00:00", "2020-01-10T23:59",
		[]string{"00012359", "00002359"})
	require.NoError(t, err)
	require.Equal(t, []open511.RecurringSchedule{
		{StartDate: "2020-01-01", EndDate: "2020-01-10"},
	}, sched.RecurringSchedules)
	require.Empty(t, sched.Exceptions)
}

func TestScheduleLeadingException(t *testing.T) {
	// 10:00 falls inside the daily 07:00-18:00 window, so the first day
	// is clipped through an exception while start_date stays put.
	sched, err := resolveSchedule(t, "2020-01-01T10:00", "", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, []open511.RecurringSchedule{
		{StartDate: "2020-01-01", DailyStartTime: "07:00", DailyEndTime: "18:00"},
	}, sched.RecurringSchedules)
	require.Equal(t, []string{"2020-01-01 10:00-18:00"}, sched.Exceptions)
}

func TestScheduleStartAfterLatestWindow(t *testing.T) {
	sched, err := resolveSchedule(t, "2020-01-01T19:00", "", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, "2020-01-02", sched.RecurringSchedules[0].StartDate)
	require.Empty(t, sched.Exceptions)
}

func TestScheduleStartSecondsPastLatestWindow(t *testing.T) {
	// 18:00:30 is strictly after the 18:00 window end even though both
	// render as 18:00, so the first active day is the next one and no
	// exception is emitted.
	sched, err := resolveSchedule(t, "2020-01-01T18:00:30", "", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, "2020-01-02", sched.RecurringSchedules[0].StartDate)
	require.Empty(t, sched.Exceptions)
}

func TestScheduleEndSecondsPastEarliestWindow(t *testing.T) {
	// 07:00:30 is strictly after the 07:00 window start, so the last day
	// clips to a zero-length range rather than ending the day before.
	sched, err := resolveSchedule(t, "2020-01-01T06:00", "2020-01-10T07:00:30", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, "2020-01-10", sched.RecurringSchedules[0].EndDate)
	require.Equal(t, []string{"2020-01-10 07:00-07:00"}, sched.Exceptions)
}

func TestScheduleTrailingException(t *testing.T) {
	sched, err := resolveSchedule(t, "2020-01-01T06:00", "2020-01-10T15:00", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, []open511.RecurringSchedule{
		{StartDate: "2020-01-01", EndDate: "2020-01-10", DailyStartTime: "07:00", DailyEndTime: "18:00"},
	}, sched.RecurringSchedules)
	require.Equal(t, []string{"2020-01-10 07:00-15:00"}, sched.Exceptions)
}

func TestScheduleEndBeforeEarliestWindow(t *testing.T) {
	sched, err := resolveSchedule(t, "2020-01-01T06:00", "2020-01-10T06:00", []string{"07001800"})
	require.NoError(t, err)

	require.Equal(t, "2020-01-09", sched.RecurringSchedules[0].EndDate)
	require.Empty(t, sched.Exceptions)
}

func TestScheduleMultipleWindows(t *testing.T) {
	// Windows arrive out of order; the exception derivation sorts them
	// but entries keep document order.
	sched, err := resolveSchedule(t, "2020-01-01T08:00", "", []string{"12001300", "07000900"})
	require.NoError(t, err)

	require.Equal(t, []open511.RecurringSchedule{
		{StartDate: "2020-01-01", DailyStartTime: "12:00", DailyEndTime: "13:00"},
		{StartDate: "2020-01-01", DailyStartTime: "07:00", DailyEndTime: "09:00"},
	}, sched.RecurringSchedules)
	require.Equal(t, []string{"2020-01-01 08:00-09:00 12:00-13:00"}, sched.Exceptions)
}

func TestScheduleBothExceptions(t *testing.T) {
	sched, err := resolveSchedule(t, "2020-01-01T10:00", "2020-01-10T15:00", []string{"07001800"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"2020-01-01 10:00-18:00",
		"2020-01-10 07:00-15:00",
	}, sched.Exceptions)
}

func TestScheduleMalformedRecurrence(t *testing.T) {
	tests := []struct {
		name       string
		recurrence string
	}{
		{name: "too short", recurrence: "0700"},
		{name: "non-digit", recurrence: "07zz1800"},
		{name: "hour out of range", recurrence: "25001800"},
		{name: "minute out of range", recurrence: "07001861"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSchedule(t, "2020-01-01T10:00", "", []string{tt.recurrence})
			var de *DataError
			require.ErrorAs(t, err, &de)
		})
	}
}

func TestScheduleDefaultStartIsNow(t *testing.T) {
	loc, err := time.LoadLocation("America/Montreal")
	require.NoError(t, err)
	SetClock(clockwork.NewFakeClockAt(time.Date(2020, 5, 6, 11, 22, 0, 0, loc)))
	defer SetClock(nil)

	sched, err := resolveSchedule(t, "", "", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"2020-05-06T11:22/"}, sched.Intervals)
}

func TestScheduleUnparseableStartFatal(t *testing.T) {
	_, err := resolveSchedule(t, "soon", "", nil)
	var de *DataError
	require.ErrorAs(t, err, &de)
}
