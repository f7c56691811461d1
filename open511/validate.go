package open511

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

// Validate checks that the assembled event has the required Open511
// shape. Struct tags cover presence and enumerations; the schedule
// one-of rule needs code.
func (e *Event) Validate() error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	s := e.Schedule
	hasIntervals := len(s.Intervals) > 0
	hasRecurring := len(s.RecurringSchedules) > 0
	switch {
	case hasIntervals && hasRecurring:
		return errors.New("schedule has both intervals and recurring_schedules")
	case !hasIntervals && !hasRecurring:
		return errors.New("schedule has neither intervals nor recurring_schedules")
	case hasIntervals && len(s.Exceptions) > 0:
		return errors.New("intervals schedule cannot carry exceptions")
	}
	if e.Geography != nil && len(e.Geography.Coordinates) == 0 {
		return fmt.Errorf("geometry of type %s has no coordinates", e.Geography.Type)
	}
	return nil
}
