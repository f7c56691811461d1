package converter

import "github.com/jonboulle/clockwork"

// clock is the package time source. The last-update and schedule tasks
// fall back to "now" when the feed omits a timestamp, so tests freeze
// it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
