package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// Now is a span of two milliseconds around the current instant.
func Now() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}
