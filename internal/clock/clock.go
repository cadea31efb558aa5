package clock

import "time"

// Layout is the timestamp format persisted everywhere. Timestamps are stored
// as text, so ordering comparisons on them are lexical.
const Layout = "2006-01-02 15:04:05"

const (
	zoneName = "Asia/Kolkata"
	// IST offset, used when the tzdata lookup fails.
	fallbackOffset = 5*3600 + 30*60
)

type Clock interface {
	Now() time.Time
}

// SystemClock produces wall-clock time pinned to the tracker's fixed
// timezone regardless of the host's local zone.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock() *SystemClock {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		loc = time.FixedZone("IST", fallbackOffset)
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func Timestamp(t time.Time) string {
	return t.Format(Layout)
}
