// Package daily resolves the puzzle calendar and picks each day's target.
// Everything is computed in one fixed timezone so all players share the same
// puzzle regardless of where they are.
package daily

import (
	"fmt"
	"time"

	// Embed zone data so the fixed zone resolves on hosts without a tz database.
	_ "time/tzdata"
)

const (
	// ZoneName is the fixed puzzle timezone.
	ZoneName = "America/Chicago"

	// DayKeyLayout is the canonical YYYY-MM-DD day key format.
	DayKeyLayout = "2006-01-02"
)

// Clock resolves "today" and the time left until the next puzzle in the fixed
// puzzle timezone. The now func is injectable for tests.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock() (*Clock, error) {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		return nil, fmt.Errorf("load puzzle timezone: %w", err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewClockAt builds a clock with a fixed now func. Test hook.
func NewClockAt(now func() time.Time) (*Clock, error) {
	c, err := NewClock()
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

// DayKey returns today's date key in the puzzle timezone.
func (c *Clock) DayKey() string {
	return c.now().In(c.loc).Format(DayKeyLayout)
}

// DayKeyOffset returns the date key for the day `daysAgo` days before today.
func (c *Clock) DayKeyOffset(daysAgo int) string {
	return c.now().In(c.loc).AddDate(0, 0, -daysAgo).Format(DayKeyLayout)
}

// UntilNextDay returns the duration until the puzzle timezone's next midnight.
// Never negative. Days spanning a DST transition are 23 or 25 real hours and
// the duration reflects that.
func (c *Clock) UntilNextDay() time.Duration {
	now := c.now().In(c.loc)
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, c.loc)
	d := next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatCountdown renders a countdown as HH:MM:SS.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
