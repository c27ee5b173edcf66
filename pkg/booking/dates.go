package booking

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayout is the wire format for dates this hook produces.
const dateLayout = "2006-01-02"

// ParseDate parses a free-form date string into a calendar date, normalized
// to midnight UTC so date arithmetic and comparisons are timezone-free.
func ParseDate(text string) (time.Time, error) {
	t, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", text, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// IsDate reports whether the text parses as a date.
func IsDate(text string) bool {
	_, err := ParseDate(text)
	return err == nil
}

// DayDiff returns the absolute whole-day difference between two date
// strings.
func DayDiff(a, b string) (int, error) {
	da, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	db, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	days := int(da.Sub(db).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, nil
}

// AddDays returns the date n days after the given date string, formatted
// YYYY-MM-DD.
func AddDays(date string, n int) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(dateLayout), nil
}

// Clock supplies "today" for the future-date checks. The timezone is fixed
// at construction so identical payloads observed at the same instant yield
// identical directives.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a wall clock reading today in the given location.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{now: time.Now, loc: loc}
}

// FixedClock returns a clock frozen at the given instant, for tests.
func FixedClock(t time.Time) Clock {
	return Clock{now: func() time.Time { return t }, loc: t.Location()}
}

// Today returns the current calendar date in the clock's location,
// normalized to midnight UTC to match ParseDate.
func (c Clock) Today() time.Time {
	t := c.now().In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
