package times

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	YearMonthDayLayout = "2006-01-02"
)

// CurrentDay returns the calendar day of now in now's own location.
func CurrentDay(now time.Time) civil.Date {
	return civil.DateOf(now)
}

// PreviousDay returns the calendar day before the one now falls on.
func PreviousDay(now time.Time) civil.Date {
	return CurrentDay(now).AddDays(-1)
}

// FormatDay renders d as YYYY-MM-DD.
func FormatDay(d civil.Date) string {
	return d.In(time.UTC).Format(YearMonthDayLayout)
}

// ParseDay parses a YYYY-MM-DD string into a calendar day.
func ParseDay(s string) (civil.Date, error) {
	t, err := time.Parse(YearMonthDayLayout, s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid day %q: %w", s, err)
	}

	return civil.DateOf(t), nil
}
