package scheduling

import (
	"time"

	"remessa/internal/errors"
)

// DaysBetween returns the whole calendar-day distance from the
// scheduling date to the transfer date. Both timestamps are truncated
// to their UTC calendar date first, so time-of-day never affects the
// distance: a transfer later the same day is 0 days away and a
// transfer any time yesterday is -1.
func DaysBetween(schedulingDate, transferDate time.Time) int64 {
	from := dateOnly(schedulingDate)
	to := dateOnly(transferDate)
	return int64(to.Sub(from).Hours() / 24)
}

// ValidateDateRange enforces the scheduling window: the transfer date
// must not precede the scheduling date and the distance must not
// exceed maxDays. The limit comes from deployment configuration,
// never from a compiled-in constant.
func ValidateDateRange(days, maxDays int64) error {
	if days < 0 {
		return errors.ErrInvalidDateRange
	}
	if days > maxDays {
		return errors.ErrInvalidDateRange
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
