// Package period handles the fixed-width date strings the ledger stores.
// Dates are YYYY-MM-DD and months are keyed by their first day, so ranges
// can be compared lexicographically in SQL.
package period

import (
	"strconv"
	"time"

	apperrors "pocketledger/internal/errors"
)

// DateLayout is the storage format of every ledger date.
const DateLayout = "2006-01-02"

const monthLayout = "2006-01"

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "invalid date "+strconv.Quote(s)+": expected YYYY-MM-DD")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "invalid date "+strconv.Quote(s)+": expected YYYY-MM-DD")
	}
	return t, nil
}

// ValidateDate returns nil when s is a well-formed YYYY-MM-DD date.
func ValidateDate(s string) error {
	_, err := ParseDate(s)
	return err
}

// Today returns the current local date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// MonthKey normalizes "YYYY-MM" or any "YYYY-MM-DD" to the first of that month.
func MonthKey(s string) (string, error) {
	t, err := parseMonth(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// CurrentMonth returns the month key for today.
func CurrentMonth() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// MonthRange returns the half-open [start, end) date range covering month.
func MonthRange(month string) (start, end string, err error) {
	t, err := parseMonth(month)
	if err != nil {
		return "", "", err
	}
	return t.Format(DateLayout), t.AddDate(0, 1, 0).Format(DateLayout), nil
}

func parseMonth(s string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	switch len(s) {
	case len(monthLayout):
		t, err = time.Parse(monthLayout, s)
	case len(DateLayout):
		t, err = time.Parse(DateLayout, s)
	default:
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidMonth, "invalid month "+strconv.Quote(s)+": expected YYYY-MM or YYYY-MM-DD")
	}
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidMonth, "invalid month "+strconv.Quote(s)+": expected YYYY-MM or YYYY-MM-DD")
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
