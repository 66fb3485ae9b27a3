// Package dateseq generates and formats the calendar-date sequence that
// backs an itinerary. All arithmetic is local-calendar: adding a day means
// the next calendar date, never a 24h shift across a DST boundary.
package dateseq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("dateseq: invalid input")

// GenerateDates returns count consecutive dates starting at start,
// inclusive, each normalized to local midnight.
func GenerateDates(start time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", ErrInvalidInput, count)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: zero start date", ErrInvalidInput)
	}
	base := midnight(start)
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		dates[i] = base.AddDate(0, 0, i)
	}
	return dates, nil
}

// FormatDate renders a date as zero-padded DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// ParseDate is the inverse of FormatDate. It rejects strings with the
// wrong segment count and calendar-impossible dates like 31/02/2025.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: expected DD/MM/YYYY, got %q", ErrInvalidInput, s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad day in %q", ErrInvalidInput, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad month in %q", ErrInvalidInput, s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad year in %q", ErrInvalidInput, s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (Feb 31 -> Mar 3), so re-check.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("%w: no such date %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ParseISO reads the YYYY-MM-DD value of the start-date form input.
func ParseISO(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidInput, s)
	}
	return t, nil
}

var weekdayShort = map[time.Weekday]string{
	time.Sunday:    "dom",
	time.Monday:    "seg",
	time.Tuesday:   "ter",
	time.Wednesday: "qua",
	time.Thursday:  "qui",
	time.Friday:    "sex",
	time.Saturday:  "sab",
}

// ShortWeekday maps a date to its three-letter pt-BR weekday token. An
// unrecognized weekday yields "???" instead of an error.
func ShortWeekday(t time.Time) string {
	if s, ok := weekdayShort[t.Weekday()]; ok {
		return s
	}
	return "???"
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
