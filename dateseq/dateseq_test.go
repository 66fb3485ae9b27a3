package dateseq

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateDates(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	dates, err := GenerateDates(start, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if !dates[0].Equal(start) {
		t.Errorf("expected first date %v, got %v", start, dates[0])
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			t.Errorf("dates[%d]=%v is not one day after dates[%d]=%v", i, dates[i], i-1, dates[i-1])
		}
	}
}

func TestGenerateDatesCrossesMonthAndYear(t *testing.T) {
	start := time.Date(2024, 12, 30, 0, 0, 0, 0, time.Local)
	dates, err := GenerateDates(start, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"30/12/2024", "31/12/2024", "01/01/2025", "02/01/2025"}
	for i, w := range want {
		if got := FormatDate(dates[i]); got != w {
			t.Errorf("dates[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestGenerateDatesInvalidInput(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	if _, err := GenerateDates(start, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("count=0: expected ErrInvalidInput, got %v", err)
	}
	if _, err := GenerateDates(start, -3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("count=-3: expected ErrInvalidInput, got %v", err)
	}
	if _, err := GenerateDates(time.Time{}, 5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero start: expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), // leap day
		time.Date(1999, 7, 4, 0, 0, 0, 0, time.Local),
	}
	for _, d := range cases {
		got, err := ParseDate(FormatDate(d))
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", FormatDate(d), err)
		}
		if !got.Equal(d) {
			t.Errorf("round trip of %v gave %v", d, got)
		}
	}
}

func TestFormatDatePadding(t *testing.T) {
	d := time.Date(2025, 3, 7, 0, 0, 0, 0, time.Local)
	if got := FormatDate(d); got != "07/03/2025" {
		t.Errorf("FormatDate = %q, want 07/03/2025", got)
	}
}

func TestParseDateMalformed(t *testing.T) {
	cases := []string{
		"",
		"01/01",
		"01/01/2025/99",
		"ab/cd/efgh",
		"32/01/2025",
		"31/02/2025",
		"01/13/2025",
	}
	for _, s := range cases {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseDate(%q): expected ErrInvalidInput, got %v", s, err)
		}
	}
}

func TestShortWeekday(t *testing.T) {
	// 2025-01-05 is a Sunday.
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
	want := []string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}
	for i, w := range want {
		d := sunday.AddDate(0, 0, i)
		if got := ShortWeekday(d); got != w {
			t.Errorf("ShortWeekday(%s) = %q, want %q", FormatDate(d), got, w)
		}
	}
}
