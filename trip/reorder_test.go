package trip

import (
	"errors"
	"strconv"
	"testing"

	"roteiro/models"
)

// seeds a 5-day trip whose day i has location Li and one food expense
// worth i*10, so content can be tracked through a reorder.
func newReorderStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t, 5)
	locations := []string{"L0", "L1", "L2", "L3", "L4"}
	for i, loc := range locations {
		if err := s.SetLocation(i, loc); err != nil {
			t.Fatal(err)
		}
		if i > 0 {
			if _, err := s.AddExpense(i, models.CategoryFood, models.ExpenseInput{Value: strconv.Itoa(i * 10)}); err != nil {
				t.Fatal(err)
			}
		}
	}
	return s
}

func snapshotDates(s *Store) []string {
	var dates []string
	for _, d := range s.Itinerary().Days {
		dates = append(dates, d.Date+" "+d.Weekday)
	}
	return dates
}

func TestReorderListMove(t *testing.T) {
	s := newReorderStore(t)
	before := snapshotDates(s)

	// Drag day 1 to position 3: content of days 2 and 3 shifts up by one.
	if err := s.Reorder(1, 3); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	wantLocations := []string{"L0", "L2", "L3", "L1", "L4"}
	for i, want := range wantLocations {
		if got := s.Itinerary().Days[i].Location; got != want {
			t.Errorf("day %d location = %q, want %q", i, got, want)
		}
	}

	// Dates and weekdays never move.
	after := snapshotDates(s)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("day %d date changed: %q -> %q", i, before[i], after[i])
		}
	}

	// The dragged day's expenses travelled with it.
	if len(s.Itinerary().Days[3].Expenses.Food) != 1 {
		t.Error("dragged day's expenses did not move to the new index")
	}
	if got := s.Itinerary().Days[3].Expenses.Food[0].Value; got != 10 {
		t.Errorf("day 3 food value = %v, want 10", got)
	}
}

func TestReorderBackward(t *testing.T) {
	s := newReorderStore(t)
	if err := s.Reorder(4, 1); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	wantLocations := []string{"L0", "L4", "L1", "L2", "L3"}
	for i, want := range wantLocations {
		if got := s.Itinerary().Days[i].Location; got != want {
			t.Errorf("day %d location = %q, want %q", i, got, want)
		}
	}
}

func TestReorderSameIndexIsNoop(t *testing.T) {
	s := newReorderStore(t)
	if err := s.Reorder(2, 2); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	for i, want := range []string{"L0", "L1", "L2", "L3", "L4"} {
		if got := s.Itinerary().Days[i].Location; got != want {
			t.Errorf("day %d location = %q, want %q", i, got, want)
		}
	}
}

func TestReorderRoundTripRestoresContent(t *testing.T) {
	s := newReorderStore(t)
	if err := s.Reorder(1, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.Reorder(3, 1); err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"L0", "L1", "L2", "L3", "L4"} {
		if got := s.Itinerary().Days[i].Location; got != want {
			t.Errorf("day %d location = %q, want %q", i, got, want)
		}
	}
}

func TestReorderIndexOutOfRange(t *testing.T) {
	s := newReorderStore(t)
	cases := [][2]int{{-1, 2}, {2, -1}, {5, 0}, {0, 5}}
	for _, c := range cases {
		if err := s.Reorder(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Reorder(%d, %d): expected ErrIndexOutOfRange, got %v", c[0], c[1], err)
		}
	}
	// State untouched after rejected calls.
	for i, want := range []string{"L0", "L1", "L2", "L3", "L4"} {
		if got := s.Itinerary().Days[i].Location; got != want {
			t.Errorf("day %d location = %q after rejected reorder, want %q", i, got, want)
		}
	}
}
