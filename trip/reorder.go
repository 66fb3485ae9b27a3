package trip

import (
	"fmt"

	"roteiro/models"
)

type dayContent struct {
	location string
	expenses models.ExpenseSet
}

// Reorder applies a drag of the day at oldIndex to newIndex with
// list-move semantics: the dragged day's content is pulled out and
// reinserted, shifting everything in between by one position. Only
// location and expenses travel; date and weekday belong to the slot and
// stay put, so the calendar keeps increasing by one day per index.
func (s *Store) Reorder(oldIndex, newIndex int) error {
	if s.it == nil || len(s.it.Days) == 0 {
		return ErrEmptyItinerary
	}
	n := len(s.it.Days)
	if oldIndex < 0 || oldIndex >= n {
		return fmt.Errorf("%w: old index %d of %d", ErrIndexOutOfRange, oldIndex, n)
	}
	if newIndex < 0 || newIndex >= n {
		return fmt.Errorf("%w: new index %d of %d", ErrIndexOutOfRange, newIndex, n)
	}
	if oldIndex == newIndex {
		return nil
	}

	contents := make([]dayContent, n)
	for i, d := range s.it.Days {
		contents[i] = dayContent{location: d.Location, expenses: d.Expenses}
	}

	moved := contents[oldIndex]
	contents = append(contents[:oldIndex], contents[oldIndex+1:]...)
	contents = append(contents[:newIndex], append([]dayContent{moved}, contents[newIndex:]...)...)

	for i := range s.it.Days {
		s.it.Days[i].Location = contents[i].location
		s.it.Days[i].Expenses = contents[i].expenses
	}
	s.touch()
	return nil
}
