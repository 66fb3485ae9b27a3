// Package trip holds the in-memory itinerary store. All mutations of a
// trip's days and expenses go through a Store; the HTTP layer and the
// persistence gateway never touch the document structure directly.
package trip

import (
	"errors"
	"fmt"
	"time"

	"roteiro/dateseq"
	"roteiro/models"
)

var (
	ErrInvalidInput    = errors.New("trip: invalid input")
	ErrInvalidCategory = errors.New("trip: invalid expense category")
	ErrIndexOutOfRange = errors.New("trip: index out of range")
	ErrEmptyItinerary  = errors.New("trip: itinerary has no days")
	ErrMinimumDays     = errors.New("trip: itinerary must keep at least one day")
)

// Store owns a single itinerary instance. It is not safe for concurrent
// use; callers serialize access (one writer per trip).
type Store struct {
	it            *models.Itinerary
	lastExpenseID int64
}

// New creates an empty store. Create or Load must run before any other
// operation.
func New() *Store {
	return &Store{}
}

// Load adopts an existing itinerary (from Mongo or an import), repairs
// nil slices and seeds the expense-id watermark so fresh ids stay unique.
func Load(it *models.Itinerary) *Store {
	it.Normalize()
	s := &Store{it: it}
	for i := range it.Days {
		for _, c := range models.Categories {
			for _, e := range *it.Days[i].Expenses.ByCategory(c) {
				if e.ID > s.lastExpenseID {
					s.lastExpenseID = e.ID
				}
			}
		}
	}
	return s
}

// Itinerary exposes the owned instance.
func (s *Store) Itinerary() *models.Itinerary {
	return s.it
}

// Create replaces the current itinerary with a fresh one: dayCount days
// starting at start, empty locations, all expense categories present and
// empty. This is a full reset, nothing from the prior trip survives.
func (s *Store) Create(start time.Time, dayCount int, title string) (*models.Itinerary, error) {
	dates, err := dateseq.GenerateDates(start, dayCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	days := make([]models.Day, len(dates))
	for i, d := range dates {
		days[i] = models.Day{
			Date:     dateseq.FormatDate(d),
			Weekday:  dateseq.ShortWeekday(d),
			Location: "",
			Expenses: models.NewExpenseSet(),
		}
	}

	s.it = &models.Itinerary{
		Title:       title,
		Days:        days,
		LastUpdated: time.Now(),
	}
	s.lastExpenseID = 0
	return s.it, nil
}

// AddDay appends one day dated a calendar day after the current last one.
func (s *Store) AddDay() (*models.Day, error) {
	if s.it == nil || len(s.it.Days) == 0 {
		return nil, ErrEmptyItinerary
	}
	last := s.it.Days[len(s.it.Days)-1]
	lastDate, err := dateseq.ParseDate(last.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt last day date %q", ErrInvalidInput, last.Date)
	}
	next := lastDate.AddDate(0, 0, 1)
	day := models.Day{
		Date:     dateseq.FormatDate(next),
		Weekday:  dateseq.ShortWeekday(next),
		Location: "",
		Expenses: models.NewExpenseSet(),
	}
	s.it.Days = append(s.it.Days, day)
	s.touch()
	return &s.it.Days[len(s.it.Days)-1], nil
}

// RemoveDay drops the last day. A one-day itinerary stays as it is.
func (s *Store) RemoveDay() error {
	if s.it == nil || len(s.it.Days) == 0 {
		return ErrEmptyItinerary
	}
	if len(s.it.Days) == 1 {
		return ErrMinimumDays
	}
	s.it.Days = s.it.Days[:len(s.it.Days)-1]
	s.touch()
	return nil
}

func (s *Store) SetLocation(dayIndex int, text string) error {
	if err := s.checkDay(dayIndex); err != nil {
		return err
	}
	s.it.Days[dayIndex].Location = text
	s.touch()
	return nil
}

func (s *Store) SetTitle(title string) error {
	if s.it == nil {
		return ErrEmptyItinerary
	}
	s.it.Title = title
	s.touch()
	return nil
}

// TotalExpenses sums every expense value across all days and categories.
func (s *Store) TotalExpenses() float64 {
	if s.it == nil {
		return 0
	}
	var total float64
	for i := range s.it.Days {
		total += s.it.Days[i].Expenses.Total()
	}
	return total
}

func (s *Store) checkDay(dayIndex int) error {
	if s.it == nil || len(s.it.Days) == 0 {
		return ErrEmptyItinerary
	}
	if dayIndex < 0 || dayIndex >= len(s.it.Days) {
		return fmt.Errorf("%w: day %d of %d", ErrIndexOutOfRange, dayIndex, len(s.it.Days))
	}
	return nil
}

func (s *Store) touch() {
	s.it.LastUpdated = time.Now()
}

// nextExpenseID hands out creation-timestamp ids in milliseconds. Two
// expenses created inside the same millisecond still get distinct,
// increasing ids.
func (s *Store) nextExpenseID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastExpenseID {
		id = s.lastExpenseID + 1
	}
	s.lastExpenseID = id
	return id
}
