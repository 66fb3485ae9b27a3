package models

import "time"

// Itinerary is the travel itinerary document, one per trip.
type Itinerary struct {
	ItineraryID string    `json:"itineraryid" bson:"itineraryid,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Title       string    `json:"title" bson:"title"`
	Days        []Day     `json:"days" bson:"days"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
	Deleted     bool      `json:"-" bson:"deleted,omitempty"` // Internal use only
}

// Day is one calendar-date slot of the itinerary. Date and Weekday are
// positional: day i is always start date + i, no matter how the day's
// content gets reordered.
type Day struct {
	Date     string     `json:"date" bson:"date"` // DD/MM/YYYY
	Weekday  string     `json:"weekday" bson:"weekday"`
	Location string     `json:"location" bson:"location"`
	Expenses ExpenseSet `json:"expenses" bson:"expenses"`
}

// ExpenseSet keeps one ordered list per category. Being a struct rather
// than a map guarantees every category key survives a round trip through
// JSON and BSON even when empty.
type ExpenseSet struct {
	Lodging   []Expense `json:"lodging" bson:"lodging"`
	Transport []Expense `json:"transport" bson:"transport"`
	Food      []Expense `json:"food" bson:"food"`
	Activity  []Expense `json:"activity" bson:"activity"`
	Shopping  []Expense `json:"shopping" bson:"shopping"`
}

// Expense is a single costed line item. Which optional fields are
// populated depends on the category schema (see trip package).
type Expense struct {
	ID       int64    `json:"id" bson:"id"`
	Category Category `json:"category" bson:"category"`
	Value    float64  `json:"value" bson:"value"`

	Type        string `json:"type,omitempty" bson:"type,omitempty"`
	CheckIn     string `json:"checkIn,omitempty" bson:"checkin,omitempty"`
	CheckOut    string `json:"checkOut,omitempty" bson:"checkout,omitempty"`
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Store       string `json:"store,omitempty" bson:"store,omitempty"`
	Departure   string `json:"departure,omitempty" bson:"departure,omitempty"`
	Destination string `json:"destination,omitempty" bson:"destination,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
	Items       string `json:"items,omitempty" bson:"items,omitempty"`
}

// ExpenseInput carries the raw form fields of an expense dialog. Value
// arrives as text and is coerced by the store (0 when unparsable).
type ExpenseInput struct {
	Value       string `json:"value"`
	Type        string `json:"type"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Name        string `json:"name"`
	Store       string `json:"store"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Address     string `json:"address"`
	Link        string `json:"link"`
	Items       string `json:"items"`
}

// TripExport is the serialized itinerary record used for file
// export/import. Round trips must be lossless.
type TripExport struct {
	Title       string    `json:"title"`
	Days        []Day     `json:"days"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewExpenseSet returns a set with all five categories present and empty.
func NewExpenseSet() ExpenseSet {
	return ExpenseSet{
		Lodging:   []Expense{},
		Transport: []Expense{},
		Food:      []Expense{},
		Activity:  []Expense{},
		Shopping:  []Expense{},
	}
}

// ByCategory returns the list for a category, or nil for an unknown one.
func (s *ExpenseSet) ByCategory(c Category) *[]Expense {
	switch c {
	case CategoryLodging:
		return &s.Lodging
	case CategoryTransport:
		return &s.Transport
	case CategoryFood:
		return &s.Food
	case CategoryActivity:
		return &s.Activity
	case CategoryShopping:
		return &s.Shopping
	}
	return nil
}

// Normalize replaces nil lists with empty ones. Documents decoded from
// Mongo or imported from files may carry nil slices.
func (s *ExpenseSet) Normalize() {
	if s.Lodging == nil {
		s.Lodging = []Expense{}
	}
	if s.Transport == nil {
		s.Transport = []Expense{}
	}
	if s.Food == nil {
		s.Food = []Expense{}
	}
	if s.Activity == nil {
		s.Activity = []Expense{}
	}
	if s.Shopping == nil {
		s.Shopping = []Expense{}
	}
}

// Total sums the value of every expense in the set.
func (s *ExpenseSet) Total() float64 {
	var total float64
	for _, c := range Categories {
		for _, e := range *s.ByCategory(c) {
			total += e.Value
		}
	}
	return total
}

// Normalize repairs nil slices across the whole itinerary.
func (it *Itinerary) Normalize() {
	if it.Days == nil {
		it.Days = []Day{}
	}
	for i := range it.Days {
		it.Days[i].Expenses.Normalize()
	}
}

// Clone returns a deep copy, safe to hand to the autosaver while the
// original keeps being edited.
func (it *Itinerary) Clone() *Itinerary {
	out := *it
	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		nd := d
		nd.Expenses = ExpenseSet{
			Lodging:   append([]Expense{}, d.Expenses.Lodging...),
			Transport: append([]Expense{}, d.Expenses.Transport...),
			Food:      append([]Expense{}, d.Expenses.Food...),
			Activity:  append([]Expense{}, d.Expenses.Activity...),
			Shopping:  append([]Expense{}, d.Expenses.Shopping...),
		}
		out.Days[i] = nd
	}
	return &out
}

// Export strips the storage identifiers, leaving the portable record.
func (it *Itinerary) Export() TripExport {
	return TripExport{
		Title:       it.Title,
		Days:        it.Days,
		LastUpdated: it.LastUpdated,
	}
}
