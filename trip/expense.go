package trip

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"roteiro/models"
)

// Each category carries a fixed field schema. Fields outside a category's
// schema are dropped on write, so a food expense can never smuggle a
// check-in date into the document.
type fieldKey string

const (
	fieldType        fieldKey = "type"
	fieldCheckIn     fieldKey = "checkIn"
	fieldCheckOut    fieldKey = "checkOut"
	fieldName        fieldKey = "name"
	fieldStore       fieldKey = "store"
	fieldDeparture   fieldKey = "departure"
	fieldDestination fieldKey = "destination"
	fieldDate        fieldKey = "date"
	fieldTime        fieldKey = "time"
	fieldAddress     fieldKey = "address"
	fieldLink        fieldKey = "link"
	fieldItems       fieldKey = "items"
)

var categorySchema = map[models.Category][]fieldKey{
	models.CategoryLodging:   {fieldType, fieldCheckIn, fieldCheckOut, fieldName, fieldAddress, fieldLink},
	models.CategoryTransport: {fieldType, fieldDeparture, fieldDestination, fieldTime},
	models.CategoryFood:      {fieldName},
	models.CategoryActivity:  {fieldType, fieldName, fieldAddress, fieldDate, fieldTime},
	models.CategoryShopping:  {fieldStore, fieldItems, fieldAddress},
}

// AddExpense validates the category, assigns a fresh id, coerces the value
// and appends the record to that day's category list.
func (s *Store) AddExpense(dayIndex int, category models.Category, in models.ExpenseInput) (*models.Expense, error) {
	if err := s.checkDay(dayIndex); err != nil {
		return nil, err
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	exp := buildExpense(category, in)
	exp.ID = s.nextExpenseID()

	list := s.it.Days[dayIndex].Expenses.ByCategory(category)
	*list = append(*list, exp)
	s.touch()
	return &(*list)[len(*list)-1], nil
}

// UpdateExpense replaces the record at the position, keeping its id.
func (s *Store) UpdateExpense(dayIndex int, category models.Category, expenseIndex int, in models.ExpenseInput) (*models.Expense, error) {
	list, err := s.expenseList(dayIndex, category)
	if err != nil {
		return nil, err
	}
	if expenseIndex < 0 || expenseIndex >= len(*list) {
		return nil, fmt.Errorf("%w: expense %d of %d", ErrIndexOutOfRange, expenseIndex, len(*list))
	}

	exp := buildExpense(category, in)
	exp.ID = (*list)[expenseIndex].ID
	(*list)[expenseIndex] = exp
	s.touch()
	return &(*list)[expenseIndex], nil
}

// DeleteExpense removes the record at the position.
func (s *Store) DeleteExpense(dayIndex int, category models.Category, expenseIndex int) error {
	list, err := s.expenseList(dayIndex, category)
	if err != nil {
		return err
	}
	if expenseIndex < 0 || expenseIndex >= len(*list) {
		return fmt.Errorf("%w: expense %d of %d", ErrIndexOutOfRange, expenseIndex, len(*list))
	}
	*list = append((*list)[:expenseIndex], (*list)[expenseIndex+1:]...)
	s.touch()
	return nil
}

func (s *Store) expenseList(dayIndex int, category models.Category) (*[]models.Expense, error) {
	if err := s.checkDay(dayIndex); err != nil {
		return nil, err
	}
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	return s.it.Days[dayIndex].Expenses.ByCategory(category), nil
}

func buildExpense(category models.Category, in models.ExpenseInput) models.Expense {
	exp := models.Expense{
		Category: category,
		Value:    parseValue(in.Value),
	}
	for _, key := range categorySchema[category] {
		switch key {
		case fieldType:
			exp.Type = in.Type
		case fieldCheckIn:
			exp.CheckIn = in.CheckIn
		case fieldCheckOut:
			exp.CheckOut = in.CheckOut
		case fieldName:
			exp.Name = in.Name
		case fieldStore:
			exp.Store = in.Store
		case fieldDeparture:
			exp.Departure = in.Departure
		case fieldDestination:
			exp.Destination = in.Destination
		case fieldDate:
			exp.Date = in.Date
		case fieldTime:
			exp.Time = in.Time
		case fieldAddress:
			exp.Address = in.Address
		case fieldLink:
			exp.Link = in.Link
		case fieldItems:
			exp.Items = in.Items
		}
	}
	return exp
}

// parseValue coerces the monetary field. Unparsable, negative or
// non-finite input all collapse to 0.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
