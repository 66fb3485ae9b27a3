package models

// Category tags one of the five expense kinds.
type Category string

const (
	CategoryLodging   Category = "lodging"
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryActivity  Category = "activity"
	CategoryShopping  Category = "shopping"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryLodging,
	CategoryTransport,
	CategoryFood,
	CategoryActivity,
	CategoryShopping,
}

func ValidCategory(c Category) bool {
	switch c {
	case CategoryLodging, CategoryTransport, CategoryFood, CategoryActivity, CategoryShopping:
		return true
	}
	return false
}

// CategoryLabels maps categories to the uppercase labels shown on expense
// cards and in the PDF export.
var CategoryLabels = map[Category]string{
	CategoryLodging:   "HOSPEDAGEM",
	CategoryTransport: "TRANSPORTE",
	CategoryFood:      "ALIMENTACAO",
	CategoryActivity:  "ATIVIDADE",
	CategoryShopping:  "COMPRAS",
}
