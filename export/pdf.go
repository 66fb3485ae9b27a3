// Package export renders an itinerary for sharing: a printable PDF
// summary and a signed QR code pointing at the trip.
package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"roteiro/models"
)

// TripPDF renders the itinerary day by day with its expenses and the
// running total.
func TripPDF(it *models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	title := it.Title
	if title == "" {
		title = "Minha Viagem"
	}
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	var total float64
	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 12)
		header := fmt.Sprintf("%s (%s)", day.Date, day.Weekday)
		if day.Location != "" {
			header += " - " + day.Location
		}
		pdf.CellFormat(0, 8, header, "B", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, c := range models.Categories {
			for _, exp := range *day.Expenses.ByCategory(c) {
				total += exp.Value
				pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s  R$ %.2f",
					models.CategoryLabels[c], expenseSummary(exp), exp.Value),
					"", 1, "L", false, 0, "")
			}
		}
		pdf.Ln(3)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: R$ %.2f", total), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func expenseSummary(exp models.Expense) string {
	switch exp.Category {
	case models.CategoryLodging:
		return fmt.Sprintf("%s (%s)", exp.Name, exp.Type)
	case models.CategoryTransport:
		return fmt.Sprintf("%s: %s -> %s", exp.Type, exp.Departure, exp.Destination)
	case models.CategoryFood:
		return exp.Name
	case models.CategoryActivity:
		return fmt.Sprintf("%s - %s", exp.Type, exp.Name)
	case models.CategoryShopping:
		return exp.Store
	}
	return ""
}
