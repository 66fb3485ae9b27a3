package export

import (
	"bytes"
	"testing"
	"time"

	"roteiro/models"
)

func testItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "trip1",
		Title:       "Chapada dos Veadeiros",
		LastUpdated: time.Now(),
		Days: []models.Day{
			{
				Date:     "15/03/2025",
				Weekday:  "sab",
				Location: "Alto Paraiso",
				Expenses: models.ExpenseSet{
					Lodging: []models.Expense{{
						ID: 1, Category: models.CategoryLodging, Value: 300,
						Name: "Camping Santana", Type: "Camping",
					}},
					Transport: []models.Expense{},
					Food:      []models.Expense{{ID: 2, Category: models.CategoryFood, Value: 60, Name: "Restaurante da Vila"}},
					Activity:  []models.Expense{},
					Shopping:  []models.Expense{},
				},
			},
		},
	}
}

func TestTripPDF(t *testing.T) {
	data, err := TripPDF(testItinerary())
	if err != nil {
		t.Fatalf("TripPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestSharePayloadRoundTrip(t *testing.T) {
	payload := SharePayload("trip1")

	id, ok := VerifySharePayload(payload)
	if !ok {
		t.Fatal("valid payload rejected")
	}
	if id != "trip1" {
		t.Errorf("verified id = %q, want trip1", id)
	}
}

func TestVerifySharePayloadTampered(t *testing.T) {
	payload := SharePayload("trip1")
	tampered := "trip2" + payload[len("trip1"):]
	if _, ok := VerifySharePayload(tampered); ok {
		t.Error("tampered payload accepted")
	}
	if _, ok := VerifySharePayload("garbage"); ok {
		t.Error("garbage payload accepted")
	}
}

func TestShareQR(t *testing.T) {
	png, err := ShareQR("trip1", 128)
	if err != nil {
		t.Fatalf("ShareQR: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output does not look like a PNG")
	}
}
