package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roteiro/export"
	"roteiro/models"
	"roteiro/trip"
	"roteiro/utils"
)

// GET /api/trips/all/:id/export
//
// Download the serialized itinerary record. Importing the file back must
// reproduce the trip exactly.
func ExportTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	data, err := json.MarshalIndent(it.Export(), "", "  ")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to serialize itinerary")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=viagem.json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// POST /api/trips/import
func ImportTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var rec models.TripExport
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid itinerary file")
		return
	}
	if len(rec.Days) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Itinerary file has no days")
		return
	}

	it := &models.Itinerary{
		UserID:      userID,
		Title:       rec.Title,
		Days:        rec.Days,
		LastUpdated: rec.LastUpdated,
	}
	trip.Load(it) // repairs nil expense lists

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := saver.SaveNow(ctx, it); err != nil {
		writeTripError(w, err)
		return
	}
	invalidateLatest(userID)

	utils.RespondWithJSON(w, http.StatusCreated, it)
}

// GET /api/trips/all/:id/pdf
func PrintTripPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	data, err := export.TripPDF(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=viagem-"+itineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GET /api/trips/all/:id/qr
func TripQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// The trip must exist and belong to the caller before a share code
	// is handed out.
	if _, err := currentTrip(ctx, userID, itineraryID); err != nil {
		writeTripError(w, err)
		return
	}

	png, err := export.ShareQR(itineraryID, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
