package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roteiro/trip"
	"roteiro/utils"
)

// POST /api/trips/all/:id/days
func AddDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	st := trip.Load(it)
	day, err := st.AddDay()
	if err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusCreated, day)
}

// DELETE /api/trips/all/:id/days
func RemoveDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	st := trip.Load(it)
	if err := st.RemoveDay(); err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// PUT /api/trips/all/:id/days/:index/location
func SetLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	dayIndex, err := indexParam(ps, "index")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}

	var input struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	st := trip.Load(it)
	if err := st.SetLocation(dayIndex, input.Location); err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusOK, it.Days[dayIndex])
}

// PUT /api/trips/all/:id/reorder
//
// Drag-end of a day row: moves the day's content to the new index while
// the calendar stays fixed.
func ReorderDays(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	var input struct {
		OldIndex int `json:"old_index"`
		NewIndex int `json:"new_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	st := trip.Load(it)
	if err := st.Reorder(input.OldIndex, input.NewIndex); err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusOK, it)
}
