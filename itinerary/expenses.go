package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roteiro/models"
	"roteiro/trip"
	"roteiro/utils"
)

// POST /api/trips/all/:id/days/:index/expenses/:category
func AddExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")
	category := models.Category(ps.ByName("category"))

	dayIndex, err := indexParam(ps, "index")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}

	var input models.ExpenseInput
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
	exp, err := st.AddExpense(dayIndex, category, input)
	if err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusCreated, exp)
}

// PUT /api/trips/all/:id/days/:index/expenses/:category/:eidx
func UpdateExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")
	category := models.Category(ps.ByName("category"))

	dayIndex, err := indexParam(ps, "index")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	expenseIndex, err := indexParam(ps, "eidx")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expense index")
		return
	}

	var input models.ExpenseInput
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
	exp, err := st.UpdateExpense(dayIndex, category, expenseIndex, input)
	if err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusOK, exp)
}

// DELETE /api/trips/all/:id/days/:index/expenses/:category/:eidx
func DeleteExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")
	category := models.Category(ps.ByName("category"))

	dayIndex, err := indexParam(ps, "index")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day index")
		return
	}
	expenseIndex, err := indexParam(ps, "eidx")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expense index")
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
	if err := st.DeleteExpense(dayIndex, category, expenseIndex); err != nil {
		writeTripError(w, err)
		return
	}
	scheduleSave(it)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
