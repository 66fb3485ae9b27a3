package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"roteiro/export"
	"roteiro/rdx"
	"roteiro/trip"
	"roteiro/utils"
)

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trips, err := gateway.List(ctx, userID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/latest
//
// Returns the most recently updated itinerary, which is the one the app
// opens with. Served from redis when a fresh copy is cached.
func GetLatestTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, _ := rdx.RdxGet(latestCacheKey(userID)); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	it, err := gateway.LoadLatest(ctx, userID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	if data, err := json.Marshal(it); err == nil {
		if err := rdx.RdxSetTTL(latestCacheKey(userID), string(data), 5*time.Minute); err != nil {
			log.Printf("Redis cache set failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/trips/all/:id
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/trips/all/:id/total
func GetTripTotal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	total := trip.Load(it).TotalExpenses()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total":   total,
		"display": fmt.Sprintf("Total: R$ %.2f", total),
	})
}

// GET /api/trips/shared/:payload
//
// Read-only view of a trip reached through a share QR code; the signed
// payload is the capability. Auth is optional: the owner following their
// own link gets the full document instead of the stripped export record.
func GetSharedTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID, ok := export.VerifySharePayload(ps.ByName("payload"))
	if !ok {
		utils.RespondWithError(w, http.StatusForbidden, "Invalid share link")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := gateway.LoadShared(ctx, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	if userID := utils.GetUserIDFromRequest(r); userID != "" && userID == it.UserID {
		utils.RespondWithJSON(w, http.StatusOK, it)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, it.Export())
}
