// Package itinerary exposes the trip planner over HTTP. Handlers load
// the owning user's itinerary, apply one store operation and hand the
// result to the autosaver: routine edits ride the 500ms debounce, while
// create/title/save/import write through immediately.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"roteiro/dateseq"
	"roteiro/db"
	"roteiro/models"
	"roteiro/persist"
	"roteiro/rdx"
	"roteiro/trip"
	"roteiro/utils"
)

var (
	gateway *persist.MongoGateway
	saver   *persist.Autosaver
)

func init() {
	gateway = persist.NewMongoGateway(db.TripsCollection)
	saver = persist.NewAutosaver(gateway, persist.DefaultDelay)
}

// FlushSaves writes any pending autosaves; called on server shutdown.
func FlushSaves() {
	saver.Flush()
}

// currentTrip prefers the autosaver's pending snapshot over the stored
// document, so reads right after a debounced edit are not stale.
func currentTrip(ctx context.Context, userID, itineraryID string) (*models.Itinerary, error) {
	if snap, ok := saver.Pending(itineraryID); ok {
		if snap.UserID != userID {
			return nil, persist.ErrNotFound
		}
		return snap, nil
	}
	return gateway.Load(ctx, userID, itineraryID)
}

func scheduleSave(it *models.Itinerary) {
	saver.Schedule(it)
	invalidateLatest(it.UserID)
}

func latestCacheKey(userID string) string {
	return "trip:latest:" + userID
}

func invalidateLatest(userID string) {
	if err := rdx.RdxDel(latestCacheKey(userID)); err != nil {
		log.Printf("Redis cache invalidate failed: %v", err)
	}
}

func writeTripError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trip.ErrInvalidInput),
		errors.Is(err, trip.ErrInvalidCategory),
		errors.Is(err, trip.ErrIndexOutOfRange):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrEmptyItinerary),
		errors.Is(err, trip.ErrMinimumDays):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, persist.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, persist.ErrUnauthenticated):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal error")
	}
}

func indexParam(ps httprouter.Params, name string) (int, error) {
	return strconv.Atoi(ps.ByName(name))
}

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Title     string `json:"title"`
		StartDate string `json:"start_date"` // YYYY-MM-DD
		DaysCount int    `json:"days_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	st := trip.New()
	it, err := createFromInput(st, input.StartDate, input.DaysCount, input.Title)
	if err != nil {
		writeTripError(w, err)
		return
	}
	it.UserID = userID

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Creating a trip is a manual save, no debounce.
	if _, err := saver.SaveNow(ctx, it); err != nil {
		writeTripError(w, err)
		return
	}
	invalidateLatest(userID)

	utils.RespondWithJSON(w, http.StatusCreated, it)
}

// PUT /api/trips/all/:id/title
func UpdateTitle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	var input struct {
		Title string `json:"title"`
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
	if err := st.SetTitle(input.Title); err != nil {
		writeTripError(w, err)
		return
	}

	// Title edits save immediately, like the original's explicit save.
	if _, err := saver.SaveNow(ctx, it); err != nil {
		writeTripError(w, err)
		return
	}
	invalidateLatest(userID)

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// POST /api/trips/all/:id/save
func SaveTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := currentTrip(ctx, userID, itineraryID)
	if err != nil {
		writeTripError(w, err)
		return
	}

	if _, err := saver.SaveNow(ctx, it); err != nil {
		writeTripError(w, err)
		return
	}
	invalidateLatest(userID)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Itinerary saved"})
}

// DELETE /api/trips/all/:id
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := gateway.Delete(ctx, userID, itineraryID); err != nil {
		writeTripError(w, err)
		return
	}
	invalidateLatest(userID)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Itinerary deleted"})
}

func createFromInput(st *trip.Store, startDate string, daysCount int, title string) (*models.Itinerary, error) {
	start, err := parseStartDate(startDate)
	if err != nil {
		return nil, err
	}
	return st.Create(start, daysCount, title)
}

func parseStartDate(s string) (time.Time, error) {
	start, err := dateseq.ParseISO(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", trip.ErrInvalidInput, err)
	}
	return start, nil
}
