package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roteiro/models"
)

// SavedTripFile is the fixed name the local store writes under, the
// file-system analog of the browser's localStorage key.
const SavedTripFile = "saved_trip.json"

// LocalID is the id a FileGateway save reports; the local store holds
// exactly one itinerary.
const LocalID = "local"

// FileGateway persists the serialized itinerary record to a single JSON
// file under dir. Export and import must round-trip losslessly.
type FileGateway struct {
	dir string
}

func NewFileGateway(dir string) *FileGateway {
	return &FileGateway{dir: dir}
}

func (g *FileGateway) path() string {
	return filepath.Join(g.dir, SavedTripFile)
}

func (g *FileGateway) Save(_ context.Context, it *models.Itinerary) (string, error) {
	data, err := json.MarshalIndent(it.Export(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(g.path(), data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return LocalID, nil
}

func (g *FileGateway) Load(_ context.Context, _, _ string) (*models.Itinerary, error) {
	data, err := os.ReadFile(g.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	var rec models.TripExport
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	it := &models.Itinerary{
		ItineraryID: LocalID,
		Title:       rec.Title,
		Days:        rec.Days,
		LastUpdated: rec.LastUpdated,
	}
	it.Normalize()
	return it, nil
}
