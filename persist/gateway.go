// Package persist saves and loads itineraries. The Gateway interface is
// the persistence boundary: one implementation backs onto a Mongo
// collection (one document per itinerary per user), the other onto a
// fixed-name JSON file for local export/import. The Autosaver adds the
// debounced write-behind used for automatic saves.
package persist

import (
	"context"
	"errors"

	"roteiro/models"
)

var (
	ErrNotFound        = errors.New("persist: itinerary not found")
	ErrUnauthenticated = errors.New("persist: no user identity")
	ErrPersistence     = errors.New("persist: store rejected the write")
)

// Gateway stores one itinerary per call. Save assigns an id when the
// itinerary has none and returns it; later saves with the same id
// overwrite unconditionally (last write wins, no staleness check).
type Gateway interface {
	Save(ctx context.Context, it *models.Itinerary) (string, error)
	Load(ctx context.Context, userID, itineraryID string) (*models.Itinerary, error)
}
