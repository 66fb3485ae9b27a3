package persist

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roteiro/models"
	"roteiro/utils"
)

// MongoGateway keeps one document per itinerary in a collection, scoped
// to the owning user.
type MongoGateway struct {
	col *mongo.Collection
}

func NewMongoGateway(col *mongo.Collection) *MongoGateway {
	return &MongoGateway{col: col}
}

func (g *MongoGateway) Save(ctx context.Context, it *models.Itinerary) (string, error) {
	if it.UserID == "" {
		return "", ErrUnauthenticated
	}

	it.LastUpdated = time.Now()

	if it.ItineraryID == "" {
		it.ItineraryID = utils.GetUUID()
		if _, err := g.col.InsertOne(ctx, it); err != nil {
			return "", fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return it.ItineraryID, nil
	}

	filter := bson.M{"itineraryid": it.ItineraryID, "user_id": it.UserID}
	update := bson.M{"$set": bson.M{
		"title":        it.Title,
		"days":         it.Days,
		"last_updated": it.LastUpdated,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := g.col.UpdateOne(ctx, filter, update, opts); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return it.ItineraryID, nil
}

func (g *MongoGateway) Load(ctx context.Context, userID, itineraryID string) (*models.Itinerary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	filter := bson.M{
		"itineraryid": itineraryID,
		"user_id":     userID,
		"deleted":     bson.M{"$ne": true},
	}
	var it models.Itinerary
	if err := g.col.FindOne(ctx, filter).Decode(&it); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	it.Normalize()
	return &it, nil
}

// LoadShared loads an itinerary regardless of owner; callers gate
// access with a verified share payload.
func (g *MongoGateway) LoadShared(ctx context.Context, itineraryID string) (*models.Itinerary, error) {
	filter := bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}
	var it models.Itinerary
	if err := g.col.FindOne(ctx, filter).Decode(&it); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	it.Normalize()
	return &it, nil
}

// LoadLatest returns the user's most recently updated itinerary, the one
// the app opens with.
func (g *MongoGateway) LoadLatest(ctx context.Context, userID string) (*models.Itinerary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	opts := options.FindOne().SetSort(bson.D{{Key: "last_updated", Value: -1}})
	var it models.Itinerary
	if err := g.col.FindOne(ctx, filter, opts).Decode(&it); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	it.Normalize()
	return &it, nil
}

// List returns every live itinerary of the user, newest first.
func (g *MongoGateway) List(ctx context.Context, userID string) ([]models.Itinerary, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	opts := options.Find().SetSort(bson.D{{Key: "last_updated", Value: -1}})
	cursor, err := g.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var trips []models.Itinerary
	for cursor.Next(ctx) {
		var it models.Itinerary
		if err := cursor.Decode(&it); err == nil {
			it.Normalize()
			trips = append(trips, it)
		}
	}
	if trips == nil {
		trips = []models.Itinerary{}
	}
	return trips, nil
}

// Delete soft-deletes; the document stays but stops loading.
func (g *MongoGateway) Delete(ctx context.Context, userID, itineraryID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	filter := bson.M{"itineraryid": itineraryID, "user_id": userID}
	update := bson.M{"$set": bson.M{"deleted": true}}
	res, err := g.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
