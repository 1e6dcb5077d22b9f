package roomRepo

import (
	"context"
	"fmt"
	"time"

	"roomnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo(db *mongo.Database) RoomRepository {
	repo := &MongoRoomRepo{coll: db.Collection("rooms")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// priceFilter builds the find filter for an inclusive price range. Either
// bound may be nil.
func priceFilter(minPrice, maxPrice *float64) bson.M {
	price := bson.M{}
	if minPrice != nil {
		price["$gte"] = *minPrice
	}
	if maxPrice != nil {
		price["$lte"] = *maxPrice
	}
	if len(price) == 0 {
		return bson.M{}
	}
	return bson.M{"price": price}
}

// GetAll retrieves rooms, optionally filtered to an inclusive price range.
func (r *MongoRoomRepo) GetAll(minPrice, maxPrice *float64) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, priceFilter(minPrice, maxPrice))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}
	return rooms, nil
}

// GetByID retrieves a room by its unique ID. Returns nil when no room matches.
func (r *MongoRoomRepo) GetByID(id primitive.ObjectID) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id.Hex(), err)
	}
	return &room, nil
}

// SetAvailability sets the availability flag on a room. A filter that matches
// no document is deliberately not an error.
func (r *MongoRoomRepo) SetAvailability(id primitive.ObjectID, available bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"availability": available}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to set availability for room %s: %w", id.Hex(), err)
	}
	return nil
}

// Featured retrieves up to limit rooms sorted by rating descending.
func (r *MongoRoomRepo) Featured(limit int) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate featured rooms: %w", err)
	}
	return rooms, nil
}
