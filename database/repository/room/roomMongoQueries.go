package roomRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Locations projects the location field of every room, dropping identity.
func (r *MongoRoomRepo) Locations() ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"location": 1, "_id": 0})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []bson.M{}
	for cursor.Next(ctx) {
		var loc bson.M
		if err := cursor.Decode(&loc); err != nil {
			return nil, fmt.Errorf("failed to decode location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}
	return locations, nil
}

// AddReview pushes a review document onto the room's review list.
func (r *MongoRoomRepo) AddReview(id primitive.ObjectID, review map[string]interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"reviews": review}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add review to room %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RecentReviews flattens every room's embedded reviews into one sequence,
// sorted by timestamp descending and truncated to limit. Room identity is
// stripped by replacing each result root with the review document itself.
func (r *MongoRoomRepo) RecentReviews(limit int) ([]bson.M, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$sort", Value: bson.D{{Key: "reviews.timestamp", Value: -1}}}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$reviews"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate recent reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []bson.M{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode recent reviews: %w", err)
	}
	return reviews, nil
}
