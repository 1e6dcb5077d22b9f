package roomRepo

import (
	"errors"

	"roomnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an operation matched no room document.
var ErrNotFound = errors.New("room not found")

// RoomRepository defines data access for room documents and their embedded
// reviews.
type RoomRepository interface {
	// GetAll returns rooms whose price falls within the given bounds.
	// A nil bound leaves that side of the range open.
	GetAll(minPrice, maxPrice *float64) ([]models.Room, error)
	// GetByID returns the room with the given id, or nil if none exists.
	GetByID(id primitive.ObjectID) (*models.Room, error)
	// Featured returns up to limit rooms sorted by rating descending.
	Featured(limit int) ([]models.Room, error)
	// Locations returns the location field of every room, identity stripped.
	Locations() ([]bson.M, error)
	// AddReview appends a review document to the room's review list.
	// Returns ErrNotFound if the room does not exist.
	AddReview(id primitive.ObjectID, review map[string]interface{}) error
	// RecentReviews flattens reviews across all rooms, sorted by timestamp
	// descending and truncated to limit.
	RecentReviews(limit int) ([]bson.M, error)
	// SetAvailability flips the room's availability flag. Matching no room is
	// not an error; the booking flow treats that write as best-effort.
	SetAvailability(id primitive.ObjectID, available bool) error
}
