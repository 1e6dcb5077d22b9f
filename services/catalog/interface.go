package catalog

import (
	"roomnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService exposes read-only room queries and the review sub-resource.
type CatalogService interface {
	// ListRooms returns rooms within the inclusive price range; a nil bound
	// leaves that side open.
	ListRooms(minPrice, maxPrice *float64) ([]models.Room, error)
	// GetRoom returns the room with the given id, or nil when none exists.
	// The nil result is rendered as a JSON null for wire compatibility with
	// existing clients.
	GetRoom(id string) (*models.Room, error)
	// FeaturedRooms returns the top rooms by rating, at most six.
	FeaturedRooms() ([]models.Room, error)
	// Locations returns the location of every room, identity stripped.
	Locations() ([]bson.M, error)
	// AddReview stamps the review with the current server time and appends it
	// to the room's review list.
	AddReview(roomID string, review map[string]interface{}) error
	// RecentReviews returns the most recent reviews across all rooms.
	RecentReviews(limit int) ([]bson.M, error)
}
