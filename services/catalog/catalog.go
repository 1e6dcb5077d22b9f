package catalog

import (
	"errors"
	"time"

	roomRepo "roomnest/database/repository/room"
	"roomnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FeaturedLimit caps the featured-rooms view.
const FeaturedLimit = 6

// DefaultRecentReviews caps the recent-reviews view when no limit is given.
const DefaultRecentReviews = 10

// DefaultCatalogService implements CatalogService on top of the room
// repository, with an optional redis read-through cache for the aggregate
// views (see cache.go).
type DefaultCatalogService struct {
	Repo   roomRepo.RoomRepository
	Cache  AggregateCache
	Logger *zap.Logger

	// Now is the clock used to stamp reviews; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultCatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// ListRooms returns rooms within the inclusive price range.
func (s *DefaultCatalogService) ListRooms(minPrice, maxPrice *float64) ([]models.Room, error) {
	return s.Repo.GetAll(minPrice, maxPrice)
}

// GetRoom returns the room with the given id, or nil when none exists.
func (s *DefaultCatalogService) GetRoom(id string) (*models.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidRoomID
	}
	return s.Repo.GetByID(oid)
}

// FeaturedRooms returns the top rooms by rating, served through the aggregate
// cache when one is configured.
func (s *DefaultCatalogService) FeaturedRooms() ([]models.Room, error) {
	if s.Cache != nil {
		var rooms []models.Room
		if ok := s.Cache.Get(featuredCacheKey, &rooms); ok {
			return rooms, nil
		}
	}

	rooms, err := s.Repo.Featured(FeaturedLimit)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Set(featuredCacheKey, rooms)
	}
	return rooms, nil
}

// Locations returns the location of every room, served through the aggregate
// cache when one is configured.
func (s *DefaultCatalogService) Locations() ([]bson.M, error) {
	if s.Cache != nil {
		var locations []bson.M
		if ok := s.Cache.Get(locationsCacheKey, &locations); ok {
			return locations, nil
		}
	}

	locations, err := s.Repo.Locations()
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Set(locationsCacheKey, locations)
	}
	return locations, nil
}

// AddReview stamps the review with the current server time (overwriting any
// client-supplied timestamp) and appends it to the room's review list.
func (s *DefaultCatalogService) AddReview(roomID string, review map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return ErrInvalidRoomID
	}

	review["timestamp"] = s.now().UTC().Format(time.RFC3339)

	if err := s.Repo.AddReview(oid, review); err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	s.logger().Info("review added", zap.String("roomId", roomID))
	return nil
}

// RecentReviews returns the most recent reviews across all rooms.
func (s *DefaultCatalogService) RecentReviews(limit int) ([]bson.M, error) {
	if limit <= 0 {
		limit = DefaultRecentReviews
	}
	return s.Repo.RecentReviews(limit)
}
