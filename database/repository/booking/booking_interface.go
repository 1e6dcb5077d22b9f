package bookingRepo

import (
	"errors"

	"roomnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an operation matched no booking document.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for booking documents.
type BookingRepository interface {
	// Create inserts the booking document exactly as given and returns the
	// hex form of the inserted id.
	Create(doc map[string]interface{}) (string, error)
	// GetByID returns the booking with the given id.
	GetByID(id primitive.ObjectID) (*models.Booking, error)
	// Delete removes the booking. Returns ErrNotFound if nothing was deleted.
	Delete(id primitive.ObjectID) error
	// UpdateDate overwrites the booking's date field.
	UpdateDate(id primitive.ObjectID, date string) error
	// GetByUserEmail returns all bookings stored under the given user email,
	// including any client-supplied extra fields, in store-native order.
	GetByUserEmail(email string) ([]bson.M, error)
}
