package booking

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingService manages the booking lifecycle: create with availability
// flip, time-gated cancellation, date update and per-user listing.
//
// Create and cancel each perform two independent writes (booking write, then
// room availability write) with no transaction; a fault between them leaves
// the availability flag stale. This matches the reference behavior and is
// deliberate — see the consistency note in DESIGN.md.
type BookingService interface {
	// CreateBooking inserts the client payload verbatim and marks the
	// referenced room unavailable. Returns the inserted booking id.
	CreateBooking(payload map[string]interface{}) (string, error)
	// CancelBooking deletes the booking if the day-before cutoff has not
	// passed, then marks the room available again (best-effort).
	CancelBooking(id string) error
	// UpdateBookingDate overwrites the booking's date. No cutoff applies.
	UpdateBookingDate(id string, newDate time.Time) error
	// ListUserBookings returns all bookings stored under the given email.
	ListUserBookings(email string) ([]bson.M, error)
}
