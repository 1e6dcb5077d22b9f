package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "roomnest/database/repository/booking"
	roomRepo "roomnest/database/repository/room"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Logger   *zap.Logger

	// Now is the clock used for the cancellation cutoff; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// CreateBooking inserts the booking document as given, then flips the
// referenced room to unavailable. The room reference is trusted: a roomId
// matching no room makes the second write a silent no-op, and a failing
// second write is logged but never rolls back the booking.
func (s *DefaultBookingService) CreateBooking(payload map[string]interface{}) (string, error) {
	insertedID, err := s.Bookings.Create(payload)
	if err != nil || insertedID == "" {
		s.logger().Error("booking insert failed", zap.Error(err))
		return "", ErrBookingFailed
	}

	if roomID, ok := payload["roomId"].(string); ok {
		s.markRoom(roomID, false)
	}

	s.logger().Info("booking created", zap.String("bookingId", insertedID))
	return insertedID, nil
}

// CancelBooking enforces the day-before cutoff, deletes the booking and then
// restores the room's availability best-effort.
func (s *DefaultBookingService) CancelBooking(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidBookingID
	}

	bk, err := s.Bookings.GetByID(oid)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	bookedAt, err := parseBookingDate(bk.Date)
	if err != nil {
		return fmt.Errorf("booking %s has malformed date %q: %w", id, bk.Date, err)
	}

	// The cutoff is the instant one calendar day before the booked date, not
	// midnight of that day.
	cutoff := bookedAt.AddDate(0, 0, -1)
	if s.now().After(cutoff) {
		return ErrCancellationWindowClosed
	}

	if err := s.Bookings.Delete(oid); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			// Raced with a concurrent delete.
			return ErrBookingNotFound
		}
		return err
	}

	s.markRoom(bk.RoomID, true)

	s.logger().Info("booking cancelled", zap.String("bookingId", id))
	return nil
}

// UpdateBookingDate overwrites the booking's date with the RFC 3339 form of
// newDate. Only cancellation is time-gated; updates always go through.
func (s *DefaultBookingService) UpdateBookingDate(id string, newDate time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidBookingID
	}

	date := newDate.UTC().Format(time.RFC3339)
	if err := s.Bookings.UpdateDate(oid, date); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	s.logger().Info("booking date updated", zap.String("bookingId", id), zap.String("date", date))
	return nil
}

// ListUserBookings returns all bookings stored under the given email.
func (s *DefaultBookingService) ListUserBookings(email string) ([]bson.M, error) {
	return s.Bookings.GetByUserEmail(email)
}

// markRoom flips the availability flag of the referenced room. Both writes of
// the lifecycle treat this as best-effort: a malformed or unknown room id is
// skipped silently and a storage fault is logged without rollback.
func (s *DefaultBookingService) markRoom(roomID string, available bool) {
	oid, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return
	}
	if err := s.Rooms.SetAvailability(oid, available); err != nil {
		s.logger().Warn("room availability update failed",
			zap.String("roomId", roomID),
			zap.Bool("available", available),
			zap.Error(err))
	}
}

// parseBookingDate accepts the stored ISO-8601 date forms: a full RFC 3339
// timestamp or a bare calendar date.
func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
