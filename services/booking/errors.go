package booking

import "fmt"

// LifecycleError carries a machine-readable code alongside the message so
// handlers can map failures onto HTTP statuses.
type LifecycleError struct {
	Code    string
	Message string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidBookingID reports a malformed booking identifier.
	ErrInvalidBookingID = &LifecycleError{Code: "invalidId", Message: "invalid booking id"}
	// ErrBookingNotFound reports that no booking matched the given identifier.
	ErrBookingNotFound = &LifecycleError{Code: "notFound", Message: "booking not found"}
	// ErrBookingFailed reports that the booking insert was not acknowledged.
	ErrBookingFailed = &LifecycleError{Code: "bookingFailed", Message: "booking failed"}
	// ErrCancellationWindowClosed reports a cancellation attempted after the
	// day-before cutoff.
	ErrCancellationWindowClosed = &LifecycleError{
		Code:    "windowClosed",
		Message: "Cannot cancel booking less than 1 day before the booked date",
	}
)
