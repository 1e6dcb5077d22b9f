package handlers

import (
	"errors"
	"net/http"
	"time"

	"roomnest/middleware"
	"roomnest/services/booking"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateBooking handles POST /book-room. The payload is stored as given; the
// service flips the referenced room to unavailable afterwards.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", nil)
		return
	}

	insertedID, err := h.Bookings.CreateBooking(payload)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": insertedID, "message": "Booking successful"})
}

// MyBookings handles GET /myBookings?email behind the session gate. The
// session claim must match the requested email before any data is touched.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email query parameter is required.", nil)
		return
	}

	sessionEmail := c.GetString(middleware.SessionEmailKey)
	if sessionEmail != email {
		utils.JSONError(c, http.StatusForbidden, "Forbidden access", nil)
		return
	}

	bookings, err := h.Bookings.ListUserBookings(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching bookings.", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles DELETE /bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	if err := h.Bookings.CancelBooking(id); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking id", nil)
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, booking.ErrCancellationWindowClosed):
			utils.JSONError(c, http.StatusBadRequest, booking.ErrCancellationWindowClosed.Message, nil)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Error cancelling booking", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// UpdateBookingDate handles PUT /bookings/:id with body {"date": ...}.
func (h *BookingHandler) UpdateBookingDate(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Date is required", nil)
		return
	}

	newDate, err := parseDate(req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format", nil)
		return
	}

	if err := h.Bookings.UpdateBookingDate(id, newDate); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidBookingID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking id", nil)
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", nil)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Error updating booking", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking date updated"})
}

// parseDate accepts a full RFC 3339 timestamp or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
