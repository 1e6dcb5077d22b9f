package routes

import (
	"strings"
	"time"

	"roomnest/config"
	"roomnest/handlers"
	"roomnest/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers session token endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.Auth.IssueToken)
	r.POST("/logout", hb.Auth.Logout)
}

// RegisterRoomRoutes registers the room catalog and review endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/rooms", hb.Rooms.ListRooms)
	r.GET("/rooms/:id", hb.Rooms.GetRoom)
	r.POST("/rooms/:id/reviews", hb.Reviews.AddReview)
	r.GET("/featured-rooms", hb.Rooms.FeaturedRooms)
	r.GET("/hotel-locations", hb.Rooms.Locations)
	r.GET("/reviews", hb.Reviews.RecentReviews)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Only the
// per-user listing sits behind the session gate.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/book-room", hb.Bookings.CreateBooking)
	r.GET("/myBookings", middleware.SessionAuth(), hb.Bookings.MyBookings)
	r.DELETE("/bookings/:id", hb.Bookings.CancelBooking)
	r.PUT("/bookings/:id", hb.Bookings.UpdateBookingDate)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Status)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Credentials must be allowed for the session cookie to be usable from a
	// browser, which rules out a wildcard origin.
	origins := strings.Split(config.AppConfig.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
