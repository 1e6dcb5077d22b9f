package handlers

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	Auth     *AuthHandler
	Rooms    *RoomHandler
	Reviews  *ReviewHandler
	Bookings *BookingHandler
	Health   *HealthHandler
}
