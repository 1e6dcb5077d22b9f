package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roomnest/services/catalog"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the read-only room catalog endpoints.
type RoomHandler struct {
	Catalog catalog.CatalogService
}

func NewRoomHandler(svc catalog.CatalogService) *RoomHandler {
	return &RoomHandler{Catalog: svc}
}

// ListRooms handles GET /rooms?minPrice&maxPrice.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	minPrice, ok := priceQuery(c, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := priceQuery(c, "maxPrice")
	if !ok {
		return
	}

	rooms, err := h.Catalog.ListRooms(minPrice, maxPrice)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:id. An unknown id renders a JSON null with
// status 200; existing clients depend on that shape.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id := c.Param("id")

	room, err := h.Catalog.GetRoom(id)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidRoomID) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid room id", nil)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// FeaturedRooms handles GET /featured-rooms.
func (h *RoomHandler) FeaturedRooms(c *gin.Context) {
	rooms, err := h.Catalog.FeaturedRooms()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching rooms", err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Locations handles GET /hotel-locations.
func (h *RoomHandler) Locations(c *gin.Context) {
	locations, err := h.Catalog.Locations()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching locations", err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// priceQuery parses an optional float query parameter, replying 400 itself
// when the value is malformed.
func priceQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid price filter", nil)
		return nil, false
	}
	return &value, true
}
