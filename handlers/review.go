package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roomnest/services/catalog"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review sub-resource.
type ReviewHandler struct {
	Catalog catalog.CatalogService
}

func NewReviewHandler(svc catalog.CatalogService) *ReviewHandler {
	return &ReviewHandler{Catalog: svc}
}

// AddReview handles POST /rooms/:id/reviews.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	roomID := c.Param("id")

	var review map[string]interface{}
	if err := c.ShouldBindJSON(&review); err != nil || len(review) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", nil)
		return
	}

	if err := h.Catalog.AddReview(roomID, review); err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidRoomID):
			utils.JSONError(c, http.StatusBadRequest, "Invalid room id", nil)
		case errors.Is(err, catalog.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, "Room not found", nil)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Error adding review", err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review added"})
}

// RecentReviews handles GET /reviews?limit.
func (h *ReviewHandler) RecentReviews(c *gin.Context) {
	limit := catalog.DefaultRecentReviews
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	reviews, err := h.Catalog.RecentReviews(limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Error fetching reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
