package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, logger: logger}
}

// RegisterRoutes registers review routes nested under the residences group.
// Listing is public; submission requires authentication. The param must be
// named ":id" here: gin panics if routes sharing a group use different
// wildcard names at the same path position.
func (h *ReviewHandler) RegisterRoutes(residences *gin.RouterGroup, authRequired gin.HandlerFunc) {
	residences.GET("/:id/reviews", h.List)
	residences.POST("/:id/reviews", authRequired, h.Submit)
}

// Submit accepts a new review and returns it with the updated aggregate
// POST /api/residences/:id/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	residenceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid residence ID."})
		return
	}

	// Identity set by AuthRequired
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied."})
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	review, updated, err := h.reviewService.SubmitReview(userID.(string), residenceID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Overall rating is required and must be between 1 and 5."})
		case errors.Is(err, service.ErrResidenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Residence not found."})
		case errors.Is(err, service.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"message": "You have already submitted a review for this residence."})
		default:
			serverError(c, h.logger, "review.submit", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Review submitted successfully and pending approval.",
		"review":           review,
		"updatedResidence": updated,
	})
}

// List returns a residence together with all of its reviews, newest first
// GET /api/residences/:id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	residenceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid residence ID."})
		return
	}

	result, err := h.reviewService.ListReviews(residenceID)
	if err != nil {
		if errors.Is(err, service.ErrResidenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Residence not found."})
			return
		}
		serverError(c, h.logger, "review.list", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
