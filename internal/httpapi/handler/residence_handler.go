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

type ResidenceHandler struct {
	residenceService service.ResidenceService
	logger           *slog.Logger
}

func NewResidenceHandler(residenceService service.ResidenceService, logger *slog.Logger) *ResidenceHandler {
	return &ResidenceHandler{residenceService: residenceService, logger: logger}
}

// RegisterRoutes registers residence catalog routes. Reads are public;
// writes require an authenticated administrator.
func (h *ResidenceHandler) RegisterRoutes(residences *gin.RouterGroup, authRequired, adminOnly gin.HandlerFunc) {
	residences.GET("", h.List)
	residences.GET("/:id", h.GetByID)
	residences.POST("", authRequired, adminOnly, h.Create)
	residences.PUT("/:id", authRequired, adminOnly, h.Update)
	residences.DELETE("/:id", authRequired, adminOnly, h.Delete)
}

// Create adds a new residence listing
// POST /api/residences
func (h *ResidenceHandler) Create(c *gin.Context) {
	var req dto.CreateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, address, and university ID are required."})
		return
	}

	residence, err := h.residenceService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrUniversityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "University not found."})
			return
		}
		serverError(c, h.logger, "residence.create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Residence created successfully.",
		"residence": residence,
	})
}

// List returns all residences joined with their universities, newest first
// GET /api/residences
func (h *ResidenceHandler) List(c *gin.Context) {
	residences, err := h.residenceService.List()
	if err != nil {
		serverError(c, h.logger, "residence.list", err)
		return
	}

	c.JSON(http.StatusOK, residences)
}

// GetByID returns a single residence joined with its university
// GET /api/residences/:id
func (h *ResidenceHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid residence ID."})
		return
	}

	residence, err := h.residenceService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrResidenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Residence not found."})
			return
		}
		serverError(c, h.logger, "residence.get", err)
		return
	}

	c.JSON(http.StatusOK, residence)
}

// Update applies a partial update to a residence
// PUT /api/residences/:id
func (h *ResidenceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid residence ID."})
		return
	}

	var req dto.UpdateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	residence, err := h.residenceService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResidenceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Residence not found."})
		case errors.Is(err, service.ErrUniversityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "University not found."})
		default:
			serverError(c, h.logger, "residence.update", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Residence updated successfully.",
		"residence": residence,
	})
}

// Delete removes a residence; its reviews go with it
// DELETE /api/residences/:id
func (h *ResidenceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid residence ID."})
		return
	}

	if err := h.residenceService.Delete(id); err != nil {
		if errors.Is(err, service.ErrResidenceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Residence not found."})
			return
		}
		serverError(c, h.logger, "residence.delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Residence deleted successfully."})
}
