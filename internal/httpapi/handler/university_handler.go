package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UniversityHandler struct {
	universityService service.UniversityService
	logger            *slog.Logger
}

func NewUniversityHandler(universityService service.UniversityService, logger *slog.Logger) *UniversityHandler {
	return &UniversityHandler{universityService: universityService, logger: logger}
}

// RegisterRoutes registers university directory routes
func (h *UniversityHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, adminOnly gin.HandlerFunc) {
	universities := router.Group("/universities")
	{
		universities.GET("", h.List)
		universities.POST("", authRequired, adminOnly, h.Create)
	}
}

// Create adds a university to the directory
// POST /api/universities
func (h *UniversityHandler) Create(c *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required."})
		return
	}

	university, err := h.universityService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrUniversityNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "University name already in use."})
			return
		}
		serverError(c, h.logger, "university.create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "University created successfully.",
		"university": university,
	})
}

// List returns all universities, newest first
// GET /api/universities
func (h *UniversityHandler) List(c *gin.Context) {
	universities, err := h.universityService.List()
	if err != nil {
		serverError(c, h.logger, "university.list", err)
		return
	}

	c.JSON(http.StatusOK, universities)
}
