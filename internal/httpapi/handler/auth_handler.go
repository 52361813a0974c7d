package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers authentication routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, rateLimited gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", rateLimited, h.Register)
		auth.POST("/login", rateLimited, h.Login)
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.UniversityID)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already in use."})
			return
		}
		serverError(c, h.logger, "auth.register", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"user": dto.UserSummary{
			ID:    user.ID,
			Email: user.Email,
		},
	})
}

// Login verifies credentials and issues a signed token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid credentials."})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		default:
			serverError(c, h.logger, "auth.login", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User: dto.AuthUser{
			ID:      user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}
