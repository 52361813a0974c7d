package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// RegisterRoutes registers user administration routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, adminOnly gin.HandlerFunc) {
	users := router.Group("/users")
	{
		users.DELETE("/:id", authRequired, adminOnly, h.Delete)
	}
}

// Delete removes a user account and, via cascade, their reviews
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		serverError(c, h.logger, "user.delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
