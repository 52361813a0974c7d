package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// serverError logs the underlying failure with full detail and answers the
// client with a generic message only; error text never reaches the response.
func serverError(c *gin.Context, logger *slog.Logger, op string, err error) {
	logger.Error("internal error", "op", op, "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}
