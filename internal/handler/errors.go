package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital_management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors onto status codes. Anything unexpected is
// logged with the request logger and reported as "Failed to <action>".
func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msgf("Failed to %s", action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// bindError reports a body that could not be decoded or misses a required key
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}

// parseID reads the :id path parameter. On failure the 400 response has
// already been written.
func parseID(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}
