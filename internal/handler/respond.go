package handler

import (
	"errors"
	"net/http"

	"companion_rental/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// statusFor maps service errors onto HTTP statuses. Unknown errors are server faults.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrRatingNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyRated):
		return http.StatusConflict
	case errors.Is(err, service.ErrSelfRating),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrInvalidFileFormat),
		errors.Is(err, service.ErrFileSizeExceeded):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log zerolog.Logger, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("action", action).Msg("request failed")
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
