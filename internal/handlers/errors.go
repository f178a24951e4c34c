package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDivisionByZero),
		errors.Is(err, apperrors.ErrEmptyInput),
		errors.Is(err, apperrors.ErrUnreadableFile):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondServiceError writes the error body for err. 5xx responses hide the cause behind
// fallback, except upstream failures whose backend detail the cashier needs to see.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	switch {
	case status == http.StatusBadGateway:
		logger.Warn("Backend request failed", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
	default:
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
