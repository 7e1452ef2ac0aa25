package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestAccount returns the account resolved by the route group middleware.
// It writes a 401 and returns false when there is none.
func requestAccount(c *gin.Context) (string, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("No account bound to request")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperrors.ErrMissingIdentity.Error()})
		return "", false
	}
	return accountID, true
}

// respondBindError answers a payload that failed decoding or validation.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	verr := domain.AsValidationError(err)
	logger.Warn("Invalid request payload", slog.String("field", verr.Field), slog.String("error", verr.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error(), Field: verr.Field})
}

// respondServiceError maps a service failure to a status code. Anything that
// is not a bad identity or a missing entity, including payloads that fail
// reconstruction after a write, is an internal error.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, entity, action string) {
	switch {
	case errors.Is(err, apperrors.ErrMissingIdentity):
		logger.Warn("Missing caller identity", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperrors.ErrMissingIdentity.Error()})
	case errors.Is(err, apperrors.ErrInvalidIdentity):
		logger.Warn("Invalid caller identity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperrors.ErrInvalidIdentity.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(entity+" not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: entity + " not found"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

func deleted(entity string) dto.DeleteResponse {
	return dto.DeleteResponse{Message: entity + " deleted successfully"}
}
