package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader names the caller for the per-caller routes.
	UserIDHeader = "X-User-Id"
	// UserIDQueryParam is the fallback when the header is absent.
	UserIDQueryParam = "uid"
)

// FixedAccount binds every request to one operator account.
func FixedAccount(accountID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		withAccountID(c, accountID)
		c.Next()
	}
}

// CallerAccount binds the request to the account named by the caller. The
// identifier is taken at face value; no credential is checked. Requests
// without one, or with one that is not a single path segment, are rejected
// before any storage access.
func CallerAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if uid == "" {
			uid = strings.TrimSpace(c.Query(UserIDQueryParam))
		}
		if uid == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Request without caller identity")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingIdentity.Error()})
			return
		}
		if !domain.ValidAccountID(uid) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rejected caller identity", slog.String("uid", uid))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidIdentity.Error(), "field": UserIDQueryParam})
			return
		}
		GetLoggerFromCtx(c.Request.Context()).Debug("Resolved caller account", slog.String("account_id", uid))
		withAccountID(c, uid)
		c.Next()
	}
}
