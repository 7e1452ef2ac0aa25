package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// accountIDKey is the key used to store the resolved account partition.
const accountIDKey = contextKey("accountID")

func withAccountID(c *gin.Context, accountID string) {
	c.Set(string(accountIDKey), accountID)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), accountIDKey, accountID))
}

// GetAccountIDFromContext retrieves the account the request operates on.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(accountIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	id, ok := c.Request.Context().Value(accountIDKey).(string)
	return id, ok && id != ""
}
