package domain

import (
	"regexp"
	"time"
)

// DefaultAccountID is the operator ("savkar") partition used when a request
// carries no caller identity.
const DefaultAccountID = "savkar_user_001"

// accountIDPattern keeps an account id a single store path segment: no
// slashes, no leading dot or underscore (".", "..", "__x__" are reserved).
var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.@:-]{0,127}$`)

// ValidAccountID reports whether id can name an account partition.
func ValidAccountID(id string) bool {
	return accountIDPattern.MatchString(id)
}

// Account is the top-level partition owning every other entity.
type Account struct {
	ID        string    `json:"uid"`
	CreatedAt time.Time `json:"createdAt"`
}
