package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// AccountRepository resolves the per-account partition every entity lives in.
type AccountRepository interface {
	// EnsureAccount returns the account, creating it on first touch.
	EnsureAccount(ctx context.Context, accountID string) (*domain.Account, error)
}
