package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// ProfileReader defines read operations for borrower profiles
type ProfileReader interface {
	ListProfiles(ctx context.Context, accountID string) ([]domain.Profile, error)

	// FindProfileByLoan returns the first profile whose loan id matches,
	// or apperrors.ErrNotFound.
	FindProfileByLoan(ctx context.Context, accountID, loanID string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for borrower profiles
type ProfileWriter interface {
	CreateProfile(ctx context.Context, accountID string, fields domain.Fields) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, accountID, profileID string, fields domain.Fields) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, accountID, profileID string) error
}

// ProfileRepositoryFacade combines all profile repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
