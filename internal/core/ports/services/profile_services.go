package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

// ProfileReaderSvc defines read operations for borrower profiles
type ProfileReaderSvc interface {
	ListProfiles(ctx context.Context, accountID string) ([]domain.Profile, error)
	GetProfileByLoan(ctx context.Context, accountID, loanID string) (*domain.Profile, error)
}

// ProfileWriterSvc defines write operations for borrower profiles
type ProfileWriterSvc interface {
	CreateProfile(ctx context.Context, accountID string, req dto.CreateProfileRequest) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, accountID, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, accountID, profileID string) error
}

type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
