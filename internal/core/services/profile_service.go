package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) ListProfiles(ctx context.Context, accountID string) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) GetProfileByLoan(ctx context.Context, accountID, loanID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByLoan(ctx, accountID, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile of loan %s: %w", loanID, err)
	}
	return profile, nil
}

func (s *profileService) CreateProfile(ctx context.Context, accountID string, req dto.CreateProfileRequest) (*domain.Profile, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.CreateProfile(ctx, accountID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to create profile")
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, accountID, profileID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.UpdateProfile(ctx, accountID, profileID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", profileID, err)
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	if err := s.profileRepo.DeleteProfile(ctx, accountID, profileID); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", profileID, err)
	}
	return nil
}
