package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
)

type profileRepository struct {
	*BaseRepository
}

func newProfileRepository(base *BaseRepository) portsrepo.ProfileRepositoryFacade {
	return &profileRepository{BaseRepository: base}
}

var _ portsrepo.ProfileRepositoryFacade = (*profileRepository)(nil)

func (r *profileRepository) toProfile(snap *portsrepo.Snapshot) (*domain.Profile, error) {
	fields := fromStored(snap)
	setDefault(fields, "guarantors", []any{})
	setDefault(fields, apiPaymentRecords, []any{})
	profile, err := reconstruct[domain.Profile](r.BaseRepository, fields)
	if err != nil {
		return nil, fmt.Errorf("invalid stored profile %s: %w", snap.ID, err)
	}
	return profile, nil
}

// storedProfile additionally stores the loan id as a string so lookups by
// loan id match whether the client sent "42" or 42.
func storedProfile(fields domain.Fields) map[string]any {
	data := toStored(fields)
	if v, ok := data[fieldLoanID]; ok && v != nil {
		if s, ok := domain.StringifyID(v); ok {
			data[fieldLoanID] = s
		}
	}
	return data
}

func (r *profileRepository) ListProfiles(ctx context.Context, accountID string) ([]domain.Profile, error) {
	coll, err := r.collection(ctx, accountID, profilesCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return decodeAll(ctx, "profile", snaps, r.toProfile), nil
}

func (r *profileRepository) FindProfileByLoan(ctx context.Context, accountID, loanID string) (*domain.Profile, error) {
	coll, err := r.collection(ctx, accountID, profilesCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll, portsrepo.Filter{Field: fieldLoanID, Value: loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to find profile for loan %s: %w", loanID, err)
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("profile for loan %s: %w", loanID, apperrors.ErrNotFound)
	}
	return r.toProfile(&snaps[0])
}

func (r *profileRepository) CreateProfile(ctx context.Context, accountID string, fields domain.Fields) (*domain.Profile, error) {
	coll, err := r.collection(ctx, accountID, profilesCollection)
	if err != nil {
		return nil, err
	}
	data := storedProfile(fields)
	now := r.now()
	setDefault(data, fieldCreatedAt, now)
	setDefault(data, fieldUpdatedAt, now)

	snap, err := r.create(ctx, coll, data)
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Created profile", slog.String("account_id", accountID), slog.String("profile_id", snap.ID))
	return r.toProfile(snap)
}

func (r *profileRepository) UpdateProfile(ctx context.Context, accountID, profileID string, fields domain.Fields) (*domain.Profile, error) {
	coll, err := r.collection(ctx, accountID, profilesCollection)
	if err != nil {
		return nil, err
	}
	data := storedProfile(fields)
	delete(data, fieldCreatedAt)
	data[fieldUpdatedAt] = r.now()

	snap, err := r.update(ctx, coll, profileID, data)
	if err != nil {
		return nil, err
	}
	return r.toProfile(snap)
}

func (r *profileRepository) DeleteProfile(ctx context.Context, accountID, profileID string) error {
	coll, err := r.collection(ctx, accountID, profilesCollection)
	if err != nil {
		return err
	}
	return r.delete(ctx, coll, profileID)
}
