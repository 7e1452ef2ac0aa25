// Package docstore implements the entity repositories on top of a
// DocumentStore, translating between the API (camelCase) and persisted
// (snake_case) forms of every entity.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/SscSPs/savkar_ledger/internal/utils"
	"github.com/SscSPs/savkar_ledger/internal/utils/mapping"
	"github.com/go-playground/validator/v10"
)

const (
	usersCollection        = "users"
	loansCollection        = "loans"
	documentsCollection    = "documents"
	noticesCollection      = "notices"
	transactionsCollection = "transactions"
	profilesCollection     = "profiles"
)

// Persisted field names the repositories read or stamp.
const (
	fieldID           = "id"
	fieldUID          = "uid"
	fieldCreatedAt    = "created_at"
	fieldUpdatedAt    = "updated_at"
	fieldUploadedAt   = "uploaded_at"
	fieldLoanID       = "loan_id"
	fieldLoanType     = "loan_type"
	fieldBorrowerName = "borrower_name"
	fieldFileContent  = "file_content"
	fieldFileID       = "file_id"
	fieldFileSize     = "file_size"
	fieldGuarantors   = "guarantors"

	// apiPaymentRecords holds client-defined rows stored with their keys as sent.
	apiPaymentRecords = "paymentRecords"
)

// timestampFields hold ISO strings in the API form and timestamps when persisted.
var timestampFields = []string{fieldCreatedAt, fieldUpdatedAt, fieldUploadedAt}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	store    portsrepo.DocumentStore
	validate *validator.Validate
	now      func() time.Time
}

func newBaseRepository(store portsrepo.DocumentStore, now func() time.Time) *BaseRepository {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &BaseRepository{store: store, validate: domain.NewValidator(), now: now}
}

func accountCollection(accountID, sub string) string {
	return usersCollection + "/" + accountID + "/" + sub
}

// EnsureAccount returns the account document, creating it on first touch.
// Store failures are reported as apperrors.ErrStoreUnavailable. An id that
// is not a single path segment never reaches the store.
func (r *BaseRepository) EnsureAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	if err := r.validate.Var(accountID, "account_id"); err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidIdentity, accountID)
	}
	snap, err := r.store.Get(ctx, usersCollection, accountID)
	if err == nil {
		return &domain.Account{ID: accountID, CreatedAt: asTime(snap.Data[fieldCreatedAt])}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: resolve account %s: %v", apperrors.ErrStoreUnavailable, accountID, err)
	}

	now := r.now()
	middleware.GetLoggerFromCtx(ctx).Info("Creating account document", slog.String("account_id", accountID))
	if err := r.store.Set(ctx, usersCollection, accountID, map[string]any{
		fieldCreatedAt: now,
		fieldUID:       accountID,
	}); err != nil {
		return nil, fmt.Errorf("%w: create account %s: %v", apperrors.ErrStoreUnavailable, accountID, err)
	}
	return &domain.Account{ID: accountID, CreatedAt: now}, nil
}

// collection resolves the account partition and returns the sub-collection path.
func (r *BaseRepository) collection(ctx context.Context, accountID, sub string) (string, error) {
	if _, err := r.EnsureAccount(ctx, accountID); err != nil {
		return "", err
	}
	return accountCollection(accountID, sub), nil
}

// create writes data under a new id and reads the stored document back.
func (r *BaseRepository) create(ctx context.Context, coll string, data map[string]any) (*portsrepo.Snapshot, error) {
	id, err := r.store.Create(ctx, coll, data)
	if err != nil {
		return nil, fmt.Errorf("failed to write to %s: %w", coll, err)
	}
	snap, err := r.store.Get(ctx, coll, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back %s/%s: %w", coll, id, err)
	}
	return snap, nil
}

// update merges data into an existing document and reads it back.
func (r *BaseRepository) update(ctx context.Context, coll, id string, data map[string]any) (*portsrepo.Snapshot, error) {
	if err := r.store.Update(ctx, coll, id, data); err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", coll, id, err)
	}
	snap, err := r.store.Get(ctx, coll, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back %s/%s: %w", coll, id, err)
	}
	return snap, nil
}

func (r *BaseRepository) delete(ctx context.Context, coll, id string) error {
	if err := r.store.Delete(ctx, coll, id); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", coll, id, err)
	}
	return nil
}

// toStored converts API-form fields into the persisted form: snake_case keys
// (payment record rows excepted), no "id", string guarantor ids and real
// timestamps.
func toStored(fields domain.Fields) map[string]any {
	data := mapping.KeysToSnake(fields, apiPaymentRecords)
	if data == nil {
		data = map[string]any{}
	}
	delete(data, fieldID)
	normalizeGuarantorIDs(data)
	for _, f := range timestampFields {
		if s, ok := data[f].(string); ok {
			if t, err := utils.ParseTimestamp(s); err == nil {
				data[f] = t
			}
		}
	}
	return data
}

// fromStored converts a stored document into its API form, with ISO
// timestamps and the document id injected.
func fromStored(snap *portsrepo.Snapshot) domain.Fields {
	data := make(map[string]any, len(snap.Data)+1)
	for k, v := range snap.Data {
		data[k] = v
	}
	for k, v := range data {
		if t, ok := v.(time.Time); ok {
			data[k] = utils.FormatTimestamp(t)
		}
	}
	for _, f := range timestampFields {
		if s, ok := data[f].(string); ok {
			if t, err := utils.ParseTimestamp(s); err == nil {
				data[f] = utils.FormatTimestamp(t)
			}
		}
	}
	normalizeGuarantorIDs(data)
	out := domain.Fields(mapping.KeysToCamel(data, apiPaymentRecords))
	out[fieldID] = snap.ID
	return out
}

func normalizeGuarantorIDs(data map[string]any) {
	switch guarantors := data[fieldGuarantors].(type) {
	case []any:
		for _, g := range guarantors {
			if m, ok := g.(map[string]any); ok {
				stringifyID(m)
			}
		}
	case []map[string]any:
		for _, m := range guarantors {
			stringifyID(m)
		}
	}
}

func stringifyID(m map[string]any) {
	if v, ok := m[fieldID]; ok && v != nil {
		if s, ok := domain.StringifyID(v); ok {
			m[fieldID] = s
		}
	}
}

// setDefault mirrors a dict setdefault: it only fills absent or nil keys.
func setDefault(data map[string]any, key string, value any) {
	if v, ok := data[key]; !ok || v == nil {
		data[key] = value
	}
}

// reconstruct decodes API-form fields into a typed entity and validates it.
// A mismatch is reported as a *apperrors.ValidationError.
func reconstruct[T any](r *BaseRepository, fields domain.Fields) (*T, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, domain.AsValidationError(err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, domain.AsValidationError(err)
	}
	if err := r.validate.Struct(out); err != nil {
		return nil, domain.AsValidationError(err)
	}
	return &out, nil
}

// decodeAll converts listed snapshots, logging and skipping any record that
// no longer decodes so one bad document does not hide the rest.
func decodeAll[T any](ctx context.Context, kind string, snaps []portsrepo.Snapshot, decode func(*portsrepo.Snapshot) (*T, error)) []T {
	out := make([]T, 0, len(snaps))
	for i := range snaps {
		v, err := decode(&snaps[i])
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Skipping unreadable stored record",
				slog.String("kind", kind), slog.String("id", snaps[i].ID), slog.String("error", err.Error()))
			continue
		}
		out = append(out, *v)
	}
	return out
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := utils.ParseTimestamp(t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
