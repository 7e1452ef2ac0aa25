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

type loanRepository struct {
	*BaseRepository
}

func newLoanRepository(base *BaseRepository) portsrepo.LoanRepositoryFacade {
	return &loanRepository{BaseRepository: base}
}

var _ portsrepo.LoanRepositoryFacade = (*loanRepository)(nil)

// toLoan reconstructs a loan, reading records written before loan types
// existed as the default type. The default is never written back.
func (r *loanRepository) toLoan(snap *portsrepo.Snapshot) (*domain.Loan, error) {
	fields := fromStored(snap)
	if !fields.Has("loanType") {
		fields["loanType"] = string(domain.DefaultLoanType)
	}
	loan, err := reconstruct[domain.Loan](r.BaseRepository, fields)
	if err != nil {
		return nil, fmt.Errorf("invalid stored loan %s: %w", snap.ID, err)
	}
	return loan, nil
}

func (r *loanRepository) ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error) {
	coll, err := r.collection(ctx, accountID, loansCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	loans := decodeAll(ctx, "loan", snaps, r.toLoan)
	middleware.GetLoggerFromCtx(ctx).Debug("Retrieved loans", slog.String("account_id", accountID), slog.Int("count", len(loans)))
	return loans, nil
}

func (r *loanRepository) FindLoanByID(ctx context.Context, accountID, loanID string) (*domain.Loan, error) {
	coll, err := r.collection(ctx, accountID, loansCollection)
	if err != nil {
		return nil, err
	}
	snap, err := r.store.Get(ctx, coll, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", loanID, err)
	}
	return r.toLoan(snap)
}

func (r *loanRepository) CreateLoan(ctx context.Context, accountID string, fields domain.Fields) (*domain.Loan, error) {
	coll, err := r.collection(ctx, accountID, loansCollection)
	if err != nil {
		return nil, err
	}

	data := toStored(fields)
	if v, _ := data[fieldLoanType].(string); v == "" {
		data[fieldLoanType] = string(domain.DefaultLoanType)
	}
	now := r.now()
	setDefault(data, fieldCreatedAt, now)
	setDefault(data, fieldUpdatedAt, now)

	snap, err := r.create(ctx, coll, data)
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Created loan", slog.String("account_id", accountID), slog.String("loan_id", snap.ID))
	return r.toLoan(snap)
}

// UpdateLoan merges the supplied fields. When the payload has no loan type
// the stored one is carried forward, which costs a read before the write.
func (r *loanRepository) UpdateLoan(ctx context.Context, accountID, loanID string, fields domain.Fields) (*domain.Loan, error) {
	coll, err := r.collection(ctx, accountID, loansCollection)
	if err != nil {
		return nil, err
	}

	data := toStored(fields)
	delete(data, fieldCreatedAt)
	if v, _ := data[fieldLoanType].(string); v == "" {
		delete(data, fieldLoanType)
		current, err := r.store.Get(ctx, coll, loanID)
		if err != nil {
			return nil, fmt.Errorf("failed to get loan %s: %w", loanID, err)
		}
		if stored, ok := current.Data[fieldLoanType].(string); ok && stored != "" {
			data[fieldLoanType] = stored
		}
	}
	data[fieldUpdatedAt] = r.now()

	snap, err := r.update(ctx, coll, loanID, data)
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Updated loan", slog.String("account_id", accountID), slog.String("loan_id", loanID))
	return r.toLoan(snap)
}

func (r *loanRepository) DeleteLoan(ctx context.Context, accountID, loanID string) error {
	coll, err := r.collection(ctx, accountID, loansCollection)
	if err != nil {
		return err
	}
	if err := r.delete(ctx, coll, loanID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Deleted loan", slog.String("account_id", accountID), slog.String("loan_id", loanID))
	return nil
}

// lookupBorrowerName returns the borrower name of a loan for document
// enrichment. A missing loan or name is apperrors.ErrNotFound.
func (r *BaseRepository) lookupBorrowerName(ctx context.Context, accountID, loanID string) (string, error) {
	snap, err := r.store.Get(ctx, accountCollection(accountID, loansCollection), loanID)
	if err != nil {
		return "", err
	}
	name, ok := snap.Data[fieldBorrowerName].(string)
	if !ok {
		return "", fmt.Errorf("loan %s has no borrower name: %w", loanID, apperrors.ErrNotFound)
	}
	return name, nil
}
