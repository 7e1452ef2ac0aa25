package docstore

import (
	"context"
	"fmt"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
)

type transactionRepository struct {
	*BaseRepository
}

func newTransactionRepository(base *BaseRepository) portsrepo.TransactionRepository {
	return &transactionRepository{BaseRepository: base}
}

var _ portsrepo.TransactionRepository = (*transactionRepository)(nil)

func (r *transactionRepository) toTransaction(snap *portsrepo.Snapshot) (*domain.Transaction, error) {
	txn, err := reconstruct[domain.Transaction](r.BaseRepository, fromStored(snap))
	if err != nil {
		return nil, fmt.Errorf("invalid stored transaction %s: %w", snap.ID, err)
	}
	return txn, nil
}

func (r *transactionRepository) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	coll, err := r.collection(ctx, accountID, transactionsCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return decodeAll(ctx, "transaction", snaps, r.toTransaction), nil
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, accountID string, fields domain.Fields) (*domain.Transaction, error) {
	coll, err := r.collection(ctx, accountID, transactionsCollection)
	if err != nil {
		return nil, err
	}
	data := toStored(fields)
	setDefault(data, fieldCreatedAt, r.now())

	snap, err := r.create(ctx, coll, data)
	if err != nil {
		return nil, err
	}
	return r.toTransaction(snap)
}
