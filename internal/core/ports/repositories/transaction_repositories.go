package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// TransactionRepository is append-only.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, accountID string, fields domain.Fields) (*domain.Transaction, error)
}
