package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

// TransactionSvcFacade records money movements. Transactions cannot be
// changed or removed once created.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}
