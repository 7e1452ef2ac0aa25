package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.CreateTransaction(ctx, accountID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.String("borrower_id", req.BorrowerID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction recorded", slog.String("transaction_id", txn.ID), slog.String("type", string(txn.Type)))
	return txn, nil
}
