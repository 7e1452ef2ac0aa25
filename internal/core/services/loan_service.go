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

type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepositoryFacade
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

func (s *loanService) GetLoan(ctx context.Context, accountID, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, accountID, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", loanID, err)
	}
	return loan, nil
}

func (s *loanService) CreateLoan(ctx context.Context, accountID string, req dto.CreateLoanRequest) (*domain.Loan, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	loan, err := s.loanRepo.CreateLoan(ctx, accountID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to create loan", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}
	s.LogInfo(ctx, "Loan created", slog.String("loan_id", loan.ID), slog.String("loan_type", string(loan.LoanType)))
	return loan, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, accountID, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	loan, err := s.loanRepo.UpdateLoan(ctx, accountID, loanID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update loan %s: %w", loanID, err)
	}
	s.LogInfo(ctx, "Loan updated", slog.String("loan_id", loanID), slog.Int("field_count", len(fields)))
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, accountID, loanID string) error {
	if err := s.loanRepo.DeleteLoan(ctx, accountID, loanID); err != nil {
		return fmt.Errorf("failed to delete loan %s: %w", loanID, err)
	}
	return nil
}
