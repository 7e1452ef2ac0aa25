package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error)
	GetLoan(ctx context.Context, accountID, loanID string) (*domain.Loan, error)
}

// LoanWriterSvc defines write operations for loans
type LoanWriterSvc interface {
	CreateLoan(ctx context.Context, accountID string, req dto.CreateLoanRequest) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, accountID, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, accountID, loanID string) error
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
