package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// LoanReader defines read operations for loans
type LoanReader interface {
	ListLoans(ctx context.Context, accountID string) ([]domain.Loan, error)
	FindLoanByID(ctx context.Context, accountID, loanID string) (*domain.Loan, error)
}

// LoanWriter defines write operations for loans.
// Fields are in their API (camelCase) form.
type LoanWriter interface {
	CreateLoan(ctx context.Context, accountID string, fields domain.Fields) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, accountID, loanID string, fields domain.Fields) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, accountID, loanID string) error
}

// LoanRepositoryFacade combines all loan repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
