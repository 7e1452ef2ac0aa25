package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// ReportingService derives aggregate views from an account's loans.
type ReportingService interface {
	// DashboardSummary sums loan amounts and counts loans per status.
	DashboardSummary(ctx context.Context, accountID string) (*domain.DashboardSummary, error)

	// Defaulters lists loans that are not closed, underpaid and past their end date.
	Defaulters(ctx context.Context, accountID string) ([]domain.Loan, error)
}
