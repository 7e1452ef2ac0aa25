package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	loanRepo portsrepo.LoanReader
	now      func() time.Time
}

// ReportingServiceOption configures a reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock the defaulter check compares end dates with.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a reporting service over the loan repository.
func NewReportingService(loanRepo portsrepo.LoanReader, options ...ReportingServiceOption) portssvc.ReportingService {
	s := &reportingService{loanRepo: loanRepo, now: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// DashboardSummary recomputes the aggregate from every loan on each call.
func (s *reportingService) DashboardSummary(ctx context.Context, accountID string) (*domain.DashboardSummary, error) {
	loans, err := s.loanRepo.ListLoans(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans for dashboard: %w", err)
	}
	summary := domain.SummarizeLoans(loans)
	s.LogDebug(ctx, "Dashboard summary computed", slog.Int("loan_count", len(loans)))
	return &summary, nil
}

func (s *reportingService) Defaulters(ctx context.Context, accountID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans for defaulter check: %w", err)
	}
	now := s.now()
	out := make([]domain.Loan, 0)
	for _, l := range loans {
		if l.IsDefaulter(now) {
			out = append(out, l)
		}
	}
	return out, nil
}
