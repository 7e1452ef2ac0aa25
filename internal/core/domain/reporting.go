package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates every loan of an account.
type DashboardSummary struct {
	TotalLoanIssued decimal.Decimal
	RecoveredAmount decimal.Decimal
	PendingAmount   decimal.Decimal
	ActiveRecords   int
	PendingRecords  int
	ClosingRecords  int
}

// SummarizeLoans computes the dashboard totals in a single pass.
func SummarizeLoans(loans []Loan) DashboardSummary {
	var s DashboardSummary
	for _, l := range loans {
		s.TotalLoanIssued = s.TotalLoanIssued.Add(decimal.NewFromFloat(l.TotalLoan))
		s.RecoveredAmount = s.RecoveredAmount.Add(decimal.NewFromFloat(l.PaidAmount))
		switch l.Status {
		case LoanActive:
			s.ActiveRecords++
		case LoanPending:
			s.PendingRecords++
		case LoanClosed:
			s.ClosingRecords++
		}
	}
	s.PendingAmount = s.TotalLoanIssued.Sub(s.RecoveredAmount)
	return s
}
