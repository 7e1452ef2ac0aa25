package dto

import "github.com/SscSPs/savkar_ledger/internal/core/domain"

// DashboardSummaryResponse is the aggregate shown on the dashboard.
// Amounts are summed as decimals and emitted as JSON numbers.
type DashboardSummaryResponse struct {
	TotalLoanIssued float64 `json:"totalLoanIssued" example:"180000"`
	RecoveredAmount float64 `json:"recoveredAmount" example:"142000"`
	PendingAmount   float64 `json:"pendingAmount" example:"38000"`
	ActiveRecords   int     `json:"activeRecords"`
	PendingRecords  int     `json:"pendingRecords"`
	ClosingRecords  int     `json:"closingRecords"`
}

func ToDashboardSummaryResponse(s domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalLoanIssued: s.TotalLoanIssued.InexactFloat64(),
		RecoveredAmount: s.RecoveredAmount.InexactFloat64(),
		PendingAmount:   s.PendingAmount.InexactFloat64(),
		ActiveRecords:   s.ActiveRecords,
		PendingRecords:  s.PendingRecords,
		ClosingRecords:  s.ClosingRecords,
	}
}
