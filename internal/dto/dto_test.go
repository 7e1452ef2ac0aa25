package dto

import (
	"testing"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFields_OnlySuppliedFields(t *testing.T) {
	paid := 0.0
	status := domain.LoanClosed
	fields, err := ToFields(UpdateLoanRequest{PaidAmount: &paid, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.Fields{"paidAmount": 0.0, "status": "Closed"}, fields)
	assert.False(t, fields.Has("loanType"))
}

func TestToFields_CreateLoanFlattensAddress(t *testing.T) {
	emi, rate, total, paid := 100.0, 1.0, 1000.0, 0.0
	addr := "Pune"
	fields, err := ToFields(CreateLoanRequest{
		BorrowerName: "A", PhoneNumber: "1", EMI: &emi, StartDate: "2024-01-01", EndDate: "2024-02-01",
		InterestRate: &rate, PaymentMode: domain.PaymentUPI, TotalLoan: &total, PaidAmount: &paid,
		Status:          domain.LoanActive,
		BorrowerAddress: domain.BorrowerAddress{Address: &addr},
		PaymentRecords:  []domain.PaymentRecord{{"date": "2024-01-05", "amount": 100.0}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Pune", fields["address"])
	assert.NotContains(t, fields, "loanType")
	assert.NotContains(t, fields, "lastAmount")
	assert.Equal(t, 0.0, fields["paidAmount"])
	records := fields["paymentRecords"].([]any)
	assert.Equal(t, "2024-01-05", records[0].(map[string]any)["date"])
}
