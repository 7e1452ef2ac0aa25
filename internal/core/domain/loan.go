package domain

import (
	"time"

	"github.com/SscSPs/savkar_ledger/internal/utils"
)

// Loan is a borrower's credit record with repayment terms and running balance.
type Loan struct {
	ID           string      `json:"id" binding:"required"`
	BorrowerName string      `json:"borrowerName" binding:"required"`
	PhoneNumber  string      `json:"phoneNumber" binding:"required"`
	LastAmount   *float64    `json:"lastAmount,omitempty"` // Legacy field, kept when present
	EMI          float64     `json:"emi"`
	StartDate    string      `json:"startDate" binding:"required"`
	EndDate      string      `json:"endDate" binding:"required"`
	InterestRate float64     `json:"interestRate"`
	PaymentMode  PaymentMode `json:"paymentMode" binding:"payment_mode"`
	TotalLoan    float64     `json:"totalLoan"`
	PaidAmount   float64     `json:"paidAmount"`
	Status       LoanStatus  `json:"status" binding:"loan_status"`
	LoanType     LoanType    `json:"loanType" binding:"loan_type"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	ProfilePhoto *string     `json:"profilePhoto,omitempty"` // Opaque reference or data URL
	Occupation   *string     `json:"occupation,omitempty"`
	BorrowerAddress
	Guarantors     []Guarantor     `json:"guarantors,omitempty" binding:"omitempty,dive"`
	PaymentRecords []PaymentRecord `json:"paymentRecords,omitempty" binding:"omitempty,dive,payment_record"`
}

// BorrowerAddress holds the primary address and the alternate address fields
// captured on the borrower profile screen.
type BorrowerAddress struct {
	Address            *string `json:"address,omitempty"`
	AddressAsPerAadhar *string `json:"addressAsPerAadhar,omitempty"`
	Nave               *string `json:"nave,omitempty"`
	Haste              *string `json:"haste,omitempty"`
	Purava             *string `json:"purava,omitempty"`
}

// IsDefaulter reports whether the loan is not closed, underpaid and past its end date.
// End dates that are neither ISO timestamps nor bare dates never qualify.
func (l Loan) IsDefaulter(now time.Time) bool {
	if l.Status == LoanClosed || l.PaidAmount >= l.TotalLoan {
		return false
	}
	end, err := utils.ParseTimestamp(l.EndDate)
	if err != nil {
		return false
	}
	return end.Before(now)
}
