package dto

import "github.com/SscSPs/savkar_ledger/internal/core/domain"

// CreateProfileRequest attaches extended borrower detail to a loan.
// LoanID accepts a JSON string or number.
type CreateProfileRequest struct {
	LoanID       domain.FlexString `json:"loanId" binding:"required" swaggertype:"string"`
	Occupation   string            `json:"occupation"`
	ProfilePhoto *string           `json:"profilePhoto,omitempty"`
	domain.BorrowerAddress
	Guarantors     []GuarantorRequest     `json:"guarantors" binding:"omitempty,dive"`
	PaymentRecords []domain.PaymentRecord `json:"paymentRecords" binding:"omitempty,dive,payment_record" swaggertype:"array,object"`
}

type UpdateProfileRequest struct {
	Occupation   *string `json:"occupation,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
	domain.BorrowerAddress
	Guarantors     []GuarantorRequest     `json:"guarantors,omitempty" binding:"omitempty,dive"`
	PaymentRecords []domain.PaymentRecord `json:"paymentRecords,omitempty" binding:"omitempty,dive,payment_record" swaggertype:"array,object"`
}
