package dto

import "github.com/SscSPs/savkar_ledger/internal/core/domain"

// CreateLoanRequest defines the structure for creating a new loan.
// Numeric fields are pointers so that a legitimate 0 passes "required".
type CreateLoanRequest struct {
	BorrowerName string             `json:"borrowerName" binding:"required" example:"Ramesh Patil"`
	PhoneNumber  string             `json:"phoneNumber" binding:"required" example:"9876543210"`
	LastAmount   *float64           `json:"lastAmount,omitempty"`
	EMI          *float64           `json:"emi" binding:"required" example:"5000"`
	StartDate    string             `json:"startDate" binding:"required" example:"2024-01-01"`
	EndDate      string             `json:"endDate" binding:"required" example:"2024-12-31"`
	InterestRate *float64           `json:"interestRate" binding:"required" example:"2"`
	PaymentMode  domain.PaymentMode `json:"paymentMode" binding:"required,payment_mode" example:"Cash"`
	TotalLoan    *float64           `json:"totalLoan" binding:"required" example:"100000"`
	PaidAmount   *float64           `json:"paidAmount" binding:"required" example:"0"`
	Status       domain.LoanStatus  `json:"status" binding:"required,loan_status" example:"Active"`
	LoanType     domain.LoanType    `json:"loanType,omitempty" binding:"omitempty,loan_type" example:"Cash Loan"`
	ProfilePhoto *string            `json:"profilePhoto,omitempty"`
	Occupation   *string            `json:"occupation,omitempty"`
	domain.BorrowerAddress
	Guarantors     []GuarantorRequest     `json:"guarantors,omitempty" binding:"omitempty,dive"`
	PaymentRecords []domain.PaymentRecord `json:"paymentRecords,omitempty" binding:"omitempty,dive,payment_record" swaggertype:"array,object"`
}

// UpdateLoanRequest carries only the fields to change.
type UpdateLoanRequest struct {
	BorrowerName   *string                `json:"borrowerName,omitempty"`
	PhoneNumber    *string                `json:"phoneNumber,omitempty"`
	LastAmount     *float64               `json:"lastAmount,omitempty"`
	EMI            *float64               `json:"emi,omitempty"`
	StartDate      *string                `json:"startDate,omitempty"`
	EndDate        *string                `json:"endDate,omitempty"`
	InterestRate   *float64               `json:"interestRate,omitempty"`
	PaymentMode    *domain.PaymentMode    `json:"paymentMode,omitempty" binding:"omitempty,payment_mode"`
	TotalLoan      *float64               `json:"totalLoan,omitempty"`
	PaidAmount     *float64               `json:"paidAmount,omitempty"`
	Status         *domain.LoanStatus     `json:"status,omitempty" binding:"omitempty,loan_status"`
	LoanType       *domain.LoanType       `json:"loanType,omitempty" binding:"omitempty,loan_type"`
	ProfilePhoto   *string                `json:"profilePhoto,omitempty"`
	Occupation     *string                `json:"occupation,omitempty"`
	Address        *string                `json:"address,omitempty"`
	AddrAsAadhar   *string                `json:"addressAsPerAadhar,omitempty"`
	Nave           *string                `json:"nave,omitempty"`
	Haste          *string                `json:"haste,omitempty"`
	Purava         *string                `json:"purava,omitempty"`
	Guarantors     []GuarantorRequest     `json:"guarantors,omitempty" binding:"omitempty,dive"`
	PaymentRecords []domain.PaymentRecord `json:"paymentRecords,omitempty" binding:"omitempty,dive,payment_record" swaggertype:"array,object"`
}
