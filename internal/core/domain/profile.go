package domain

import "time"

// Guarantor ("jamindar") is a third party backing a loan. Guarantors are always
// embedded in a Loan or Profile, never stored on their own.
type Guarantor struct {
	ID               FlexString `json:"id,omitempty"`
	Name             string     `json:"name"`
	ResidenceAddress string     `json:"residenceAddress"`
	PermanentAddress string     `json:"permanentAddress"`
	MobileNumber     string     `json:"mobileNumber"`
}

// PaymentRecord is one row of a borrower's payment history.
//
// It is an open map so rows added by newer clients survive a round trip, but
// the keys below are the documented shape and "date" and "amount" must be
// present on every row accepted from the API.
type PaymentRecord map[string]any

const (
	PaymentRecordID     = "id"
	PaymentRecordDate   = "date"
	PaymentRecordAmount = "amount"
	PaymentRecordStatus = "status"
	PaymentRecordNote   = "note"
)

var requiredPaymentRecordKeys = []string{PaymentRecordDate, PaymentRecordAmount}

// MissingKey returns the first required key absent from the record, or "".
func (r PaymentRecord) MissingKey() string {
	for _, k := range requiredPaymentRecordKeys {
		if _, ok := r[k]; !ok {
			return k
		}
	}
	return ""
}

// Profile is extended borrower detail attached to exactly one loan.
type Profile struct {
	ID           string     `json:"id" binding:"required"`
	LoanID       FlexString `json:"loanId" binding:"required"` // Always persisted as a string
	Occupation   string     `json:"occupation"`
	ProfilePhoto *string    `json:"profilePhoto,omitempty"`
	BorrowerAddress
	Guarantors     []Guarantor     `json:"guarantors" binding:"omitempty,dive"`
	PaymentRecords []PaymentRecord `json:"paymentRecords" binding:"omitempty,dive,payment_record"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
