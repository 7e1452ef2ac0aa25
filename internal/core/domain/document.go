package domain

import "time"

// Document is an identity or collateral paper attached to a loan.
// Binary content is never held here; FileID references it instead.
type Document struct {
	ID           string    `json:"id" binding:"required"`
	LoanID       string    `json:"loanId" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Type         string    `json:"type" binding:"required"` // Free-form tag, e.g. "ID Proof"
	UploadedAt   time.Time `json:"uploadedAt"`
	FileName     *string   `json:"fileName,omitempty"`
	BorrowerName *string   `json:"borrowerName,omitempty"`
	FileID       *string   `json:"fileId,omitempty"`
	FileSize     *int64    `json:"fileSize,omitempty"` // KB
}
