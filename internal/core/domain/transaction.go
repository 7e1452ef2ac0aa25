package domain

import "time"

// Transaction records a money movement against a borrower. Transactions are
// append-only.
type Transaction struct {
	ID           string          `json:"id" binding:"required"`
	BorrowerID   string          `json:"borrowerId" binding:"required"`
	BorrowerName string          `json:"borrowerName" binding:"required"`
	Amount       float64         `json:"amount"`
	Type         TransactionType `json:"type" binding:"transaction_type"`
	Date         string          `json:"date" binding:"required"`
	Description  string          `json:"description"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
}
