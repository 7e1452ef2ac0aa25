package dto

import "github.com/SscSPs/savkar_ledger/internal/core/domain"

type CreateTransactionRequest struct {
	BorrowerID   string                 `json:"borrowerId" binding:"required"`
	BorrowerName string                 `json:"borrowerName" binding:"required"`
	Amount       *float64               `json:"amount" binding:"required" example:"5000"`
	Type         domain.TransactionType `json:"type" binding:"required,transaction_type" example:"Payment"`
	Date         string                 `json:"date" binding:"required" example:"2024-03-05"`
	Description  string                 `json:"description" binding:"required"`
}
