package dto

import "github.com/SscSPs/savkar_ledger/internal/core/domain"

type CreateNoticeRequest struct {
	BorrowerID   string              `json:"borrowerId" binding:"required"`
	BorrowerName string              `json:"borrowerName" binding:"required"`
	AmountDue    *float64            `json:"amountDue" binding:"required" example:"15000"`
	NoticeDate   string              `json:"noticeDate" binding:"required" example:"2024-03-01"`
	Status       domain.NoticeStatus `json:"status" binding:"required,notice_status" example:"Pending"`
	Description  string              `json:"description" binding:"required"`
}

type UpdateNoticeRequest struct {
	BorrowerID   *string              `json:"borrowerId,omitempty"`
	BorrowerName *string              `json:"borrowerName,omitempty"`
	AmountDue    *float64             `json:"amountDue,omitempty"`
	NoticeDate   *string              `json:"noticeDate,omitempty"`
	Status       *domain.NoticeStatus `json:"status,omitempty" binding:"omitempty,notice_status"`
	Description  *string              `json:"description,omitempty"`
}
