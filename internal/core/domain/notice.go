package domain

import "time"

// LegalNotice is a demand notice served on a borrower.
type LegalNotice struct {
	ID           string       `json:"id" binding:"required"`
	BorrowerID   string       `json:"borrowerId" binding:"required"`
	BorrowerName string       `json:"borrowerName" binding:"required"`
	AmountDue    float64      `json:"amountDue"`
	NoticeDate   string       `json:"noticeDate" binding:"required"`
	Status       NoticeStatus `json:"status" binding:"notice_status"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"` // Absent on notices written before updates were stamped
}
