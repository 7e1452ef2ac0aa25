package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

type NoticeRepository interface {
	ListNotices(ctx context.Context, accountID string) ([]domain.LegalNotice, error)
	CreateNotice(ctx context.Context, accountID string, fields domain.Fields) (*domain.LegalNotice, error)
	UpdateNotice(ctx context.Context, accountID, noticeID string, fields domain.Fields) (*domain.LegalNotice, error)
	DeleteNotice(ctx context.Context, accountID, noticeID string) error
}
