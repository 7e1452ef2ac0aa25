package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type NoticeSvcFacade interface {
	ListNotices(ctx context.Context, accountID string) ([]domain.LegalNotice, error)
	CreateNotice(ctx context.Context, accountID string, req dto.CreateNoticeRequest) (*domain.LegalNotice, error)
	UpdateNotice(ctx context.Context, accountID, noticeID string, req dto.UpdateNoticeRequest) (*domain.LegalNotice, error)
	DeleteNotice(ctx context.Context, accountID, noticeID string) error
}
