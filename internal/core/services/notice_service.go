package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type noticeService struct {
	BaseService
	noticeRepo portsrepo.NoticeRepository
}

func NewNoticeService(noticeRepo portsrepo.NoticeRepository) portssvc.NoticeSvcFacade {
	return &noticeService{noticeRepo: noticeRepo}
}

var _ portssvc.NoticeSvcFacade = (*noticeService)(nil)

func (s *noticeService) ListNotices(ctx context.Context, accountID string) ([]domain.LegalNotice, error) {
	notices, err := s.noticeRepo.ListNotices(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

func (s *noticeService) CreateNotice(ctx context.Context, accountID string, req dto.CreateNoticeRequest) (*domain.LegalNotice, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	notice, err := s.noticeRepo.CreateNotice(ctx, accountID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to create notice")
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return notice, nil
}

func (s *noticeService) UpdateNotice(ctx context.Context, accountID, noticeID string, req dto.UpdateNoticeRequest) (*domain.LegalNotice, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	notice, err := s.noticeRepo.UpdateNotice(ctx, accountID, noticeID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update notice %s: %w", noticeID, err)
	}
	return notice, nil
}

func (s *noticeService) DeleteNotice(ctx context.Context, accountID, noticeID string) error {
	if err := s.noticeRepo.DeleteNotice(ctx, accountID, noticeID); err != nil {
		return fmt.Errorf("failed to delete notice %s: %w", noticeID, err)
	}
	return nil
}
