package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
)

type noticeRepository struct {
	*BaseRepository
}

func newNoticeRepository(base *BaseRepository) portsrepo.NoticeRepository {
	return &noticeRepository{BaseRepository: base}
}

var _ portsrepo.NoticeRepository = (*noticeRepository)(nil)

func (r *noticeRepository) toNotice(snap *portsrepo.Snapshot) (*domain.LegalNotice, error) {
	notice, err := reconstruct[domain.LegalNotice](r.BaseRepository, fromStored(snap))
	if err != nil {
		return nil, fmt.Errorf("invalid stored notice %s: %w", snap.ID, err)
	}
	return notice, nil
}

func (r *noticeRepository) ListNotices(ctx context.Context, accountID string) ([]domain.LegalNotice, error) {
	coll, err := r.collection(ctx, accountID, noticesCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return decodeAll(ctx, "notice", snaps, r.toNotice), nil
}

func (r *noticeRepository) CreateNotice(ctx context.Context, accountID string, fields domain.Fields) (*domain.LegalNotice, error) {
	coll, err := r.collection(ctx, accountID, noticesCollection)
	if err != nil {
		return nil, err
	}
	data := toStored(fields)
	now := r.now()
	setDefault(data, fieldCreatedAt, now)
	setDefault(data, fieldUpdatedAt, now)

	snap, err := r.create(ctx, coll, data)
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Created notice", slog.String("account_id", accountID), slog.String("notice_id", snap.ID))
	return r.toNotice(snap)
}

func (r *noticeRepository) UpdateNotice(ctx context.Context, accountID, noticeID string, fields domain.Fields) (*domain.LegalNotice, error) {
	coll, err := r.collection(ctx, accountID, noticesCollection)
	if err != nil {
		return nil, err
	}
	data := toStored(fields)
	delete(data, fieldCreatedAt)
	data[fieldUpdatedAt] = r.now()

	snap, err := r.update(ctx, coll, noticeID, data)
	if err != nil {
		return nil, err
	}
	return r.toNotice(snap)
}

func (r *noticeRepository) DeleteNotice(ctx context.Context, accountID, noticeID string) error {
	coll, err := r.collection(ctx, accountID, noticesCollection)
	if err != nil {
		return err
	}
	return r.delete(ctx, coll, noticeID)
}
