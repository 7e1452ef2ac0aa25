package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/google/uuid"
)

type documentRepository struct {
	*BaseRepository
}

func newDocumentRepository(base *BaseRepository) portsrepo.DocumentRepository {
	return &documentRepository{BaseRepository: base}
}

var _ portsrepo.DocumentRepository = (*documentRepository)(nil)

func (r *documentRepository) toDocument(snap *portsrepo.Snapshot) (*domain.Document, error) {
	doc, err := reconstruct[domain.Document](r.BaseRepository, fromStored(snap))
	if err != nil {
		return nil, fmt.Errorf("invalid stored document %s: %w", snap.ID, err)
	}
	return doc, nil
}

func (r *documentRepository) list(ctx context.Context, accountID string, filters ...portsrepo.Filter) ([]domain.Document, error) {
	coll, err := r.collection(ctx, accountID, documentsCollection)
	if err != nil {
		return nil, err
	}
	snaps, err := r.store.List(ctx, coll, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return decodeAll(ctx, "document", snaps, r.toDocument), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, accountID string) ([]domain.Document, error) {
	return r.list(ctx, accountID)
}

func (r *documentRepository) ListDocumentsByLoan(ctx context.Context, accountID, loanID string) ([]domain.Document, error) {
	return r.list(ctx, accountID, portsrepo.Filter{Field: fieldLoanID, Value: loanID})
}

// CreateDocument stores document metadata. Inline file content is replaced by
// a generated file id and its size in KB and is never persisted.
func (r *documentRepository) CreateDocument(ctx context.Context, accountID string, fields domain.Fields) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	coll, err := r.collection(ctx, accountID, documentsCollection)
	if err != nil {
		return nil, err
	}

	data := toStored(fields)

	if _, has := data[fieldBorrowerName]; !has {
		if loanID, ok := data[fieldLoanID].(string); ok && loanID != "" {
			name, err := r.lookupBorrowerName(ctx, accountID, loanID)
			if err != nil {
				logger.Warn("Could not backfill borrower name for document",
					slog.String("loan_id", loanID), slog.String("error", err.Error()))
			} else {
				data[fieldBorrowerName] = name
			}
		}
	}

	setDefault(data, fieldUploadedAt, r.now())

	if content, ok := data[fieldFileContent].(string); ok && content != "" {
		data[fieldFileID] = uuid.NewString()
		data[fieldFileSize] = len(content) / 1024
	}
	delete(data, fieldFileContent)

	snap, err := r.create(ctx, coll, data)
	if err != nil {
		return nil, err
	}
	logger.Info("Created document", slog.String("account_id", accountID), slog.String("document_id", snap.ID))
	return r.toDocument(snap)
}

func (r *documentRepository) DeleteDocument(ctx context.Context, accountID, documentID string) error {
	coll, err := r.collection(ctx, accountID, documentsCollection)
	if err != nil {
		return err
	}
	return r.delete(ctx, coll, documentID)
}
