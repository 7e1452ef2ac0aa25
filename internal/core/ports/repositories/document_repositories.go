package repositories

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
)

// DocumentRepository stores loan documents. Documents are immutable once created.
type DocumentRepository interface {
	ListDocuments(ctx context.Context, accountID string) ([]domain.Document, error)
	ListDocumentsByLoan(ctx context.Context, accountID, loanID string) ([]domain.Document, error)
	CreateDocument(ctx context.Context, accountID string, fields domain.Fields) (*domain.Document, error)
	DeleteDocument(ctx context.Context, accountID, documentID string) error
}
