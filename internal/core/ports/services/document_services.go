package services

import (
	"context"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type DocumentSvcFacade interface {
	ListDocuments(ctx context.Context, accountID string) ([]domain.Document, error)
	ListDocumentsByLoan(ctx context.Context, accountID, loanID string) ([]domain.Document, error)
	CreateDocument(ctx context.Context, accountID string, req dto.CreateDocumentRequest) (*domain.Document, error)
	DeleteDocument(ctx context.Context, accountID, documentID string) error
}
