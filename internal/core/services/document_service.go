package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
)

type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepository
}

func NewDocumentService(documentRepo portsrepo.DocumentRepository) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) ListDocuments(ctx context.Context, accountID string) ([]domain.Document, error) {
	docs, err := s.documentRepo.ListDocuments(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

func (s *documentService) ListDocumentsByLoan(ctx context.Context, accountID, loanID string) ([]domain.Document, error) {
	docs, err := s.documentRepo.ListDocumentsByLoan(ctx, accountID, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents of loan %s: %w", loanID, err)
	}
	s.LogDebug(ctx, "Documents listed for loan", slog.String("loan_id", loanID), slog.Int("count", len(docs)))
	return docs, nil
}

func (s *documentService) CreateDocument(ctx context.Context, accountID string, req dto.CreateDocumentRequest) (*domain.Document, error) {
	fields, err := dto.ToFields(req)
	if err != nil {
		return nil, err
	}
	doc, err := s.documentRepo.CreateDocument(ctx, accountID, fields)
	if err != nil {
		s.LogError(ctx, err, "Failed to create document", slog.String("loan_id", req.LoanID))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, accountID, documentID string) error {
	if err := s.documentRepo.DeleteDocument(ctx, accountID, documentID); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	return nil
}
