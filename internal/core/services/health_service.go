package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
)

type healthService struct {
	BaseService
	store portsrepo.DocumentStore
}

func NewHealthService(store portsrepo.DocumentStore) portssvc.HealthSvc {
	return &healthService{store: store}
}

func (s *healthService) CheckStore(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Document store ping failed")
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
