package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/core/services"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/memory"
	"github.com/stretchr/testify/assert"
)

type unreachableStore struct {
	portsrepo.DocumentStore
}

func (unreachableStore) Ping(context.Context) error {
	return errors.New("dial tcp: connection refused")
}

func TestHealthService_CheckStore(t *testing.T) {
	assert.NoError(t, services.NewHealthService(memory.NewStore()).CheckStore(context.Background()))

	err := services.NewHealthService(unreachableStore{}).CheckStore(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}
