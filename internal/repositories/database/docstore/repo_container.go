package docstore

import (
	"time"

	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on one shared store.
// A nil clock uses the current UTC time.
func NewRepositoryProvider(store portsrepo.DocumentStore, now func() time.Time) portsrepo.RepositoryProvider {
	base := newBaseRepository(store, now)

	return portsrepo.RepositoryProvider{
		Store:           store,
		AccountRepo:     base,
		LoanRepo:        newLoanRepository(base),
		DocumentRepo:    newDocumentRepository(base),
		NoticeRepo:      newNoticeRepository(base),
		TransactionRepo: newTransactionRepository(base),
		ProfileRepo:     newProfileRepository(base),
	}
}
