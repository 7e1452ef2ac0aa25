package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Store           DocumentStore
	AccountRepo     AccountRepository
	LoanRepo        LoanRepositoryFacade
	DocumentRepo    DocumentRepository
	NoticeRepo      NoticeRepository
	TransactionRepo TransactionRepository
	ProfileRepo     ProfileRepositoryFacade
}
