package services

import (
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, reportingOpts ...ReportingServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Loan:        NewLoanService(repos.LoanRepo),
		Document:    NewDocumentService(repos.DocumentRepo),
		Notice:      NewNoticeService(repos.NoticeRepo),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Profile:     NewProfileService(repos.ProfileRepo),
		Reporting:   NewReportingService(repos.LoanRepo, reportingOpts...),
		Health:      NewHealthService(repos.Store),
	}
}
