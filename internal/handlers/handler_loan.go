package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService      portssvc.LoanSvcFacade
	documentService  portssvc.DocumentSvcFacade
	profileService   portssvc.ProfileSvcFacade
	reportingService portssvc.ReportingService
}

func newLoanHandler(ls portssvc.LoanSvcFacade, ds portssvc.DocumentSvcFacade, ps portssvc.ProfileSvcFacade, rs portssvc.ReportingService) *loanHandler {
	return &loanHandler{
		loanService:      ls,
		documentService:  ds,
		profileService:   ps,
		reportingService: rs,
	}
}

// registerLoanRoutes registers routes related to loans and the records nested under a loan.
func registerLoanRoutes(rg *gin.RouterGroup, ls portssvc.LoanSvcFacade, ds portssvc.DocumentSvcFacade, ps portssvc.ProfileSvcFacade, rs portssvc.ReportingService) {
	h := newLoanHandler(ls, ds, ps, rs)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
		loans.GET("/defaulters", h.listDefaulters)
		loans.GET("/:id", h.getLoan)
		loans.PUT("/:id", h.updateLoan)
		loans.DELETE("/:id", h.deleteLoan)
		loans.GET("/:id/documents", h.listLoanDocuments)
		loans.GET("/:id/profile", h.getLoanProfile)
	}
}

// listLoans godoc
// @Summary List loans
// @Description Lists every loan of the account in store order. Records without a loan type read as "Cash Loan".
// @Tags loans
// @Produce json
// @Success 200 {array} domain.Loan
// @Failure 401 {object} dto.ErrorResponse "Missing caller identity (/users/me routes)"
// @Failure 500 {object} dto.ErrorResponse "Failed to list loans"
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Loan", "list loans")
		return
	}

	logger.Info("Loans listed successfully", slog.Int("count", len(loans)))
	c.JSON(http.StatusOK, loans)
}

// createLoan godoc
// @Summary Create a loan
// @Description Creates a loan record. loanType defaults to "Cash Loan".
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} domain.Loan
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Missing caller identity (/users/me routes)"
// @Failure 500 {object} dto.ErrorResponse "Failed to create loan"
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Loan", "create loan")
		return
	}

	logger.Info("Loan created successfully", slog.String("loan_id", loan.ID))
	c.JSON(http.StatusCreated, loan)
}

// getLoan godoc
// @Summary Get a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get loan"
// @Router /loans/{id} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}
	loanID := c.Param("id")

	loan, err := h.loanService.GetLoan(c.Request.Context(), accountID, loanID)
	if err != nil {
		respondServiceError(c, logger, err, "Loan", "get loan")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// updateLoan godoc
// @Summary Update a loan
// @Description Merges the supplied fields into the loan. An omitted loanType keeps the stored one.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param loan body dto.UpdateLoanRequest true "Fields to change"
// @Success 200 {object} domain.Loan
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update loan"
// @Router /loans/{id} [put]
func (h *loanHandler) updateLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}
	loanID := c.Param("id")

	var req dto.UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("loan_id", loanID))
	loan, err := h.loanService.UpdateLoan(c.Request.Context(), accountID, loanID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Loan", "update loan")
		return
	}

	logger.Info("Loan updated successfully")
	c.JSON(http.StatusOK, loan)
}

// deleteLoan godoc
// @Summary Delete a loan
// @Description Hard delete. Deleting an unknown id succeeds.
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to delete loan"
// @Router /loans/{id} [delete]
func (h *loanHandler) deleteLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}
	loanID := c.Param("id")

	if err := h.loanService.DeleteLoan(c.Request.Context(), accountID, loanID); err != nil {
		respondServiceError(c, logger, err, "Loan", "delete loan")
		return
	}

	logger.Info("Loan deleted", slog.String("loan_id", loanID))
	c.JSON(http.StatusOK, deleted("Loan"))
}

// listLoanDocuments godoc
// @Summary List documents of a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {array} domain.Document
// @Failure 500 {object} dto.ErrorResponse "Failed to list documents"
// @Router /loans/{id}/documents [get]
func (h *loanHandler) listLoanDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListDocumentsByLoan(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Document", "list documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// getLoanProfile godoc
// @Summary Get the profile of a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get profile"
// @Router /loans/{id}/profile [get]
func (h *loanHandler) getLoanProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfileByLoan(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Profile", "get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// listDefaulters godoc
// @Summary List defaulters
// @Description Loans that are not Closed, underpaid, and whose end date has passed.
// @Tags loans
// @Produce json
// @Success 200 {array} domain.Loan
// @Failure 500 {object} dto.ErrorResponse "Failed to list defaulters"
// @Router /loans/defaulters [get]
func (h *loanHandler) listDefaulters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	loans, err := h.reportingService.Defaulters(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Loan", "list defaulters")
		return
	}
	logger.Info("Defaulters listed", slog.Int("count", len(loans)))
	c.JSON(http.StatusOK, loans)
}
