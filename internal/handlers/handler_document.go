package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade) {
	h := &documentHandler{documentService: ds}

	documents := rg.Group("/documents")
	{
		documents.GET("", h.listDocuments)
		documents.POST("", h.createDocument)
		documents.DELETE("/:id", h.deleteDocument)
	}
}

// listDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} domain.Document
// @Failure 500 {object} dto.ErrorResponse "Failed to list documents"
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "list documents")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// createDocument godoc
// @Summary Attach a document to a loan
// @Description Inline fileContent is replaced by a generated fileId and fileSize (KB) and is never stored or returned.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} domain.Document
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create document"
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Document", "create document")
		return
	}

	logger.Info("Document created successfully", slog.String("document_id", doc.ID), slog.String("loan_id", doc.LoanID))
	c.JSON(http.StatusCreated, doc)
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to delete document"
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), accountID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Document", "delete document")
		return
	}
	c.JSON(http.StatusOK, deleted("Document"))
}
