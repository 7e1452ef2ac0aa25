package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type noticeHandler struct {
	noticeService portssvc.NoticeSvcFacade
}

func registerNoticeRoutes(rg *gin.RouterGroup, ns portssvc.NoticeSvcFacade) {
	h := &noticeHandler{noticeService: ns}

	notices := rg.Group("/notices")
	{
		notices.GET("", h.listNotices)
		notices.POST("", h.createNotice)
		notices.PUT("/:id", h.updateNotice)
		notices.DELETE("/:id", h.deleteNotice)
	}
}

// listNotices godoc
// @Summary List legal notices
// @Tags notices
// @Produce json
// @Success 200 {array} domain.LegalNotice
// @Failure 500 {object} dto.ErrorResponse "Failed to list notices"
// @Router /notices [get]
func (h *noticeHandler) listNotices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	notices, err := h.noticeService.ListNotices(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Notice", "list notices")
		return
	}
	c.JSON(http.StatusOK, notices)
}

// createNotice godoc
// @Summary Create a legal notice
// @Tags notices
// @Accept json
// @Produce json
// @Param notice body dto.CreateNoticeRequest true "Notice details"
// @Success 201 {object} domain.LegalNotice
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create notice"
// @Router /notices [post]
func (h *noticeHandler) createNotice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Notice", "create notice")
		return
	}

	logger.Info("Notice created successfully", slog.String("notice_id", notice.ID))
	c.JSON(http.StatusCreated, notice)
}

// updateNotice godoc
// @Summary Update a legal notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path string true "Notice ID"
// @Param notice body dto.UpdateNoticeRequest true "Fields to change"
// @Success 200 {object} domain.LegalNotice
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update notice"
// @Router /notices/{id} [put]
func (h *noticeHandler) updateNotice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	notice, err := h.noticeService.UpdateNotice(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Notice", "update notice")
		return
	}
	c.JSON(http.StatusOK, notice)
}

// deleteNotice godoc
// @Summary Delete a legal notice
// @Tags notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to delete notice"
// @Router /notices/{id} [delete]
func (h *noticeHandler) deleteNotice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), accountID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Notice", "delete notice")
		return
	}
	c.JSON(http.StatusOK, deleted("Notice"))
}
