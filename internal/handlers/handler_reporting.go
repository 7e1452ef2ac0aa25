package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := &reportingHandler{reportingService: rs}
	rg.GET("/dashboard/summary", h.dashboardSummary)
}

// dashboardSummary godoc
// @Summary Dashboard summary
// @Description Totals issued, recovered and pending across all loans, and loan counts per status.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to compute dashboard summary"
// @Router /dashboard/summary [get]
func (h *reportingHandler) dashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Dashboard", "compute dashboard summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(*summary))
}
