package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness probe.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// getStoreHealth godoc
// @Summary Document store connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse "Store unreachable"
// @Router /health/store [get]
func getStoreHealth(hs portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := hs.CheckStore(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Store health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "document store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func registerHealthRoutes(r *gin.Engine, hs portssvc.HealthSvc) {
	r.GET("/health", getHealth)
	r.GET("/health/store", getStoreHealth(hs))
}
