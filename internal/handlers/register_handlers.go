package handlers

import (
	"log/slog"

	"github.com/SscSPs/savkar_ledger/cmd/docs"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/SscSPs/savkar_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Every ledger route is served twice: on the root bound to the operator
// account, and under /users/me bound to the caller's account.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := domain.RegisterValidations(v); err != nil {
			slog.Error("Failed to register request validations", slog.String("error", err.Error()))
		}
	}

	registerHealthRoutes(r, services.Health)

	operator := r.Group("", middleware.FixedAccount(cfg.DefaultAccountID))
	registerLedgerRoutes(operator, services)

	caller := r.Group("/users/me", middleware.CallerAccount())
	registerLedgerRoutes(caller, services)

	setupSwaggerRoutes(r, cfg)
}

func registerLedgerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerLoanRoutes(rg, services.Loan, services.Document, services.Profile, services.Reporting)
	registerDocumentRoutes(rg, services.Document)
	registerNoticeRoutes(rg, services.Notice)
	registerTransactionRoutes(rg, services.Transaction)
	registerProfileRoutes(rg, services.Profile)
	registerReportingRoutes(rg, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
