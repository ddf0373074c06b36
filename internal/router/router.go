package router

import (
	"time"

	"sales_reports_backend/internal/handlers"
	"sales_reports_backend/internal/middleware"
	"sales_reports_backend/internal/salesapi"
	"sales_reports_backend/internal/services"
	"sales_reports_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application: it builds the upstream
// sales API client from the environment, wires it through the services into
// the handlers, and registers all route groups.
func Setup(engine *gin.Engine) error {
	baseURL := utils.Getenv("SALES_API_BASE_URL", "http://localhost:9000")
	apiKey := utils.Getenv("SALES_API_KEY", "")
	timeout := time.Duration(utils.GetenvInt("SALES_API_TIMEOUT_SECONDS", 10)) * time.Second
	client := salesapi.NewClient(baseURL, apiKey, timeout)

	accounts, err := services.AccountsFromEnv()
	if err != nil {
		return err
	}
	authService := services.NewAuthService(accounts)
	reportService := services.NewReportService(client)

	authHandler := handlers.NewAuthHandler(authService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupReportRoutes(authenticated, reportHandler)
		SetupDashboardRoutes(authenticated, reportHandler)
	}
	return nil
}
