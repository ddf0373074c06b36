package router

import (
	"sales_reports_backend/internal/handlers"
	"sales_reports_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the authentication routes that require no token.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.LoginUser)
	group.POST("/refresh-token", authHandler.RefreshToken)
}

// SetupAuthenticatedAuthRoutes sets up the authentication routes behind AuthMiddleware.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		reportRoutes.GET("/top-products", reportHandler.GetTopProducts)
		reportRoutes.GET("/top-customers", reportHandler.GetTopCustomers)
		reportRoutes.GET("/monthly/summary", reportHandler.GetMonthlySummary)
		reportRoutes.GET("/monthly/top-customers", reportHandler.GetMonthlyTopCustomers)
		reportRoutes.GET("/monthly/top-products", reportHandler.GetMonthlyTopProducts)
		reportRoutes.GET("/customer-purchases", reportHandler.GetCustomerPurchases)
	}
}

// SetupDashboardRoutes sets up the dashboard routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	dashboardRoutes := authenticatedGroup.Group("/dashboard")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		dashboardRoutes.GET("/summary", reportHandler.GetDashboardSummary)
	}
}
