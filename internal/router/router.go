package router

import (
	"github.com/gin-gonic/gin"

	"hungerguard/internal/handler"
	"hungerguard/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	planH *handler.PlanHandler,
	dashboardH *handler.DashboardHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Plan generation
	r.POST("/generate_plan", planH.GeneratePlan)

	// Reference datasets
	r.GET("/system_status", dashboardH.SystemStatus)
	r.GET("/inventory", dashboardH.Inventory)
	r.GET("/demand", dashboardH.Demand)
	r.GET("/logistics", dashboardH.Logistics)
	r.GET("/storage", dashboardH.Storage)
	r.GET("/farmers", dashboardH.Farmers)

	// Dashboard aggregates
	dashboard := r.Group("/dashboard")
	dashboard.GET("/stats", dashboardH.Stats)
	dashboard.GET("/inventory-flow", dashboardH.InventoryFlow)
	dashboard.GET("/network-status", dashboardH.NetworkStatus)
	dashboard.GET("/waste-reduction", dashboardH.WasteReduction)
	dashboard.GET("/export", exportH.Export)

	return r
}
