package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/handlers"
)

const (
	PathRates     = "/rates"
	PathRFQs      = "/rfqs"
	PathDashboard = "/dashboard"
	PathInternal  = "/internal"
)

func addRateRoutes(rg *gin.RouterGroup, h *handlers.RateHandler) {
	rates := rg.Group(PathRates)
	{
		rates.GET("", h.ListRates)
		rates.POST("", h.CreateRate)
		rates.POST("/lookup", h.LookupRate)
		rates.GET("/:id", h.GetRate)
		rates.PATCH("/:id", h.UpdateRate)
	}
}

func addRFQRoutes(rg *gin.RouterGroup, h *handlers.RFQHandler) {
	rfqs := rg.Group(PathRFQs)
	{
		rfqs.GET("", h.ListRFQs)
		rfqs.POST("/upload", h.Upload)
		// Static segment before the :id wildcard.
		rfqs.GET("/agents/workload", h.AgentWorkload)
		rfqs.GET("/:id", h.GetRFQ)
		rfqs.POST("/:id/assign-rate", h.AssignRate)
		rfqs.POST("/:id/submit-review", h.SubmitReview)
		rfqs.POST("/:id/approve", h.Approve)
		rfqs.POST("/:id/cancel", h.Cancel)
		rfqs.PATCH("/:id/assign", h.AssignAgent)
		rfqs.GET("/:id/export", h.Export)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/overview", h.Overview)
		dashboard.GET("/sla-alerts", h.SLAAlerts)
		dashboard.GET("/sla-statistics", h.SLAStatistics)
	}
}

func addInternalRoutes(rg *gin.RouterGroup, h *handlers.InternalHandler) {
	internal := rg.Group(PathInternal)
	{
		internal.POST("/sla/run", h.RunSLACheck)
	}
}
