package http

import (
	"campaign-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/campaigns")
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/:campaign_id", h.Get)
		api.POST("/:campaign_id/duplicate", h.Duplicate)
		api.POST("/:campaign_id/run", h.Run)
		api.POST("/:campaign_id/export", h.Export)
		api.GET("/:campaign_id/context-preview/:step_id", h.PreviewContext)

		steps := api.Group("/:campaign_id/steps/:step_id")
		{
			steps.PUT("", h.SaveManualEdit)
			steps.POST("/suggest", h.Suggest)
			steps.GET("/suggestion", h.GetSuggestion)
			steps.POST("/apply", h.ApplySuggestion)
			steps.POST("/discard", h.DiscardSuggestion)
			steps.POST("/revert", h.Revert)
		}
	}
}
