package http

import (
	"campaign-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/documents")
	{
		api.POST("", h.Create)
		api.GET("", h.List)
		api.GET("/selections/:step_id", h.GetSelection)
		api.PUT("/selections/:step_id", h.SaveSelection)
		api.GET("/:document_id", h.Get)
		api.DELETE("/:document_id", h.Delete)
	}
}
