package http

import (
	"campaign-srv/internal/document"
	"campaign-srv/internal/middleware"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - document HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      document.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc document.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
