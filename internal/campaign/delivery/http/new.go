package http

import (
	"campaign-srv/internal/campaign"
	"campaign-srv/internal/middleware"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - campaign HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      campaign.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc campaign.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
