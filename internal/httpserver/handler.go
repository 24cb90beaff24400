package httpserver

import (
	"time"

	campaignhttp "campaign-srv/internal/campaign/delivery/http"
	campaignPostgre "campaign-srv/internal/campaign/repository/postgre"
	campaignRedis "campaign-srv/internal/campaign/repository/redis"
	campaignusecase "campaign-srv/internal/campaign/usecase"
	documenthttp "campaign-srv/internal/document/delivery/http"
	documentPostgre "campaign-srv/internal/document/repository/postgre"
	documentusecase "campaign-srv/internal/document/usecase"
	"campaign-srv/internal/middleware"
	"campaign-srv/pkg/tokens"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	documentRepo := documentPostgre.New(srv.postgresDB, srv.l)
	campaignRepo := campaignPostgre.New(srv.postgresDB, srv.l)
	sessionRepo := campaignRedis.New(srv.redisClient, srv.l)

	// Initialize usecases
	documentUC := documentusecase.New(documentRepo, srv.l)
	campaignUC := campaignusecase.New(
		campaignRepo,
		sessionRepo,
		documentUC,
		srv.gemini,
		srv.producer,
		srv.minioClient,
		campaignusecase.Config{
			Limits: tokens.Limits{
				WarnThreshold: srv.config.Tokens.WarnThreshold,
				MaxLimit:      srv.config.Tokens.MaxLimit,
			},
			GenerationTimeout: time.Duration(srv.config.Generation.TimeoutSeconds) * time.Second,
			AllowEmptyContext: srv.config.Pipeline.AllowEmptyContext,
			ExportBucket:      srv.config.MinIO.Bucket,
		},
		srv.l,
	)

	// Initialize HTTP handlers
	documentHandler := documenthttp.New(srv.l, documentUC, srv.discord)
	campaignHandler := campaignhttp.New(srv.l, campaignUC, srv.discord)

	root := srv.gin.Group("")
	documentHandler.RegisterRoutes(root, mw)
	campaignHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.Cors())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
