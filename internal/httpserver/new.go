package httpserver

import (
	"database/sql"
	"errors"

	"campaign-srv/config"
	"campaign-srv/pkg/discord"
	"campaign-srv/pkg/gemini"
	"campaign-srv/pkg/kafka"
	"campaign-srv/pkg/log"
	pkgMinio "campaign-srv/pkg/minio"
	pkgRedis "campaign-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Backend clients
	config      *config.Config
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	minioClient pkgMinio.MinIO
	producer    kafka.IProducer
	gemini      gemini.IGemini

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Backend clients
	Config      *config.Config
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	MinIOClient pkgMinio.MinIO
	// Producer is optional: without a broker the service runs but emits
	// no lifecycle events.
	Producer kafka.IProducer
	Gemini   gemini.IGemini

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.Default(),
		l:           logger,
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		config:      cfg.Config,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		minioClient: cfg.MinIOClient,
		producer:    cfg.Producer,
		gemini:      cfg.Gemini,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.gemini == nil {
		return errors.New("gemini client is required")
	}

	return nil
}
