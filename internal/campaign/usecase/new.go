package usecase

import (
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/document"
	"campaign-srv/pkg/gemini"
	"campaign-srv/pkg/kafka"
	"campaign-srv/pkg/log"
	"campaign-srv/pkg/tokens"
)

// Config tunes the execution and revision engines.
type Config struct {
	Limits            tokens.Limits
	GenerationTimeout time.Duration
	// AllowEmptyContext lets a step with a non-empty context requirement
	// run with zero selected documents instead of failing.
	AllowEmptyContext bool
	ExportBucket      string
}

// timeNow is swappable for tests.
var timeNow = time.Now

// sessionTTL bounds how long an unapplied suggestion candidate is kept.
const sessionTTL = 30 * time.Minute

type implUseCase struct {
	repo     repository.PostgresRepository
	sessions repository.SessionRepository
	docUC    document.UseCase
	gemini   gemini.IGemini
	producer kafka.IProducer
	storage  campaign.ObjectStorage
	cfg      Config
	l        log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	sessions repository.SessionRepository,
	docUC document.UseCase,
	gemini gemini.IGemini,
	producer kafka.IProducer,
	storage campaign.ObjectStorage,
	cfg Config,
	l log.Logger,
) campaign.UseCase {
	return &implUseCase{
		repo:     repo,
		sessions: sessions,
		docUC:    docUC,
		gemini:   gemini,
		producer: producer,
		storage:  storage,
		cfg:      cfg,
		l:        l,
	}
}
