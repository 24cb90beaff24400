package usecase

import (
	"campaign-srv/internal/document"
	"campaign-srv/internal/document/repository"
	"campaign-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, l log.Logger) document.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
