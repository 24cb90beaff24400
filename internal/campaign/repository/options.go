package repository

import (
	"time"

	"campaign-srv/internal/model"
)

type CreateCampaignOptions struct {
	ProjectID   string
	ECPName     string
	ProblemCore string
	Country     string
	Industry    string
}

type ListCampaignsOptions struct {
	ProjectID string
	Limit     int64
	Offset    int64
}

type FinishRunOptions struct {
	ID            string
	Status        model.CampaignStatus
	ErrorMessage  string
	CurrentStepID string
	CompletedAt   time.Time
}
