package repository

import (
	"context"
	"time"

	"campaign-srv/internal/model"
)

// PostgresRepository persists campaign records.
type PostgresRepository interface {
	CreateCampaign(ctx context.Context, opt CreateCampaignOptions) (model.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (model.Campaign, error)
	ListCampaigns(ctx context.Context, opt ListCampaignsOptions) ([]model.Campaign, int64, error)

	// TryMarkRunning atomically moves the campaign to running unless a
	// run is already active. Returns false when the guard lost the race.
	TryMarkRunning(ctx context.Context, id string, startedAt time.Time) (bool, error)
	// FinishRun records the terminal status of a run.
	FinishRun(ctx context.Context, opt FinishRunOptions) error
	SetCurrentStep(ctx context.Context, id, stepID string) error
	// SaveStepOutput upserts one entry of the step_outputs mapping.
	SaveStepOutput(ctx context.Context, id, stepID string, output model.StepOutput) error
}

// SessionRepository holds the transient suggestion session state and
// the per-step-output in-flight locks.
type SessionRepository interface {
	// AcquireSuggestionLock returns false when a suggestion is already
	// in flight for the step output.
	AcquireSuggestionLock(ctx context.Context, campaignID, stepID string, ttl time.Duration) (bool, error)
	ReleaseSuggestionLock(ctx context.Context, campaignID, stepID string) error

	SaveSession(ctx context.Context, sess SuggestionSession, ttl time.Duration) error
	GetSession(ctx context.Context, campaignID, stepID string) (SuggestionSession, error)
	DeleteSession(ctx context.Context, campaignID, stepID string) error
}

// SuggestionSession is a pending revision candidate for one step output.
type SuggestionSession struct {
	CampaignID    string    `json:"campaign_id"`
	StepID        string    `json:"step_id"`
	Instruction   string    `json:"instruction"`
	CandidateText string    `json:"candidate_text"`
	CreatedAt     time.Time `json:"created_at"`
}
