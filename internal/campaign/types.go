package campaign

import (
	"time"

	"campaign-srv/internal/diff"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
	"campaign-srv/pkg/tokens"
)

// CreateInput holds the configuration fields of a new campaign.
type CreateInput struct {
	ProjectID   string
	ECPName     string
	ProblemCore string
	Country     string
	Industry    string
}

// ListInput filters and paginates a campaign listing.
type ListInput struct {
	ProjectID string
	PagQuery  paginator.PaginateQuery
}

// ListOutput is one page of campaigns.
type ListOutput struct {
	Campaigns  []model.Campaign
	Pagination paginator.Paginator
}

// RunSummary is returned after a pipeline run finishes or halts.
type RunSummary struct {
	StepsCompleted int
	Duration       time.Duration
	Status         model.CampaignStatus
}

// PreviewContextInput identifies the step to preview context for.
type PreviewContextInput struct {
	ProjectID string
	StepID    string
}

// DocumentTokens is one document's share of an assembled context.
type DocumentTokens struct {
	DocumentID string
	Filename   string
	Tokens     int
}

// ContextPreview reports the assembled context size for one step.
type ContextPreview struct {
	StepID      string
	TotalTokens int
	Percentage  int
	Level       tokens.Level
	Breakdown   []DocumentTokens
}

// StepRef identifies one step output of a campaign.
type StepRef struct {
	CampaignID string
	StepID     string
}

// SuggestInput asks the revision engine for a rewrite suggestion.
type SuggestInput struct {
	CampaignID  string
	StepID      string
	Instruction string
	// SelectedText optionally scopes the edit to an excerpt of the
	// current output.
	SelectedText string
}

// Suggestion is a candidate rewrite, not yet committed.
type Suggestion struct {
	CampaignID    string
	StepID        string
	Instruction   string
	CandidateText string
	Highlights    []diff.ChangeHighlight
	Lines         []diff.Line
}

// ApplyInput commits a candidate text as the step's new output.
type ApplyInput struct {
	CampaignID    string
	StepID        string
	CandidateText string
}

// ManualEditInput saves a manually edited output.
type ManualEditInput struct {
	CampaignID string
	StepID     string
	Output     string
}

// ExportOutput is the result of compiling and uploading the outputs.
type ExportOutput struct {
	ObjectName string
	URL        string
	ExpiresAt  time.Time
}
