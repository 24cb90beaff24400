package model

import "time"

// CampaignStatus is the lifecycle status of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusError     CampaignStatus = "error"
)

// StepStatus is the status of a single pipeline step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusError     StepStatus = "error"
)

// Campaign represents a marketing campaign and its pipeline state.
type Campaign struct {
	ID           string
	ProjectID    string
	ECPName      string
	ProblemCore  string
	Country      string
	Industry     string
	Status       CampaignStatus
	ErrorMessage string
	// CurrentStepID is the step the pipeline is at, empty before any run.
	CurrentStepID string
	// StepOutputs maps step ID to the recorded output for that step.
	StepOutputs map[string]StepOutput
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StepOutput is the recorded result of one pipeline step.
type StepOutput struct {
	StepName string     `json:"step_name"`
	Output   string     `json:"output"`
	Tokens   int        `json:"tokens"`
	Status   StepStatus `json:"status"`
	Error    string     `json:"error,omitempty"`
	// OriginalOutput holds the as-generated text once the output has been
	// edited. Empty while the output is untouched.
	OriginalOutput string     `json:"original_output,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	EditedAt       *time.Time `json:"edited_at,omitempty"`
}

// Edited reports whether the step output has diverged from the
// as-generated text.
func (s StepOutput) Edited() bool {
	return s.OriginalOutput != "" && s.OriginalOutput != s.Output
}
