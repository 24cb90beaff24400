package http

import (
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/diff"
	"campaign-srv/internal/model"
	"campaign-srv/internal/pipeline"
	"campaign-srv/pkg/paginator"
)

type createCampaignReq struct {
	ProjectID   string `json:"project_id" binding:"required"`
	ECPName     string `json:"ecp_name" binding:"required"`
	ProblemCore string `json:"problem_core" binding:"required"`
	Country     string `json:"country"`
	Industry    string `json:"industry"`
}

func (r createCampaignReq) toInput() campaign.CreateInput {
	return campaign.CreateInput{
		ProjectID:   r.ProjectID,
		ECPName:     r.ECPName,
		ProblemCore: r.ProblemCore,
		Country:     r.Country,
		Industry:    r.Industry,
	}
}

type listCampaignsReq struct {
	ProjectID string
	PagQuery  paginator.PaginateQuery
}

type suggestReq struct {
	Instruction  string `json:"instruction" binding:"required"`
	SelectedText string `json:"selected_text"`
}

type applySuggestionReq struct {
	CandidateText string `json:"candidate_text" binding:"required"`
}

type manualEditReq struct {
	Output string `json:"output" binding:"required"`
}

type stepOutputResp struct {
	StepID      string     `json:"step_id"`
	StepName    string     `json:"step_name"`
	Output      string     `json:"output"`
	Tokens      int        `json:"tokens"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	Edited      bool       `json:"edited"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
}

type campaignResp struct {
	ID            string           `json:"id"`
	ProjectID     string           `json:"project_id"`
	ECPName       string           `json:"ecp_name"`
	ProblemCore   string           `json:"problem_core"`
	Country       string           `json:"country"`
	Industry      string           `json:"industry"`
	Status        string           `json:"status"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	CurrentStepID string           `json:"current_step_id,omitempty"`
	StepOutputs   []stepOutputResp `json:"step_outputs"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type listCampaignsResp struct {
	Campaigns  []campaignResp              `json:"campaigns"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

type runSummaryResp struct {
	StepsCompleted int    `json:"steps_completed"`
	DurationMs     int64  `json:"duration_ms"`
	Status         string `json:"status"`
}

type documentTokensResp struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Tokens     int    `json:"tokens"`
}

type contextPreviewResp struct {
	StepID      string               `json:"step_id"`
	TotalTokens int                  `json:"total_tokens"`
	Percentage  int                  `json:"percentage"`
	Level       string               `json:"level"`
	Breakdown   []documentTokensResp `json:"breakdown"`
}

type suggestionResp struct {
	CampaignID    string                 `json:"campaign_id"`
	StepID        string                 `json:"step_id"`
	Instruction   string                 `json:"instruction"`
	CandidateText string                 `json:"candidate_text"`
	Highlights    []diff.ChangeHighlight `json:"highlights"`
	Lines         []diff.Line            `json:"lines"`
}

type exportResp struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (h *handler) newCampaignResp(camp model.Campaign) campaignResp {
	outputs := make([]stepOutputResp, 0, len(camp.StepOutputs))
	for _, step := range pipeline.Steps() {
		entry, ok := camp.StepOutputs[step.ID]
		if !ok {
			continue
		}
		outputs = append(outputs, h.newStepOutputResp(step.ID, entry))
	}

	return campaignResp{
		ID:            camp.ID,
		ProjectID:     camp.ProjectID,
		ECPName:       camp.ECPName,
		ProblemCore:   camp.ProblemCore,
		Country:       camp.Country,
		Industry:      camp.Industry,
		Status:        string(camp.Status),
		ErrorMessage:  camp.ErrorMessage,
		CurrentStepID: camp.CurrentStepID,
		StepOutputs:   outputs,
		StartedAt:     camp.StartedAt,
		CompletedAt:   camp.CompletedAt,
		CreatedAt:     camp.CreatedAt,
		UpdatedAt:     camp.UpdatedAt,
	}
}

func (h *handler) newStepOutputResp(stepID string, entry model.StepOutput) stepOutputResp {
	return stepOutputResp{
		StepID:      stepID,
		StepName:    entry.StepName,
		Output:      entry.Output,
		Tokens:      entry.Tokens,
		Status:      string(entry.Status),
		Error:       entry.Error,
		Edited:      entry.Edited(),
		CompletedAt: entry.CompletedAt,
		EditedAt:    entry.EditedAt,
	}
}

func (h *handler) newListCampaignsResp(o campaign.ListOutput) listCampaignsResp {
	campaigns := make([]campaignResp, 0, len(o.Campaigns))
	for _, camp := range o.Campaigns {
		campaigns = append(campaigns, h.newCampaignResp(camp))
	}
	return listCampaignsResp{
		Campaigns:  campaigns,
		Pagination: o.Pagination.ToResponse(),
	}
}

func (h *handler) newRunSummaryResp(s campaign.RunSummary) runSummaryResp {
	return runSummaryResp{
		StepsCompleted: s.StepsCompleted,
		DurationMs:     s.Duration.Milliseconds(),
		Status:         string(s.Status),
	}
}

func (h *handler) newContextPreviewResp(p campaign.ContextPreview) contextPreviewResp {
	breakdown := make([]documentTokensResp, 0, len(p.Breakdown))
	for _, d := range p.Breakdown {
		breakdown = append(breakdown, documentTokensResp{
			DocumentID: d.DocumentID,
			Filename:   d.Filename,
			Tokens:     d.Tokens,
		})
	}
	return contextPreviewResp{
		StepID:      p.StepID,
		TotalTokens: p.TotalTokens,
		Percentage:  p.Percentage,
		Level:       string(p.Level),
		Breakdown:   breakdown,
	}
}

func (h *handler) newSuggestionResp(s campaign.Suggestion) suggestionResp {
	resp := suggestionResp{
		CampaignID:    s.CampaignID,
		StepID:        s.StepID,
		Instruction:   s.Instruction,
		CandidateText: s.CandidateText,
		Highlights:    s.Highlights,
		Lines:         s.Lines,
	}
	if resp.Highlights == nil {
		resp.Highlights = []diff.ChangeHighlight{}
	}
	if resp.Lines == nil {
		resp.Lines = []diff.Line{}
	}
	return resp
}

func (h *handler) newExportResp(o campaign.ExportOutput) exportResp {
	return exportResp{
		ObjectName: o.ObjectName,
		URL:        o.URL,
		ExpiresAt:  o.ExpiresAt,
	}
}
