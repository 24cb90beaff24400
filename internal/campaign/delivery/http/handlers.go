package http

import (
	"campaign-srv/internal/campaign"
	"campaign-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create a campaign
// @Description Register a new draft campaign with its configuration
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param body body createCampaignReq true "Campaign"
// @Success 200 {object} campaignResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	camp, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCampaignResp(camp))
}

// @Summary List campaigns
// @Description Page a project's campaigns, newest first
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param project_id query string true "Project ID"
// @Param page query int false "Page number"
// @Param limit query int false "Records per page"
// @Success 200 {object} listCampaignsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, campaign.ListInput{
		ProjectID: req.ProjectID,
		PagQuery:  req.PagQuery,
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListCampaignsResp(o))
}

// @Summary Get campaign detail
// @Description Return a campaign including its step outputs
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} campaignResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	camp, err := h.uc.Get(ctx, c.Param("campaign_id"))
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCampaignResp(camp))
}

// @Summary Duplicate a campaign
// @Description Copy a campaign's configuration into a fresh draft
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} campaignResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/duplicate [post]
func (h *handler) Duplicate(c *gin.Context) {
	ctx := c.Request.Context()

	camp, err := h.uc.Duplicate(ctx, c.Param("campaign_id"))
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Duplicate: usecase Duplicate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCampaignResp(camp))
}

// @Summary Run a campaign
// @Description Execute the pipeline step by step, halting on the first failure
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} runSummaryResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 422 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/run [post]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.Run(ctx, c.Param("campaign_id"))
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Run: usecase Run failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRunSummaryResp(summary))
}

// @Summary Export campaign outputs
// @Description Compile the completed step outputs into a markdown document and return a download URL
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Export(ctx, c.Param("campaign_id"))
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(out))
}

// @Summary Preview step context
// @Description Report the assembled context size and per-document breakdown for one step
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Success 200 {object} contextPreviewResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/context-preview/{step_id} [get]
func (h *handler) PreviewContext(c *gin.Context) {
	ctx := c.Request.Context()

	camp, err := h.uc.Get(ctx, c.Param("campaign_id"))
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.PreviewContext: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	preview, err := h.uc.PreviewContext(ctx, campaign.PreviewContextInput{
		ProjectID: camp.ProjectID,
		StepID:    c.Param("step_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.PreviewContext: usecase PreviewContext failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newContextPreviewResp(preview))
}

// @Summary Suggest a revision
// @Description Ask the generator for a revision candidate of one step output
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Param body body suggestReq true "Instruction"
// @Success 200 {object} suggestionResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id}/suggest [post]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Suggest: processSuggestRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	suggestion, err := h.uc.Suggest(ctx, campaign.SuggestInput{
		CampaignID:   c.Param("campaign_id"),
		StepID:       c.Param("step_id"),
		Instruction:  req.Instruction,
		SelectedText: req.SelectedText,
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Suggest: usecase Suggest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSuggestionResp(suggestion))
}

// @Summary Get the pending suggestion
// @Description Return the suggestion session pending for a step output, if any
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Success 200 {object} suggestionResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id}/suggestion [get]
func (h *handler) GetSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	suggestion, err := h.uc.GetSuggestion(ctx, campaign.StepRef{
		CampaignID: c.Param("campaign_id"),
		StepID:     c.Param("step_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.GetSuggestion: usecase GetSuggestion failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSuggestionResp(suggestion))
}

// @Summary Apply a suggestion
// @Description Commit a candidate text as the step's new output
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Param body body applySuggestionReq true "Candidate"
// @Success 200 {object} stepOutputResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id}/apply [post]
func (h *handler) ApplySuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.ApplySuggestion: processApplyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	stepID := c.Param("step_id")
	entry, err := h.uc.ApplySuggestion(ctx, campaign.ApplyInput{
		CampaignID:    c.Param("campaign_id"),
		StepID:        stepID,
		CandidateText: req.CandidateText,
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.ApplySuggestion: usecase ApplySuggestion failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStepOutputResp(stepID, entry))
}

// @Summary Discard a suggestion
// @Description Drop the pending candidate without touching the stored output
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id}/discard [post]
func (h *handler) DiscardSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.uc.DiscardSuggestion(ctx, campaign.StepRef{
		CampaignID: c.Param("campaign_id"),
		StepID:     c.Param("step_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.DiscardSuggestion: usecase DiscardSuggestion failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Save a manual edit
// @Description Store a hand-edited output, preserving the as-generated text
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Param body body manualEditReq true "Output"
// @Success 200 {object} stepOutputResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id} [put]
func (h *handler) SaveManualEdit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processManualEditRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.SaveManualEdit: processManualEditRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	stepID := c.Param("step_id")
	entry, err := h.uc.SaveManualEdit(ctx, campaign.ManualEditInput{
		CampaignID: c.Param("campaign_id"),
		StepID:     stepID,
		Output:     req.Output,
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.SaveManualEdit: usecase SaveManualEdit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStepOutputResp(stepID, entry))
}

// @Summary Revert a step output
// @Description Restore the as-generated text of an edited step output
// @Tags Revisions
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param step_id path string true "Step ID"
// @Success 200 {object} stepOutputResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/steps/{step_id}/revert [post]
func (h *handler) Revert(c *gin.Context) {
	ctx := c.Request.Context()

	stepID := c.Param("step_id")
	entry, err := h.uc.Revert(ctx, campaign.StepRef{
		CampaignID: c.Param("campaign_id"),
		StepID:     stepID,
	})
	if err != nil {
		h.l.Errorf(ctx, "campaign.delivery.http.Revert: usecase Revert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStepOutputResp(stepID, entry))
}
