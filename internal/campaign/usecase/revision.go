package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/diff"
	"campaign-srv/internal/model"
	"campaign-srv/internal/pipeline"
)

const revisionPromptTemplate = `You are revising a piece of marketing campaign content.

Current content:
---
%s
---

Revision instruction: %s
%s
Rewrite the full content applying the instruction. Keep everything that the
instruction does not touch unchanged. Return only the revised content, with
no commentary.`

// Suggest asks the generator for a revision candidate of one step output.
// The candidate is held in a session until applied or discarded; only one
// suggestion may be in flight per step output.
func (uc *implUseCase) Suggest(ctx context.Context, input campaign.SuggestInput) (campaign.Suggestion, error) {
	if strings.TrimSpace(input.Instruction) == "" {
		return campaign.Suggestion{}, campaign.ErrInstructionRequired
	}

	camp, entry, err := uc.getStepOutput(ctx, input.CampaignID, input.StepID)
	if err != nil {
		return campaign.Suggestion{}, err
	}
	if camp.Status == model.CampaignStatusRunning {
		return campaign.Suggestion{}, campaign.ErrCampaignRunning
	}

	lockTTL := uc.cfg.GenerationTimeout + 10*time.Second
	locked, err := uc.sessions.AcquireSuggestionLock(ctx, input.CampaignID, input.StepID, lockTTL)
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Suggest: acquire lock failed: %v", err)
		return campaign.Suggestion{}, err
	}
	if !locked {
		return campaign.Suggestion{}, campaign.ErrSuggestionInFlight
	}
	defer func() {
		if err := uc.sessions.ReleaseSuggestionLock(ctx, input.CampaignID, input.StepID); err != nil {
			uc.l.Warnf(ctx, "campaign.usecase.Suggest: release lock failed: %v", err)
		}
	}()

	excerpt := ""
	if strings.TrimSpace(input.SelectedText) != "" {
		excerpt = fmt.Sprintf("\nApply the instruction only to this excerpt:\n---\n%s\n---\n", input.SelectedText)
	}
	prompt := fmt.Sprintf(revisionPromptTemplate, entry.Output, input.Instruction, excerpt)

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	res, err := uc.gemini.GenerateContent(genCtx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Suggest: generation failed: %v", err)
		return campaign.Suggestion{}, campaign.ErrGenerationFailed
	}
	candidate := strings.TrimSpace(res.Text)
	if candidate == "" {
		return campaign.Suggestion{}, campaign.ErrGenerationFailed
	}

	if err := uc.sessions.SaveSession(ctx, repository.SuggestionSession{
		CampaignID:    input.CampaignID,
		StepID:        input.StepID,
		Instruction:   input.Instruction,
		CandidateText: candidate,
		CreatedAt:     timeNow(),
	}, sessionTTL); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Suggest: save session failed: %v", err)
		return campaign.Suggestion{}, err
	}

	return campaign.Suggestion{
		CampaignID:    input.CampaignID,
		StepID:        input.StepID,
		Instruction:   input.Instruction,
		CandidateText: candidate,
		Highlights:    diff.ComputeHighlights(entry.Output, candidate),
		Lines:         diff.TextDiff(entry.Output, candidate),
	}, nil
}

// GetSuggestion returns the pending session for a step output. The diff
// is recomputed against the current output, so it stays accurate even if
// the output was edited after the suggestion was generated.
func (uc *implUseCase) GetSuggestion(ctx context.Context, input campaign.StepRef) (campaign.Suggestion, error) {
	_, entry, err := uc.getStepOutput(ctx, input.CampaignID, input.StepID)
	if err != nil {
		return campaign.Suggestion{}, err
	}

	sess, err := uc.sessions.GetSession(ctx, input.CampaignID, input.StepID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return campaign.Suggestion{}, campaign.ErrNoPendingSuggestion
		}
		uc.l.Errorf(ctx, "campaign.usecase.GetSuggestion: get session failed: %v", err)
		return campaign.Suggestion{}, err
	}

	return campaign.Suggestion{
		CampaignID:    input.CampaignID,
		StepID:        input.StepID,
		Instruction:   sess.Instruction,
		CandidateText: sess.CandidateText,
		Highlights:    diff.ComputeHighlights(entry.Output, sess.CandidateText),
		Lines:         diff.TextDiff(entry.Output, sess.CandidateText),
	}, nil
}

// ApplySuggestion commits a candidate as the step's new output. The very
// first commit stashes the as-generated text so it can always be
// reverted to.
func (uc *implUseCase) ApplySuggestion(ctx context.Context, input campaign.ApplyInput) (model.StepOutput, error) {
	if strings.TrimSpace(input.CandidateText) == "" {
		return model.StepOutput{}, campaign.ErrCandidateRequired
	}

	entry, err := uc.commitOutput(ctx, input.CampaignID, input.StepID, input.CandidateText)
	if err != nil {
		return model.StepOutput{}, err
	}

	if err := uc.sessions.DeleteSession(ctx, input.CampaignID, input.StepID); err != nil {
		uc.l.Warnf(ctx, "campaign.usecase.ApplySuggestion: delete session failed: %v", err)
	}
	return entry, nil
}

// DiscardSuggestion drops the pending candidate without touching the
// stored output. Discarding when no session exists is a no-op.
func (uc *implUseCase) DiscardSuggestion(ctx context.Context, input campaign.StepRef) error {
	if !pipeline.ValidStepID(input.StepID) {
		return campaign.ErrInvalidStep
	}
	if err := uc.sessions.DeleteSession(ctx, input.CampaignID, input.StepID); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.DiscardSuggestion: %v", err)
		return err
	}
	return nil
}

// SaveManualEdit stores a hand-edited output, with the same
// original-preservation rule as ApplySuggestion.
func (uc *implUseCase) SaveManualEdit(ctx context.Context, input campaign.ManualEditInput) (model.StepOutput, error) {
	if strings.TrimSpace(input.Output) == "" {
		return model.StepOutput{}, campaign.ErrCandidateRequired
	}
	return uc.commitOutput(ctx, input.CampaignID, input.StepID, input.Output)
}

// Revert restores the as-generated text. The preserved original is kept,
// so revert is idempotent and the step stays revertible after further
// edits.
func (uc *implUseCase) Revert(ctx context.Context, input campaign.StepRef) (model.StepOutput, error) {
	camp, entry, err := uc.getStepOutput(ctx, input.CampaignID, input.StepID)
	if err != nil {
		return model.StepOutput{}, err
	}
	if camp.Status == model.CampaignStatusRunning {
		return model.StepOutput{}, campaign.ErrCampaignRunning
	}
	if entry.OriginalOutput == "" {
		return model.StepOutput{}, campaign.ErrNothingToRevert
	}

	entry.Output = entry.OriginalOutput
	entry.EditedAt = nil

	if err := uc.repo.SaveStepOutput(ctx, input.CampaignID, input.StepID, entry); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Revert: %v", err)
		return model.StepOutput{}, err
	}
	return entry, nil
}

// commitOutput writes newText as the step's output, preserving the
// original text on the first divergence.
func (uc *implUseCase) commitOutput(ctx context.Context, campaignID, stepID, newText string) (model.StepOutput, error) {
	camp, entry, err := uc.getStepOutput(ctx, campaignID, stepID)
	if err != nil {
		return model.StepOutput{}, err
	}
	if camp.Status == model.CampaignStatusRunning {
		return model.StepOutput{}, campaign.ErrCampaignRunning
	}

	if entry.OriginalOutput == "" {
		entry.OriginalOutput = entry.Output
	}
	entry.Output = newText
	now := timeNow()
	entry.EditedAt = &now

	if err := uc.repo.SaveStepOutput(ctx, campaignID, stepID, entry); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.commitOutput: %v", err)
		return model.StepOutput{}, err
	}
	return entry, nil
}

// getStepOutput loads the campaign and the completed output entry for
// one step.
func (uc *implUseCase) getStepOutput(ctx context.Context, campaignID, stepID string) (model.Campaign, model.StepOutput, error) {
	if !pipeline.ValidStepID(stepID) {
		return model.Campaign{}, model.StepOutput{}, campaign.ErrInvalidStep
	}

	camp, err := uc.getCampaign(ctx, campaignID)
	if err != nil {
		return model.Campaign{}, model.StepOutput{}, err
	}

	entry, ok := camp.StepOutputs[stepID]
	if !ok || entry.Status != model.StepStatusCompleted {
		return model.Campaign{}, model.StepOutput{}, campaign.ErrStepOutputMissing
	}
	return camp, entry, nil
}
