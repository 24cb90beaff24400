package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/model"
	"campaign-srv/internal/pipeline"
	"campaign-srv/pkg/tokens"
)

// Run executes the full pipeline for one campaign: each step's output is
// persisted as soon as it is generated, and the first failure halts the
// run with the completed outputs intact.
func (uc *implUseCase) Run(ctx context.Context, id string) (campaign.RunSummary, error) {
	camp, err := uc.getCampaign(ctx, id)
	if err != nil {
		return campaign.RunSummary{}, err
	}

	start := timeNow()
	won, err := uc.repo.TryMarkRunning(ctx, id, start)
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Run: mark running failed: %v", err)
		return campaign.RunSummary{}, err
	}
	if !won {
		return campaign.RunSummary{}, campaign.ErrAlreadyRunning
	}

	uc.publishEvent(ctx, eventCampaignStarted, camp)

	steps := pipeline.Steps()

	// Budget pre-check: the total projected context load across all steps
	// must stay under the hard limit before any generation happens.
	totalTokens := 0
	for _, step := range steps {
		ac, err := uc.assembleContext(ctx, camp.ProjectID, step)
		if err != nil {
			return uc.failRun(ctx, camp, step.ID, start, 0, err)
		}
		totalTokens += ac.Tokens
	}
	if uc.cfg.Limits.Classify(totalTokens) == tokens.LevelExceeded {
		uc.l.Warnf(ctx, "campaign.usecase.Run: budget exceeded for %s: %d tokens", id, totalTokens)
		return uc.failRun(ctx, camp, "", start, 0, campaign.ErrBudgetExceeded)
	}

	completed := 0
	for _, step := range steps {
		if err := uc.repo.SetCurrentStep(ctx, id, step.ID); err != nil {
			uc.l.Errorf(ctx, "campaign.usecase.Run: set current step failed: %v", err)
			return uc.failRun(ctx, camp, step.ID, start, completed, err)
		}

		// Selections may have changed between the pre-check and this step,
		// so the context is assembled fresh.
		ac, err := uc.assembleContext(ctx, camp.ProjectID, step)
		if err != nil {
			return uc.failRun(ctx, camp, step.ID, start, completed, err)
		}

		output, err := uc.executeStep(ctx, camp, step, ac)
		if err != nil {
			uc.l.Errorf(ctx, "campaign.usecase.Run: step %s failed for %s: %v", step.ID, id, err)
			return uc.failRun(ctx, camp, step.ID, start, completed, fmt.Errorf("%w: %s: %v", campaign.ErrGenerationFailed, step.Name, err))
		}

		if err := uc.repo.SaveStepOutput(ctx, id, step.ID, output); err != nil {
			uc.l.Errorf(ctx, "campaign.usecase.Run: save step output failed: %v", err)
			return uc.failRun(ctx, camp, step.ID, start, completed, err)
		}
		completed++
	}

	now := timeNow()
	if err := uc.repo.FinishRun(ctx, repository.FinishRunOptions{
		ID:          id,
		Status:      model.CampaignStatusCompleted,
		CompletedAt: now,
	}); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Run: finish failed: %v", err)
		return campaign.RunSummary{}, err
	}

	uc.publishEvent(ctx, eventCampaignCompleted, camp)
	uc.l.Infof(ctx, "campaign.usecase.Run: campaign %s completed %d steps in %s", id, completed, now.Sub(start))

	return campaign.RunSummary{
		StepsCompleted: completed,
		Duration:       now.Sub(start),
		Status:         model.CampaignStatusCompleted,
	}, nil
}

// executeStep renders the step prompt and calls the generator under the
// configured timeout.
func (uc *implUseCase) executeStep(ctx context.Context, camp model.Campaign, step pipeline.StepDefinition, ac assembledContext) (model.StepOutput, error) {
	prompt := step.RenderPrompt(pipeline.Vars{
		ECPName:     camp.ECPName,
		ProblemCore: camp.ProblemCore,
		Country:     camp.Country,
		Industry:    camp.Industry,
		Context:     ac.Text,
	})

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	res, err := uc.gemini.GenerateContent(genCtx, prompt)
	if err != nil {
		return model.StepOutput{}, err
	}
	if strings.TrimSpace(res.Text) == "" {
		return model.StepOutput{}, errors.New("empty generation result")
	}

	count := res.TotalTokens
	if count <= 0 {
		count = tokens.Estimate(res.Text)
	}

	now := timeNow()
	return model.StepOutput{
		StepName:    step.Name,
		Output:      res.Text,
		Tokens:      count,
		Status:      model.StepStatusCompleted,
		CompletedAt: &now,
	}, nil
}

// failRun records the halted state and surfaces the cause. The outputs
// completed before the failure stay persisted.
func (uc *implUseCase) failRun(ctx context.Context, camp model.Campaign, stepID string, start time.Time, completed int, cause error) (campaign.RunSummary, error) {
	now := timeNow()
	if err := uc.repo.FinishRun(ctx, repository.FinishRunOptions{
		ID:            camp.ID,
		Status:        model.CampaignStatusError,
		ErrorMessage:  cause.Error(),
		CurrentStepID: stepID,
		CompletedAt:   now,
	}); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.failRun: %v", err)
	}

	uc.publishEvent(ctx, eventCampaignFailed, camp)

	return campaign.RunSummary{
		StepsCompleted: completed,
		Duration:       now.Sub(start),
		Status:         model.CampaignStatusError,
	}, cause
}
