package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/gemini"
	"campaign-srv/pkg/tokens"
)

func TestRunCompletesAllSteps(t *testing.T) {
	e := newTestEngine(Config{})
	e.selectDocsForAllSteps()
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	e.gemini.generate = func(prompt string) (*gemini.GenerateResult, error) {
		return &gemini.GenerateResult{Text: "output for: " + prompt[:20], TotalTokens: 42}, nil
	}

	summary, err := e.uc.Run(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.StepsCompleted != 4 {
		t.Errorf("steps completed = %d, want 4", summary.StepsCompleted)
	}
	if summary.Status != model.CampaignStatusCompleted {
		t.Errorf("summary status = %s, want completed", summary.Status)
	}

	got := e.repo.campaigns[camp.ID]
	if got.Status != model.CampaignStatusCompleted {
		t.Errorf("campaign status = %s, want completed", got.Status)
	}
	if got.CurrentStepID != "" {
		t.Errorf("current step = %q, want empty after a completed run", got.CurrentStepID)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if len(got.StepOutputs) != 4 {
		t.Fatalf("step outputs = %d, want 4", len(got.StepOutputs))
	}
	for stepID, entry := range got.StepOutputs {
		if entry.Status != model.StepStatusCompleted {
			t.Errorf("step %s status = %s, want completed", stepID, entry.Status)
		}
		if entry.Tokens != 42 {
			t.Errorf("step %s tokens = %d, want 42 from the API usage", stepID, entry.Tokens)
		}
		if entry.CompletedAt == nil {
			t.Errorf("step %s completed_at not set", stepID)
		}
	}
}

func TestRunHaltsOnFirstFailure(t *testing.T) {
	e := newTestEngine(Config{})
	e.selectDocsForAllSteps()
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	calls := 0
	e.gemini.generate = func(string) (*gemini.GenerateResult, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("upstream timeout")
		}
		return &gemini.GenerateResult{Text: "step output"}, nil
	}

	summary, err := e.uc.Run(context.Background(), camp.ID)
	if !errors.Is(err, campaign.ErrGenerationFailed) {
		t.Fatalf("Run error = %v, want ErrGenerationFailed", err)
	}
	if summary.StepsCompleted != 1 {
		t.Errorf("steps completed = %d, want 1", summary.StepsCompleted)
	}
	if calls != 2 {
		t.Errorf("generator calls = %d, want 2 (halt after the failing step)", calls)
	}

	got := e.repo.campaigns[camp.ID]
	if got.Status != model.CampaignStatusError {
		t.Errorf("campaign status = %s, want error", got.Status)
	}
	if got.CurrentStepID != "step_2" {
		t.Errorf("current step = %q, want step_2", got.CurrentStepID)
	}
	if got.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set on a halted run")
	}
	if len(got.StepOutputs) != 1 {
		t.Fatalf("step outputs = %d, want only the completed step", len(got.StepOutputs))
	}
	if _, ok := got.StepOutputs["step_1"]; !ok {
		t.Error("step_1 output missing")
	}
}

func TestRunAbortsWhenBudgetExceeded(t *testing.T) {
	e := newTestEngine(Config{Limits: tokens.Limits{WarnThreshold: 0.8, MaxLimit: 100}})
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	// 500 chars per document puts the 4-step total far over 100 tokens.
	for _, stepID := range []string{"step_1", "step_2", "step_3", "step_4"} {
		e.docs.selected[stepID] = []model.Document{{
			ID:       "doc-big",
			Filename: "big.md",
			Content:  strings.Repeat("x", 500),
			Tokens:   125,
		}}
	}

	_, err := e.uc.Run(context.Background(), camp.ID)
	if !errors.Is(err, campaign.ErrBudgetExceeded) {
		t.Fatalf("Run error = %v, want ErrBudgetExceeded", err)
	}
	if len(e.gemini.prompts) != 0 {
		t.Errorf("generator called %d times before the budget check", len(e.gemini.prompts))
	}

	got := e.repo.campaigns[camp.ID]
	if got.Status != model.CampaignStatusError {
		t.Errorf("campaign status = %s, want error", got.Status)
	}
	if len(got.StepOutputs) != 0 {
		t.Errorf("step outputs = %d, want none", len(got.StepOutputs))
	}
}

func TestRunRejectsConcurrentStart(t *testing.T) {
	e := newTestEngine(Config{})
	e.selectDocsForAllSteps()
	camp := e.seedCampaign(model.CampaignStatusRunning, nil)

	_, err := e.uc.Run(context.Background(), camp.ID)
	if !errors.Is(err, campaign.ErrAlreadyRunning) {
		t.Fatalf("Run error = %v, want ErrAlreadyRunning", err)
	}
	if len(e.gemini.prompts) != 0 {
		t.Error("generator must not be called when the run guard rejects")
	}
}

func TestRunFailsWithoutRequiredContext(t *testing.T) {
	e := newTestEngine(Config{})
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	_, err := e.uc.Run(context.Background(), camp.ID)
	if !errors.Is(err, campaign.ErrNoContextSelected) {
		t.Fatalf("Run error = %v, want ErrNoContextSelected", err)
	}
	if e.repo.campaigns[camp.ID].Status != model.CampaignStatusError {
		t.Errorf("campaign status = %s, want error", e.repo.campaigns[camp.ID].Status)
	}
}

func TestRunAllowsEmptyContextWhenConfigured(t *testing.T) {
	e := newTestEngine(Config{AllowEmptyContext: true})
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	summary, err := e.uc.Run(context.Background(), camp.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.StepsCompleted != 4 {
		t.Errorf("steps completed = %d, want 4", summary.StepsCompleted)
	}
}

func TestRunReplacesPreviousOutputs(t *testing.T) {
	e := newTestEngine(Config{})
	e.selectDocsForAllSteps()
	camp := e.seedCampaign(model.CampaignStatusCompleted, map[string]model.StepOutput{
		"step_1": {StepName: "Find Place", Output: "stale", Status: model.StepStatusCompleted},
	})

	e.gemini.generate = func(string) (*gemini.GenerateResult, error) {
		return &gemini.GenerateResult{Text: "fresh output"}, nil
	}

	if _, err := e.uc.Run(context.Background(), camp.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := e.repo.campaigns[camp.ID].StepOutputs["step_1"]
	if got.Output != "fresh output" {
		t.Errorf("step_1 output = %q, want the re-generated text", got.Output)
	}
	if got.OriginalOutput != "" {
		t.Errorf("re-generated output carries a stale original: %q", got.OriginalOutput)
	}
}

func TestRunPublishesLifecycleEvents(t *testing.T) {
	e := newTestEngine(Config{})
	e.selectDocsForAllSteps()
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	if _, err := e.uc.Run(context.Background(), camp.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(e.producer.published) != 2 {
		t.Fatalf("events published = %d, want started and completed", len(e.producer.published))
	}
	if !strings.Contains(string(e.producer.published[0]), "campaign.started") {
		t.Errorf("first event = %s, want campaign.started", e.producer.published[0])
	}
	if !strings.Contains(string(e.producer.published[1]), "campaign.completed") {
		t.Errorf("second event = %s, want campaign.completed", e.producer.published[1])
	}
}

func TestRunUnknownCampaign(t *testing.T) {
	e := newTestEngine(Config{})

	_, err := e.uc.Run(context.Background(), "missing")
	if !errors.Is(err, campaign.ErrCampaignNotFound) {
		t.Fatalf("Run error = %v, want ErrCampaignNotFound", err)
	}
}
