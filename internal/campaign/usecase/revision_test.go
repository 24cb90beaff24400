package usecase

import (
	"context"
	"errors"
	"testing"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/gemini"
)

func seedCompletedStep(e *testEngine, output string) model.Campaign {
	return e.seedCampaign(model.CampaignStatusCompleted, map[string]model.StepOutput{
		"step_1": {StepName: "Find Place", Output: output, Status: model.StepStatusCompleted},
	})
}

func TestSuggestReturnsCandidateWithDiff(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "Alpha\n\nBravo")

	e.gemini.generate = func(string) (*gemini.GenerateResult, error) {
		return &gemini.GenerateResult{Text: "Alpha\n\nCharlie"}, nil
	}

	suggestion, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "replace the second paragraph",
	})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if suggestion.CandidateText != "Alpha\n\nCharlie" {
		t.Errorf("candidate = %q", suggestion.CandidateText)
	}
	if len(suggestion.Highlights) != 1 {
		t.Fatalf("highlights = %d, want 1", len(suggestion.Highlights))
	}
	hl := suggestion.Highlights[0]
	if got := suggestion.CandidateText[hl.Start:hl.End]; got != "Charlie" {
		t.Errorf("highlighted text = %q, want the changed paragraph", got)
	}

	// stored output stays untouched until the candidate is applied
	if e.repo.campaigns[camp.ID].StepOutputs["step_1"].Output != "Alpha\n\nBravo" {
		t.Error("Suggest must not modify the stored output")
	}
	if _, err := e.sessions.GetSession(context.Background(), camp.ID, "step_1"); err != nil {
		t.Errorf("session not saved: %v", err)
	}
	if len(e.sessions.locks) != 0 {
		t.Error("in-flight lock not released after the suggestion")
	}
}

func TestSuggestRejectsBlankInstruction(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "text")

	_, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "   ",
	})
	if !errors.Is(err, campaign.ErrInstructionRequired) {
		t.Fatalf("Suggest error = %v, want ErrInstructionRequired", err)
	}
}

func TestSuggestRejectsWhileRunning(t *testing.T) {
	e := newTestEngine(Config{})
	camp := e.seedCampaign(model.CampaignStatusRunning, map[string]model.StepOutput{
		"step_1": {Output: "text", Status: model.StepStatusCompleted},
	})

	_, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "shorten",
	})
	if !errors.Is(err, campaign.ErrCampaignRunning) {
		t.Fatalf("Suggest error = %v, want ErrCampaignRunning", err)
	}
}

func TestSuggestRejectsSecondInFlight(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "text")
	e.sessions.locks[sessionKey(camp.ID, "step_1")] = true

	_, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "shorten",
	})
	if !errors.Is(err, campaign.ErrSuggestionInFlight) {
		t.Fatalf("Suggest error = %v, want ErrSuggestionInFlight", err)
	}
}

func TestSuggestReleasesLockOnGenerationFailure(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "text")

	e.gemini.generate = func(string) (*gemini.GenerateResult, error) {
		return nil, errors.New("upstream down")
	}

	_, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "shorten",
	})
	if !errors.Is(err, campaign.ErrGenerationFailed) {
		t.Fatalf("Suggest error = %v, want ErrGenerationFailed", err)
	}
	if len(e.sessions.locks) != 0 {
		t.Error("lock must be released after a failed generation")
	}
}

func TestSuggestRequiresCompletedOutput(t *testing.T) {
	e := newTestEngine(Config{})
	camp := e.seedCampaign(model.CampaignStatusDraft, nil)

	_, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "shorten",
	})
	if !errors.Is(err, campaign.ErrStepOutputMissing) {
		t.Fatalf("Suggest error = %v, want ErrStepOutputMissing", err)
	}
}

func TestGetSuggestionReturnsPendingSession(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "Alpha\n\nBravo")

	e.gemini.generate = func(string) (*gemini.GenerateResult, error) {
		return &gemini.GenerateResult{Text: "Alpha\n\nCharlie"}, nil
	}
	if _, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "replace the second paragraph",
	}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	suggestion, err := e.uc.GetSuggestion(context.Background(), campaign.StepRef{
		CampaignID: camp.ID,
		StepID:     "step_1",
	})
	if err != nil {
		t.Fatalf("GetSuggestion: %v", err)
	}
	if suggestion.CandidateText != "Alpha\n\nCharlie" {
		t.Errorf("candidate = %q", suggestion.CandidateText)
	}
	if suggestion.Instruction != "replace the second paragraph" {
		t.Errorf("instruction = %q", suggestion.Instruction)
	}
	if len(suggestion.Highlights) != 1 {
		t.Fatalf("highlights = %d, want 1", len(suggestion.Highlights))
	}
	if got := suggestion.CandidateText[suggestion.Highlights[0].Start:suggestion.Highlights[0].End]; got != "Charlie" {
		t.Errorf("highlighted text = %q, want the changed paragraph", got)
	}
}

func TestGetSuggestionWithoutSession(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "text")

	_, err := e.uc.GetSuggestion(context.Background(), campaign.StepRef{
		CampaignID: camp.ID,
		StepID:     "step_1",
	})
	if !errors.Is(err, campaign.ErrNoPendingSuggestion) {
		t.Fatalf("GetSuggestion error = %v, want ErrNoPendingSuggestion", err)
	}
}

func TestApplyPreservesOriginalAcrossEdits(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")

	first, err := e.uc.ApplySuggestion(context.Background(), campaign.ApplyInput{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: "v2",
	})
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if first.Output != "v2" || first.OriginalOutput != "v1" {
		t.Errorf("after first apply: output=%q original=%q", first.Output, first.OriginalOutput)
	}
	if first.EditedAt == nil {
		t.Error("edited_at not set")
	}

	second, err := e.uc.ApplySuggestion(context.Background(), campaign.ApplyInput{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: "v3",
	})
	if err != nil {
		t.Fatalf("second ApplySuggestion: %v", err)
	}
	if second.OriginalOutput != "v1" {
		t.Errorf("original after second apply = %q, want the first-ever text", second.OriginalOutput)
	}
}

func TestApplyClearsSession(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")
	e.sessions.sessions[sessionKey(camp.ID, "step_1")] = repository.SuggestionSession{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: "v2",
	}

	if _, err := e.uc.ApplySuggestion(context.Background(), campaign.ApplyInput{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: "v2",
	}); err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if len(e.sessions.sessions) != 0 {
		t.Error("session not cleared after apply")
	}
}

func TestApplyRejectsBlankCandidate(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")

	_, err := e.uc.ApplySuggestion(context.Background(), campaign.ApplyInput{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: " ",
	})
	if !errors.Is(err, campaign.ErrCandidateRequired) {
		t.Fatalf("ApplySuggestion error = %v, want ErrCandidateRequired", err)
	}
}

func TestManualEditFollowsPreservationRule(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")

	entry, err := e.uc.SaveManualEdit(context.Background(), campaign.ManualEditInput{
		CampaignID: camp.ID,
		StepID:     "step_1",
		Output:     "hand edited",
	})
	if err != nil {
		t.Fatalf("SaveManualEdit: %v", err)
	}
	if entry.Output != "hand edited" || entry.OriginalOutput != "v1" {
		t.Errorf("after manual edit: output=%q original=%q", entry.Output, entry.OriginalOutput)
	}
}

func TestRevertRestoresOriginalAndIsIdempotent(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")

	if _, err := e.uc.ApplySuggestion(context.Background(), campaign.ApplyInput{
		CampaignID:    camp.ID,
		StepID:        "step_1",
		CandidateText: "v2",
	}); err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}

	ref := campaign.StepRef{CampaignID: camp.ID, StepID: "step_1"}
	for i := 0; i < 2; i++ {
		entry, err := e.uc.Revert(context.Background(), ref)
		if err != nil {
			t.Fatalf("Revert #%d: %v", i+1, err)
		}
		if entry.Output != "v1" {
			t.Errorf("Revert #%d output = %q, want v1", i+1, entry.Output)
		}
		if entry.OriginalOutput != "v1" {
			t.Errorf("Revert #%d dropped the preserved original", i+1)
		}
		if entry.EditedAt != nil {
			t.Errorf("Revert #%d kept edited_at", i+1)
		}
	}
}

func TestRevertWithoutEditsFails(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "v1")

	_, err := e.uc.Revert(context.Background(), campaign.StepRef{CampaignID: camp.ID, StepID: "step_1"})
	if !errors.Is(err, campaign.ErrNothingToRevert) {
		t.Fatalf("Revert error = %v, want ErrNothingToRevert", err)
	}
}

func TestDiscardSuggestionDropsSession(t *testing.T) {
	e := newTestEngine(Config{})
	camp := seedCompletedStep(e, "Alpha")

	if _, err := e.uc.Suggest(context.Background(), campaign.SuggestInput{
		CampaignID:  camp.ID,
		StepID:      "step_1",
		Instruction: "shorten",
	}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	ref := campaign.StepRef{CampaignID: camp.ID, StepID: "step_1"}
	if err := e.uc.DiscardSuggestion(context.Background(), ref); err != nil {
		t.Fatalf("DiscardSuggestion: %v", err)
	}
	if len(e.sessions.sessions) != 0 {
		t.Error("session not dropped")
	}
	if e.repo.campaigns[camp.ID].StepOutputs["step_1"].Output != "Alpha" {
		t.Error("discard must not touch the stored output")
	}

	// discarding again is a no-op
	if err := e.uc.DiscardSuggestion(context.Background(), ref); err != nil {
		t.Fatalf("second DiscardSuggestion: %v", err)
	}
}
