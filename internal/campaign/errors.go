package campaign

import "errors"

// Domain errors
var (
	// ErrCampaignNotFound - referenced campaign does not exist
	ErrCampaignNotFound = errors.New("campaign: campaign not found")

	// ErrInvalidStep - step id does not name a pipeline step
	ErrInvalidStep = errors.New("campaign: unknown step id")

	// ErrStepOutputMissing - no recorded output for the step yet
	ErrStepOutputMissing = errors.New("campaign: step has no output")

	// ErrProjectRequired - project_id is required
	ErrProjectRequired = errors.New("campaign: project_id is required")

	// ErrNameRequired - ecp_name is required
	ErrNameRequired = errors.New("campaign: ecp_name is required")

	// ErrProblemCoreRequired - problem_core is required
	ErrProblemCoreRequired = errors.New("campaign: problem_core is required")

	// ErrAlreadyRunning - a run is already active for this campaign
	ErrAlreadyRunning = errors.New("campaign: run already in progress")

	// ErrCampaignRunning - revision operations rejected mid-run
	ErrCampaignRunning = errors.New("campaign: campaign is running")

	// ErrSuggestionInFlight - a suggestion is already being generated
	// for this step output
	ErrSuggestionInFlight = errors.New("campaign: suggestion already in progress")

	// ErrInstructionRequired - revision instruction is blank
	ErrInstructionRequired = errors.New("campaign: instruction is required")

	// ErrCandidateRequired - candidate text is blank
	ErrCandidateRequired = errors.New("campaign: candidate text is required")

	// ErrNoContextSelected - a step requires context but none is configured
	ErrNoContextSelected = errors.New("campaign: no documents selected for step")

	// ErrBudgetExceeded - assembled context exceeds the hard token limit
	ErrBudgetExceeded = errors.New("campaign: context exceeds token budget")

	// ErrGenerationFailed - the generation service failed or returned
	// unusable output
	ErrGenerationFailed = errors.New("campaign: generation failed")

	// ErrNoPendingSuggestion - no suggestion session exists for the step
	ErrNoPendingSuggestion = errors.New("campaign: no pending suggestion")

	// ErrNothingToRevert - output has no preserved original to restore
	ErrNothingToRevert = errors.New("campaign: no original output to revert to")

	// ErrNoOutputsToExport - campaign has no completed outputs
	ErrNoOutputsToExport = errors.New("campaign: no outputs to export")
)
