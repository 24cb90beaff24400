package http

import (
	"errors"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/document"
	pkgErrors "campaign-srv/pkg/errors"
)

var (
	errCampaignNotFound    = pkgErrors.NewHTTPError(404, "Campaign not found")
	errStepOutputMissing   = pkgErrors.NewHTTPError(404, "Step has no completed output")
	errNoPendingSuggestion = pkgErrors.NewHTTPError(404, "No pending suggestion for this step")
	errProjectRequired     = pkgErrors.NewHTTPError(400, "Project ID is required")
	errNameRequired        = pkgErrors.NewHTTPError(400, "ECP name is required")
	errProblemCoreRequired = pkgErrors.NewHTTPError(400, "Problem core is required")
	errInvalidStep         = pkgErrors.NewHTTPError(400, "Unknown step id")
	errInstructionRequired = pkgErrors.NewHTTPError(400, "Instruction is required")
	errCandidateRequired   = pkgErrors.NewHTTPError(400, "Candidate text is required")
	errNoContextSelected   = pkgErrors.NewHTTPError(400, "No documents selected for a step that requires context")
	errAlreadyRunning      = pkgErrors.NewHTTPError(409, "Campaign is already running")
	errCampaignRunning     = pkgErrors.NewHTTPError(409, "Campaign is currently running")
	errSuggestionInFlight  = pkgErrors.NewHTTPError(409, "A suggestion is already in flight for this step")
	errNothingToRevert     = pkgErrors.NewHTTPError(409, "Step output has not been edited")
	errBudgetExceeded      = pkgErrors.NewHTTPError(422, "Projected context exceeds the token budget")
	errNoOutputsToExport   = pkgErrors.NewHTTPError(400, "Campaign has no completed outputs to export")
	errGenerationFailed    = pkgErrors.NewHTTPError(502, "Content generation failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, campaign.ErrCampaignNotFound):
		return errCampaignNotFound
	case errors.Is(err, campaign.ErrStepOutputMissing):
		return errStepOutputMissing
	case errors.Is(err, campaign.ErrNoPendingSuggestion):
		return errNoPendingSuggestion
	case errors.Is(err, campaign.ErrProjectRequired), errors.Is(err, document.ErrProjectRequired):
		return errProjectRequired
	case errors.Is(err, campaign.ErrNameRequired):
		return errNameRequired
	case errors.Is(err, campaign.ErrProblemCoreRequired):
		return errProblemCoreRequired
	case errors.Is(err, campaign.ErrInvalidStep), errors.Is(err, document.ErrInvalidStep):
		return errInvalidStep
	case errors.Is(err, campaign.ErrInstructionRequired):
		return errInstructionRequired
	case errors.Is(err, campaign.ErrCandidateRequired):
		return errCandidateRequired
	case errors.Is(err, campaign.ErrNoContextSelected):
		return errNoContextSelected
	case errors.Is(err, campaign.ErrAlreadyRunning):
		return errAlreadyRunning
	case errors.Is(err, campaign.ErrCampaignRunning):
		return errCampaignRunning
	case errors.Is(err, campaign.ErrSuggestionInFlight):
		return errSuggestionInFlight
	case errors.Is(err, campaign.ErrNothingToRevert):
		return errNothingToRevert
	case errors.Is(err, campaign.ErrBudgetExceeded):
		return errBudgetExceeded
	case errors.Is(err, campaign.ErrNoOutputsToExport):
		return errNoOutputsToExport
	case errors.Is(err, campaign.ErrGenerationFailed):
		return errGenerationFailed
	default:
		panic(err)
	}
}
