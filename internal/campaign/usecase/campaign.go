package usecase

import (
	"context"
	"errors"
	"strings"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

// Create registers a new draft campaign.
func (uc *implUseCase) Create(ctx context.Context, input campaign.CreateInput) (model.Campaign, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return model.Campaign{}, campaign.ErrProjectRequired
	}
	if strings.TrimSpace(input.ECPName) == "" {
		return model.Campaign{}, campaign.ErrNameRequired
	}
	if strings.TrimSpace(input.ProblemCore) == "" {
		return model.Campaign{}, campaign.ErrProblemCoreRequired
	}

	camp, err := uc.repo.CreateCampaign(ctx, repository.CreateCampaignOptions{
		ProjectID:   input.ProjectID,
		ECPName:     input.ECPName,
		ProblemCore: input.ProblemCore,
		Country:     input.Country,
		Industry:    input.Industry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Create: %v", err)
		return model.Campaign{}, err
	}

	uc.l.Infof(ctx, "campaign.usecase.Create: created campaign %s (%s)", camp.ID, camp.ECPName)
	return camp, nil
}

// Get fetches one campaign.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Campaign, error) {
	return uc.getCampaign(ctx, id)
}

// List pages a project's campaigns, newest first.
func (uc *implUseCase) List(ctx context.Context, input campaign.ListInput) (campaign.ListOutput, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return campaign.ListOutput{}, campaign.ErrProjectRequired
	}

	input.PagQuery.Adjust()

	campaigns, total, err := uc.repo.ListCampaigns(ctx, repository.ListCampaignsOptions{
		ProjectID: input.ProjectID,
		Limit:     input.PagQuery.Limit,
		Offset:    input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.List: %v", err)
		return campaign.ListOutput{}, err
	}

	return campaign.ListOutput{
		Campaigns: campaigns,
		Pagination: paginator.Paginator{
			Total:       total,
			Count:       int64(len(campaigns)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

// Duplicate copies a campaign's configuration into a fresh draft:
// execution state, outputs and timestamps are not carried over.
func (uc *implUseCase) Duplicate(ctx context.Context, id string) (model.Campaign, error) {
	src, err := uc.getCampaign(ctx, id)
	if err != nil {
		return model.Campaign{}, err
	}

	dup, err := uc.repo.CreateCampaign(ctx, repository.CreateCampaignOptions{
		ProjectID:   src.ProjectID,
		ECPName:     src.ECPName + " (Copy)",
		ProblemCore: src.ProblemCore,
		Country:     src.Country,
		Industry:    src.Industry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Duplicate: %v", err)
		return model.Campaign{}, err
	}

	uc.l.Infof(ctx, "campaign.usecase.Duplicate: %s -> %s", src.ID, dup.ID)
	return dup, nil
}

func (uc *implUseCase) getCampaign(ctx context.Context, id string) (model.Campaign, error) {
	camp, err := uc.repo.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Campaign{}, campaign.ErrCampaignNotFound
		}
		uc.l.Errorf(ctx, "campaign.usecase.getCampaign: %v", err)
		return model.Campaign{}, err
	}
	return camp, nil
}
