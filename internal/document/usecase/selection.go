package usecase

import (
	"context"
	"errors"
	"strings"

	"campaign-srv/internal/document"
	"campaign-srv/internal/document/repository"
	"campaign-srv/internal/model"
	"campaign-srv/internal/pipeline"
)

// SaveSelection replaces the ordered document selection for a step.
// Every referenced document must exist and belong to the project.
func (uc *implUseCase) SaveSelection(ctx context.Context, input document.SaveSelectionInput) (model.StepSelection, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return model.StepSelection{}, document.ErrProjectRequired
	}
	if !pipeline.ValidStepID(input.StepID) {
		return model.StepSelection{}, document.ErrInvalidStep
	}

	docs, err := uc.repo.GetDocumentsByIDs(ctx, input.DocumentIDs)
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.SaveSelection: %v", err)
		return model.StepSelection{}, err
	}
	if len(docs) != len(input.DocumentIDs) {
		return model.StepSelection{}, document.ErrDocumentNotFound
	}
	for _, doc := range docs {
		if doc.ProjectID != input.ProjectID {
			return model.StepSelection{}, document.ErrDocumentNotFound
		}
	}

	sel, err := uc.repo.UpsertSelection(ctx, repository.UpsertSelectionOptions{
		ProjectID:   input.ProjectID,
		StepID:      input.StepID,
		DocumentIDs: input.DocumentIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.SaveSelection: %v", err)
		return model.StepSelection{}, err
	}

	uc.l.Infof(ctx, "document.usecase.SaveSelection: %s/%s -> %d documents", input.ProjectID, input.StepID, len(input.DocumentIDs))
	return sel, nil
}

// GetSelection returns the selection for a step; a missing record is
// returned as an empty selection rather than an error.
func (uc *implUseCase) GetSelection(ctx context.Context, projectID, stepID string) (model.StepSelection, error) {
	if strings.TrimSpace(projectID) == "" {
		return model.StepSelection{}, document.ErrProjectRequired
	}
	if !pipeline.ValidStepID(stepID) {
		return model.StepSelection{}, document.ErrInvalidStep
	}

	sel, err := uc.repo.GetSelection(ctx, projectID, stepID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.StepSelection{ProjectID: projectID, StepID: stepID}, nil
		}
		uc.l.Errorf(ctx, "document.usecase.GetSelection: %v", err)
		return model.StepSelection{}, err
	}
	return sel, nil
}

// GetSelectedDocuments resolves a step's selection to documents in
// selection order.
func (uc *implUseCase) GetSelectedDocuments(ctx context.Context, projectID, stepID string) ([]model.Document, error) {
	sel, err := uc.GetSelection(ctx, projectID, stepID)
	if err != nil {
		return nil, err
	}
	if len(sel.DocumentIDs) == 0 {
		return nil, nil
	}

	docs, err := uc.repo.GetDocumentsByIDs(ctx, sel.DocumentIDs)
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.GetSelectedDocuments: %v", err)
		return nil, err
	}
	return docs, nil
}
