package document

import (
	"context"

	"campaign-srv/internal/model"
)

// UseCase is the knowledge-base document domain: document records plus
// the per-step context selections that feed the campaign pipeline.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Document, error)
	Get(ctx context.Context, id string) (model.Document, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, id string) error

	SaveSelection(ctx context.Context, input SaveSelectionInput) (model.StepSelection, error)
	GetSelection(ctx context.Context, projectID, stepID string) (model.StepSelection, error)
	// GetSelectedDocuments returns the documents selected for a step in
	// selection order. Missing selection yields an empty slice.
	GetSelectedDocuments(ctx context.Context, projectID, stepID string) ([]model.Document, error)
}
