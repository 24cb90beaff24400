package repository

import (
	"context"

	"campaign-srv/internal/model"
)

// PostgresRepository bundles document and selection persistence.
type PostgresRepository interface {
	DocumentRepository
	SelectionRepository
}

// DocumentRepository - document CRUD
type DocumentRepository interface {
	CreateDocument(ctx context.Context, opt CreateDocumentOptions) (model.Document, error)
	GetDocumentByID(ctx context.Context, id string) (model.Document, error)
	// GetDocumentsByIDs returns documents in the order of ids; missing
	// ids are skipped.
	GetDocumentsByIDs(ctx context.Context, ids []string) ([]model.Document, error)
	ListDocuments(ctx context.Context, opt ListDocumentsOptions) ([]model.Document, int64, error)
	DeleteDocument(ctx context.Context, id string) error
}

// SelectionRepository - per-step context selections
type SelectionRepository interface {
	UpsertSelection(ctx context.Context, opt UpsertSelectionOptions) (model.StepSelection, error)
	GetSelection(ctx context.Context, projectID, stepID string) (model.StepSelection, error)
	RemoveDocumentFromSelections(ctx context.Context, documentID string) error
}
