package document

import (
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

// CreateInput holds an already-extracted document to register.
type CreateInput struct {
	ProjectID string
	Filename  string
	Category  model.DocumentCategory
	Content   string
	FileSize  int64
}

// ListInput filters and paginates a document listing.
type ListInput struct {
	ProjectID string
	Category  model.DocumentCategory
	PagQuery  paginator.PaginateQuery
}

// ListOutput is one page of documents.
type ListOutput struct {
	Documents  []model.Document
	Pagination paginator.Paginator
}

// SaveSelectionInput replaces the document selection for one step.
type SaveSelectionInput struct {
	ProjectID   string
	StepID      string
	DocumentIDs []string
}
