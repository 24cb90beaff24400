package repository

import "campaign-srv/internal/model"

type CreateDocumentOptions struct {
	ProjectID string
	Filename  string
	Category  model.DocumentCategory
	Content   string
	Tokens    int
	FileSize  int64
}

type ListDocumentsOptions struct {
	ProjectID string
	Category  model.DocumentCategory
	Limit     int64
	Offset    int64
}

type UpsertSelectionOptions struct {
	ProjectID   string
	StepID      string
	DocumentIDs []string
}
