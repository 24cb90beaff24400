package usecase

import (
	"context"
	"errors"
	"strings"

	"campaign-srv/internal/document"
	"campaign-srv/internal/document/repository"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
	"campaign-srv/pkg/tokens"
)

// Create registers an already-extracted document and its token estimate.
func (uc *implUseCase) Create(ctx context.Context, input document.CreateInput) (model.Document, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return model.Document{}, document.ErrProjectRequired
	}
	if strings.TrimSpace(input.Filename) == "" {
		return model.Document{}, document.ErrFilenameRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return model.Document{}, document.ErrContentRequired
	}
	if !model.ValidDocumentCategory(input.Category) {
		return model.Document{}, document.ErrInvalidCategory
	}

	doc, err := uc.repo.CreateDocument(ctx, repository.CreateDocumentOptions{
		ProjectID: input.ProjectID,
		Filename:  input.Filename,
		Category:  input.Category,
		Content:   input.Content,
		Tokens:    tokens.Estimate(input.Content),
		FileSize:  input.FileSize,
	})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.Create: %v", err)
		return model.Document{}, err
	}

	uc.l.Infof(ctx, "document.usecase.Create: created document %s (%s, %d tokens)", doc.ID, doc.Category, doc.Tokens)
	return doc, nil
}

// Get fetches one document.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Document, error) {
	doc, err := uc.repo.GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Document{}, document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "document.usecase.Get: %v", err)
		return model.Document{}, err
	}
	return doc, nil
}

// List pages a project's documents, newest first.
func (uc *implUseCase) List(ctx context.Context, input document.ListInput) (document.ListOutput, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return document.ListOutput{}, document.ErrProjectRequired
	}
	if input.Category != "" && !model.ValidDocumentCategory(input.Category) {
		return document.ListOutput{}, document.ErrInvalidCategory
	}

	input.PagQuery.Adjust()

	docs, total, err := uc.repo.ListDocuments(ctx, repository.ListDocumentsOptions{
		ProjectID: input.ProjectID,
		Category:  input.Category,
		Limit:     input.PagQuery.Limit,
		Offset:    input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.List: %v", err)
		return document.ListOutput{}, err
	}

	return document.ListOutput{
		Documents: docs,
		Pagination: paginator.Paginator{
			Total:       total,
			Count:       int64(len(docs)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

// Delete removes a document and drops it from any step selection.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "document.usecase.Delete: %v", err)
		return err
	}

	if err := uc.repo.RemoveDocumentFromSelections(ctx, id); err != nil {
		// The document is gone; a stale selection reference is skipped
		// at assembly time, so log and carry on.
		uc.l.Warnf(ctx, "document.usecase.Delete: failed to clean selections for %s: %v", id, err)
	}

	uc.l.Infof(ctx, "document.usecase.Delete: deleted document %s", id)
	return nil
}
