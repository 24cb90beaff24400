package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"campaign-srv/internal/document"
	"campaign-srv/internal/document/repository"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/log"
)

type fakeRepo struct {
	docs       map[string]model.Document
	selections map[string]model.StepSelection
	seq        int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:       map[string]model.Document{},
		selections: map[string]model.StepSelection{},
	}
}

func selKey(projectID, stepID string) string {
	return projectID + "/" + stepID
}

func (r *fakeRepo) CreateDocument(_ context.Context, opt repository.CreateDocumentOptions) (model.Document, error) {
	r.seq++
	doc := model.Document{
		ID:        fmt.Sprintf("doc-%d", r.seq),
		ProjectID: opt.ProjectID,
		Filename:  opt.Filename,
		Category:  opt.Category,
		Content:   opt.Content,
		Tokens:    opt.Tokens,
		FileSize:  opt.FileSize,
	}
	r.docs[doc.ID] = doc
	return doc, nil
}

func (r *fakeRepo) GetDocumentByID(_ context.Context, id string) (model.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return model.Document{}, repository.ErrNotFound
	}
	return doc, nil
}

func (r *fakeRepo) GetDocumentsByIDs(_ context.Context, ids []string) ([]model.Document, error) {
	var out []model.Document
	for _, id := range ids {
		if doc, ok := r.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListDocuments(_ context.Context, opt repository.ListDocumentsOptions) ([]model.Document, int64, error) {
	var out []model.Document
	for _, doc := range r.docs {
		if doc.ProjectID == opt.ProjectID {
			out = append(out, doc)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) DeleteDocument(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeRepo) UpsertSelection(_ context.Context, opt repository.UpsertSelectionOptions) (model.StepSelection, error) {
	sel := model.StepSelection{
		ProjectID:   opt.ProjectID,
		StepID:      opt.StepID,
		DocumentIDs: opt.DocumentIDs,
	}
	r.selections[selKey(opt.ProjectID, opt.StepID)] = sel
	return sel, nil
}

func (r *fakeRepo) GetSelection(_ context.Context, projectID, stepID string) (model.StepSelection, error) {
	sel, ok := r.selections[selKey(projectID, stepID)]
	if !ok {
		return model.StepSelection{}, repository.ErrNotFound
	}
	return sel, nil
}

func (r *fakeRepo) RemoveDocumentFromSelections(_ context.Context, documentID string) error {
	for key, sel := range r.selections {
		kept := sel.DocumentIDs[:0]
		for _, id := range sel.DocumentIDs {
			if id != documentID {
				kept = append(kept, id)
			}
		}
		sel.DocumentIDs = kept
		r.selections[key] = sel
	}
	return nil
}

func newTestUseCase() (document.UseCase, *fakeRepo) {
	repo := newFakeRepo()
	return New(repo, log.NewNoopLogger()), repo
}

func TestCreateEstimatesTokens(t *testing.T) {
	uc, _ := newTestUseCase()

	doc, err := uc.Create(context.Background(), document.CreateInput{
		ProjectID: "proj-1",
		Filename:  "research.md",
		Category:  model.DocumentCategoryResearch,
		Content:   strings.Repeat("a", 10),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.Tokens != 3 {
		t.Errorf("tokens = %d, want ceil(10/4) = 3", doc.Tokens)
	}
}

func TestCreateRejectsInvalidCategory(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), document.CreateInput{
		ProjectID: "proj-1",
		Filename:  "x.md",
		Category:  "marketing",
		Content:   "text",
	})
	if !errors.Is(err, document.ErrInvalidCategory) {
		t.Fatalf("Create error = %v, want ErrInvalidCategory", err)
	}
}

func TestSaveSelectionValidatesDocuments(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.docs["doc-a"] = model.Document{ID: "doc-a", ProjectID: "proj-1"}
	repo.docs["doc-b"] = model.Document{ID: "doc-b", ProjectID: "other-project"}

	_, err := uc.SaveSelection(context.Background(), document.SaveSelectionInput{
		ProjectID:   "proj-1",
		StepID:      "step_1",
		DocumentIDs: []string{"doc-a", "missing"},
	})
	if !errors.Is(err, document.ErrDocumentNotFound) {
		t.Fatalf("unknown id: error = %v, want ErrDocumentNotFound", err)
	}

	_, err = uc.SaveSelection(context.Background(), document.SaveSelectionInput{
		ProjectID:   "proj-1",
		StepID:      "step_1",
		DocumentIDs: []string{"doc-a", "doc-b"},
	})
	if !errors.Is(err, document.ErrDocumentNotFound) {
		t.Fatalf("foreign project: error = %v, want ErrDocumentNotFound", err)
	}

	sel, err := uc.SaveSelection(context.Background(), document.SaveSelectionInput{
		ProjectID:   "proj-1",
		StepID:      "step_1",
		DocumentIDs: []string{"doc-a"},
	})
	if err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}
	if len(sel.DocumentIDs) != 1 || sel.DocumentIDs[0] != "doc-a" {
		t.Errorf("selection = %v", sel.DocumentIDs)
	}
}

func TestSaveSelectionRejectsUnknownStep(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.SaveSelection(context.Background(), document.SaveSelectionInput{
		ProjectID: "proj-1",
		StepID:    "step_9",
	})
	if !errors.Is(err, document.ErrInvalidStep) {
		t.Fatalf("SaveSelection error = %v, want ErrInvalidStep", err)
	}
}

func TestGetSelectionMissingIsEmpty(t *testing.T) {
	uc, _ := newTestUseCase()

	sel, err := uc.GetSelection(context.Background(), "proj-1", "step_2")
	if err != nil {
		t.Fatalf("GetSelection: %v", err)
	}
	if len(sel.DocumentIDs) != 0 {
		t.Errorf("selection = %v, want empty", sel.DocumentIDs)
	}
}

func TestGetSelectedDocumentsKeepsOrder(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.docs["doc-a"] = model.Document{ID: "doc-a", ProjectID: "proj-1", Filename: "a.md"}
	repo.docs["doc-b"] = model.Document{ID: "doc-b", ProjectID: "proj-1", Filename: "b.md"}
	repo.selections[selKey("proj-1", "step_1")] = model.StepSelection{
		ProjectID:   "proj-1",
		StepID:      "step_1",
		DocumentIDs: []string{"doc-b", "doc-a"},
	}

	docs, err := uc.GetSelectedDocuments(context.Background(), "proj-1", "step_1")
	if err != nil {
		t.Fatalf("GetSelectedDocuments: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "doc-b" || docs[1].ID != "doc-a" {
		t.Errorf("docs = %v, want selection order preserved", docs)
	}
}

func TestDeleteCleansSelections(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.docs["doc-a"] = model.Document{ID: "doc-a", ProjectID: "proj-1"}
	repo.selections[selKey("proj-1", "step_1")] = model.StepSelection{
		ProjectID:   "proj-1",
		StepID:      "step_1",
		DocumentIDs: []string{"doc-a"},
	}

	if err := uc.Delete(context.Background(), "doc-a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.selections[selKey("proj-1", "step_1")].DocumentIDs) != 0 {
		t.Error("deleted document still referenced by a selection")
	}
}

func TestDeleteUnknownDocument(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, document.ErrDocumentNotFound) {
		t.Fatalf("Delete error = %v, want ErrDocumentNotFound", err)
	}
}
