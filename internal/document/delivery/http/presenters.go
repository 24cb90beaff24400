package http

import (
	"time"

	"campaign-srv/internal/document"
	"campaign-srv/internal/model"
	"campaign-srv/pkg/paginator"
)

type createDocumentReq struct {
	ProjectID string `json:"project_id" binding:"required"`
	Filename  string `json:"filename" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Content   string `json:"content" binding:"required"`
	FileSize  int64  `json:"file_size"`
}

func (r createDocumentReq) toInput() document.CreateInput {
	return document.CreateInput{
		ProjectID: r.ProjectID,
		Filename:  r.Filename,
		Category:  model.DocumentCategory(r.Category),
		Content:   r.Content,
		FileSize:  r.FileSize,
	}
}

type listDocumentsReq struct {
	ProjectID string
	Category  string
	PagQuery  paginator.PaginateQuery
}

func (r listDocumentsReq) toInput() document.ListInput {
	return document.ListInput{
		ProjectID: r.ProjectID,
		Category:  model.DocumentCategory(r.Category),
		PagQuery:  r.PagQuery,
	}
}

type saveSelectionReq struct {
	ProjectID   string   `json:"project_id" binding:"required"`
	DocumentIDs []string `json:"document_ids"`
}

type documentResp struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Filename  string    `json:"filename"`
	Category  string    `json:"category"`
	Tokens    int       `json:"tokens"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// detail view also carries the extracted content
type documentDetailResp struct {
	documentResp
	Content string `json:"content"`
}

type listDocumentsResp struct {
	Documents  []documentResp              `json:"documents"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

type selectionResp struct {
	ProjectID   string     `json:"project_id"`
	StepID      string     `json:"step_id"`
	DocumentIDs []string   `json:"document_ids"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (h *handler) newDocumentResp(doc model.Document) documentResp {
	return documentResp{
		ID:        doc.ID,
		ProjectID: doc.ProjectID,
		Filename:  doc.Filename,
		Category:  string(doc.Category),
		Tokens:    doc.Tokens,
		FileSize:  doc.FileSize,
		CreatedAt: doc.CreatedAt,
	}
}

func (h *handler) newDocumentDetailResp(doc model.Document) documentDetailResp {
	return documentDetailResp{
		documentResp: h.newDocumentResp(doc),
		Content:      doc.Content,
	}
}

func (h *handler) newListDocumentsResp(o document.ListOutput) listDocumentsResp {
	docs := make([]documentResp, 0, len(o.Documents))
	for _, doc := range o.Documents {
		docs = append(docs, h.newDocumentResp(doc))
	}
	return listDocumentsResp{
		Documents:  docs,
		Pagination: o.Pagination.ToResponse(),
	}
}

func (h *handler) newSelectionResp(sel model.StepSelection) selectionResp {
	resp := selectionResp{
		ProjectID:   sel.ProjectID,
		StepID:      sel.StepID,
		DocumentIDs: sel.DocumentIDs,
	}
	if resp.DocumentIDs == nil {
		resp.DocumentIDs = []string{}
	}
	if !sel.UpdatedAt.IsZero() {
		resp.UpdatedAt = &sel.UpdatedAt
	}
	return resp
}
