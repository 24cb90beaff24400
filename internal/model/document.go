package model

import "time"

// DocumentCategory classifies a knowledge-base document.
type DocumentCategory string

const (
	DocumentCategoryProduct    DocumentCategory = "product"
	DocumentCategoryCompetitor DocumentCategory = "competitor"
	DocumentCategoryResearch   DocumentCategory = "research"
	DocumentCategoryOutput     DocumentCategory = "output"
)

// ValidDocumentCategory reports whether c is a known category.
func ValidDocumentCategory(c DocumentCategory) bool {
	switch c {
	case DocumentCategoryProduct, DocumentCategoryCompetitor,
		DocumentCategoryResearch, DocumentCategoryOutput:
		return true
	}
	return false
}

// Document is a knowledge-base item whose extracted text feeds
// pipeline context. Extraction happens upstream; the service only
// stores the already-extracted text and its token estimate.
type Document struct {
	ID        string
	ProjectID string
	Filename  string
	Category  DocumentCategory
	Content   string
	Tokens    int
	FileSize  int64
	CreatedAt time.Time
}

// StepSelection is the ordered set of documents configured as context
// for one pipeline step of a project.
type StepSelection struct {
	ProjectID   string
	StepID      string
	DocumentIDs []string
	UpdatedAt   time.Time
}
