package document

import "errors"

// Domain errors
var (
	ErrDocumentNotFound = errors.New("document: document not found")
	ErrProjectRequired  = errors.New("document: project_id is required")
	ErrFilenameRequired = errors.New("document: filename is required")
	ErrContentRequired  = errors.New("document: content is required")
	ErrInvalidCategory  = errors.New("document: invalid category")
	ErrInvalidStep      = errors.New("document: unknown step id")
)
