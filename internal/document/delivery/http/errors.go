package http

import (
	"errors"

	"campaign-srv/internal/document"
	pkgErrors "campaign-srv/pkg/errors"
)

var (
	errDocumentNotFound = pkgErrors.NewHTTPError(404, "Document not found")
	errProjectRequired  = pkgErrors.NewHTTPError(400, "Project ID is required")
	errFilenameRequired = pkgErrors.NewHTTPError(400, "Filename is required")
	errContentRequired  = pkgErrors.NewHTTPError(400, "Content is required")
	errInvalidCategory  = pkgErrors.NewHTTPError(400, "Invalid document category")
	errInvalidStep      = pkgErrors.NewHTTPError(400, "Unknown step id")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		return errDocumentNotFound
	case errors.Is(err, document.ErrProjectRequired):
		return errProjectRequired
	case errors.Is(err, document.ErrFilenameRequired):
		return errFilenameRequired
	case errors.Is(err, document.ErrContentRequired):
		return errContentRequired
	case errors.Is(err, document.ErrInvalidCategory):
		return errInvalidCategory
	case errors.Is(err, document.ErrInvalidStep):
		return errInvalidStep
	default:
		panic(err)
	}
}
