package http

import (
	"campaign-srv/internal/document"
	"campaign-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Register a document
// @Description Store an already-extracted document and its token estimate
// @Tags Documents
// @Accept json
// @Produce json
// @Param body body createDocumentReq true "Document"
// @Success 200 {object} documentDetailResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	doc, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDocumentDetailResp(doc))
}

// @Summary List documents
// @Description Page a project's documents, newest first
// @Tags Documents
// @Accept json
// @Produce json
// @Param project_id query string true "Project ID"
// @Param category query string false "Filter by category"
// @Param page query int false "Page number"
// @Param limit query int false "Records per page"
// @Success 200 {object} listDocumentsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListDocumentsResp(o))
}

// @Summary Get document detail
// @Description Return a document including its extracted content
// @Tags Documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} documentDetailResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents/{document_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	doc, err := h.uc.Get(ctx, c.Param("document_id"))
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDocumentDetailResp(doc))
}

// @Summary Delete a document
// @Description Remove a document and drop it from step selections
// @Tags Documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents/{document_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("document_id")); err != nil {
		h.l.Errorf(ctx, "document.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Save step selection
// @Description Replace the ordered document selection for a pipeline step
// @Tags Documents
// @Accept json
// @Produce json
// @Param step_id path string true "Step ID"
// @Param body body saveSelectionReq true "Selection"
// @Success 200 {object} selectionResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents/selections/{step_id} [put]
func (h *handler) SaveSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, stepID, err := h.processSaveSelectionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.SaveSelection: processSaveSelectionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sel, err := h.uc.SaveSelection(ctx, document.SaveSelectionInput{
		ProjectID:   req.ProjectID,
		StepID:      stepID,
		DocumentIDs: req.DocumentIDs,
	})
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.SaveSelection: usecase SaveSelection failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSelectionResp(sel))
}

// @Summary Get step selection
// @Description Return the document selection configured for a pipeline step
// @Tags Documents
// @Accept json
// @Produce json
// @Param step_id path string true "Step ID"
// @Param project_id query string true "Project ID"
// @Success 200 {object} selectionResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/documents/selections/{step_id} [get]
func (h *handler) GetSelection(c *gin.Context) {
	ctx := c.Request.Context()

	sel, err := h.uc.GetSelection(ctx, c.Query("project_id"), c.Param("step_id"))
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.GetSelection: usecase GetSelection failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSelectionResp(sel))
}
