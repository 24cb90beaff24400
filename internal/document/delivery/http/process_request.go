package http

import (
	"campaign-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createDocumentReq, error) {
	var req createDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListRequest(c *gin.Context) (listDocumentsReq, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		return listDocumentsReq{}, err
	}

	return listDocumentsReq{
		ProjectID: c.Query("project_id"),
		Category:  c.Query("category"),
		PagQuery:  pq,
	}, nil
}

func (h *handler) processSaveSelectionRequest(c *gin.Context) (saveSelectionReq, string, error) {
	var req saveSelectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	return req, c.Param("step_id"), nil
}
