package http

import (
	"campaign-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createCampaignReq, error) {
	var req createCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListRequest(c *gin.Context) (listCampaignsReq, error) {
	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		return listCampaignsReq{}, err
	}

	return listCampaignsReq{
		ProjectID: c.Query("project_id"),
		PagQuery:  pq,
	}, nil
}

func (h *handler) processSuggestRequest(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processApplyRequest(c *gin.Context) (applySuggestionReq, error) {
	var req applySuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processManualEditRequest(c *gin.Context) (manualEditReq, error) {
	var req manualEditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
