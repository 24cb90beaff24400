package usecase

import (
	"context"
	"encoding/json"

	"campaign-srv/internal/model"
)

const (
	eventCampaignStarted   = "campaign.started"
	eventCampaignCompleted = "campaign.completed"
	eventCampaignFailed    = "campaign.failed"
)

type campaignEvent struct {
	Type       string `json:"type"`
	CampaignID string `json:"campaign_id"`
	ProjectID  string `json:"project_id"`
	ECPName    string `json:"ecp_name"`
	Timestamp  int64  `json:"timestamp"`
}

// publishEvent emits a lifecycle event. Publishing is best-effort: a
// broker failure never fails the run it describes.
func (uc *implUseCase) publishEvent(ctx context.Context, eventType string, camp model.Campaign) {
	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(campaignEvent{
		Type:       eventType,
		CampaignID: camp.ID,
		ProjectID:  camp.ProjectID,
		ECPName:    camp.ECPName,
		Timestamp:  timeNow().Unix(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "campaign.usecase.publishEvent: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(camp.ID), payload); err != nil {
		uc.l.Warnf(ctx, "campaign.usecase.publishEvent: publish %s failed: %v", eventType, err)
	}
}
