package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/model"
	"campaign-srv/internal/pipeline"
	"campaign-srv/pkg/minio"
)

const exportURLExpiry = time.Hour

// Export compiles the completed step outputs into one markdown document,
// uploads it and returns a presigned download URL.
func (uc *implUseCase) Export(ctx context.Context, id string) (campaign.ExportOutput, error) {
	camp, err := uc.getCampaign(ctx, id)
	if err != nil {
		return campaign.ExportOutput{}, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", camp.ECPName)

	exported := 0
	for _, step := range pipeline.Steps() {
		entry, ok := camp.StepOutputs[step.ID]
		if !ok || entry.Status != model.StepStatusCompleted {
			continue
		}
		fmt.Fprintf(&buf, "\n## %s\n\n%s\n", step.Name, entry.Output)
		exported++
	}
	if exported == 0 {
		return campaign.ExportOutput{}, campaign.ErrNoOutputsToExport
	}

	if err := uc.storage.EnsureBucket(ctx, uc.cfg.ExportBucket); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Export: ensure bucket failed: %v", err)
		return campaign.ExportOutput{}, err
	}

	objectName := fmt.Sprintf("campaigns/%s/outputs-%d.md", camp.ID, timeNow().Unix())
	payload := buf.Bytes()
	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(payload),
		Size:        int64(len(payload)),
		ContentType: "text/markdown",
	}); err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Export: upload failed: %v", err)
		return campaign.ExportOutput{}, err
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.ExportBucket,
		ObjectName: objectName,
		Expiry:     exportURLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.Export: presign failed: %v", err)
		return campaign.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "campaign.usecase.Export: campaign %s exported %d outputs to %s", id, exported, objectName)
	return campaign.ExportOutput{
		ObjectName: objectName,
		URL:        url.URL,
		ExpiresAt:  url.ExpiresAt,
	}, nil
}
