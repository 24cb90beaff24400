package campaign

import (
	"context"

	"campaign-srv/internal/model"
	"campaign-srv/pkg/minio"
)

// UseCase is the campaign domain: CRUD plus the step-execution engine
// and the revision engine operating on persisted step outputs.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Campaign, error)
	Get(ctx context.Context, id string) (model.Campaign, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Duplicate(ctx context.Context, id string) (model.Campaign, error)

	// Run drives the campaign through the pipeline: one step at a time,
	// persisting each output, halting on the first failure.
	Run(ctx context.Context, id string) (RunSummary, error)
	// PreviewContext reports the assembled context size for one step
	// without running anything.
	PreviewContext(ctx context.Context, input PreviewContextInput) (ContextPreview, error)

	Suggest(ctx context.Context, input SuggestInput) (Suggestion, error)
	// GetSuggestion returns the pending suggestion session for a step,
	// with the diff recomputed against the current output.
	GetSuggestion(ctx context.Context, input StepRef) (Suggestion, error)
	ApplySuggestion(ctx context.Context, input ApplyInput) (model.StepOutput, error)
	DiscardSuggestion(ctx context.Context, input StepRef) error
	SaveManualEdit(ctx context.Context, input ManualEditInput) (model.StepOutput, error)
	Revert(ctx context.Context, input StepRef) (model.StepOutput, error)

	// Export compiles the completed step outputs into a markdown object
	// and returns a presigned download URL.
	Export(ctx context.Context, id string) (ExportOutput, error)
}

// ObjectStorage is the subset of the MinIO client the export flow uses.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error)
	GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error)
}
