package usecase

import (
	"context"
	"fmt"
	"strings"

	"campaign-srv/internal/campaign"
	"campaign-srv/internal/pipeline"
	"campaign-srv/pkg/tokens"
)

// assembledContext is the bounded text context for one step.
type assembledContext struct {
	Text      string
	Tokens    int
	Breakdown []campaign.DocumentTokens
}

// assembleContext resolves a step's document selection and concatenates
// the documents in selection order. A step that requires context but has
// none selected fails unless AllowEmptyContext is set.
func (uc *implUseCase) assembleContext(ctx context.Context, projectID string, step pipeline.StepDefinition) (assembledContext, error) {
	docs, err := uc.docUC.GetSelectedDocuments(ctx, projectID, step.ID)
	if err != nil {
		return assembledContext{}, err
	}

	if len(docs) == 0 {
		if step.RequiresContext() && !uc.cfg.AllowEmptyContext {
			return assembledContext{}, campaign.ErrNoContextSelected
		}
		return assembledContext{}, nil
	}

	var b strings.Builder
	breakdown := make([]campaign.DocumentTokens, 0, len(docs))
	for i, doc := range docs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "=== %s ===\n\n%s", doc.Filename, doc.Content)
		breakdown = append(breakdown, campaign.DocumentTokens{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			Tokens:     doc.Tokens,
		})
	}

	text := b.String()
	return assembledContext{
		Text:      text,
		Tokens:    tokens.Estimate(text),
		Breakdown: breakdown,
	}, nil
}

// PreviewContext reports the assembled context size for one step. An
// empty selection previews as zero tokens rather than failing, so the
// monitor can show unconfigured steps.
func (uc *implUseCase) PreviewContext(ctx context.Context, input campaign.PreviewContextInput) (campaign.ContextPreview, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return campaign.ContextPreview{}, campaign.ErrProjectRequired
	}
	step, ok := pipeline.ByID(input.StepID)
	if !ok {
		return campaign.ContextPreview{}, campaign.ErrInvalidStep
	}

	docs, err := uc.docUC.GetSelectedDocuments(ctx, input.ProjectID, step.ID)
	if err != nil {
		uc.l.Errorf(ctx, "campaign.usecase.PreviewContext: %v", err)
		return campaign.ContextPreview{}, err
	}

	total := 0
	breakdown := make([]campaign.DocumentTokens, 0, len(docs))
	for _, doc := range docs {
		total += doc.Tokens
		breakdown = append(breakdown, campaign.DocumentTokens{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			Tokens:     doc.Tokens,
		})
	}

	return campaign.ContextPreview{
		StepID:      step.ID,
		TotalTokens: total,
		Percentage:  uc.cfg.Limits.Percent(total),
		Level:       uc.cfg.Limits.Classify(total),
		Breakdown:   breakdown,
	}, nil
}
