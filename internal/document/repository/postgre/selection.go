package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-srv/internal/document/repository"
	"campaign-srv/internal/model"
)

// UpsertSelection replaces the ordered document selection for a step.
func (r *implRepository) UpsertSelection(ctx context.Context, opt repository.UpsertSelectionOptions) (model.StepSelection, error) {
	ids, err := json.Marshal(opt.DocumentIDs)
	if err != nil {
		return model.StepSelection{}, fmt.Errorf("UpsertSelection marshal: %w", err)
	}

	query := `
		INSERT INTO ecp.step_selections (project_id, step_id, document_ids, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id, step_id)
		DO UPDATE SET document_ids = EXCLUDED.document_ids, updated_at = EXCLUDED.updated_at
		RETURNING project_id, step_id, document_ids, updated_at
	`

	var sel model.StepSelection
	var raw []byte
	err = r.db.QueryRowContext(ctx, query, opt.ProjectID, opt.StepID, ids, time.Now()).Scan(
		&sel.ProjectID, &sel.StepID, &raw, &sel.UpdatedAt,
	)
	if err != nil {
		return model.StepSelection{}, fmt.Errorf("UpsertSelection: %w", err)
	}

	if err := json.Unmarshal(raw, &sel.DocumentIDs); err != nil {
		return model.StepSelection{}, fmt.Errorf("UpsertSelection unmarshal: %w", err)
	}

	return sel, nil
}

// GetSelection fetches the selection for one step of a project.
func (r *implRepository) GetSelection(ctx context.Context, projectID, stepID string) (model.StepSelection, error) {
	query := `
		SELECT project_id, step_id, document_ids, updated_at
		FROM ecp.step_selections
		WHERE project_id = $1 AND step_id = $2
	`

	var sel model.StepSelection
	var raw []byte
	err := r.db.QueryRowContext(ctx, query, projectID, stepID).Scan(
		&sel.ProjectID, &sel.StepID, &raw, &sel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.StepSelection{}, repository.ErrNotFound
		}
		return model.StepSelection{}, fmt.Errorf("GetSelection: %w", err)
	}

	if err := json.Unmarshal(raw, &sel.DocumentIDs); err != nil {
		return model.StepSelection{}, fmt.Errorf("GetSelection unmarshal: %w", err)
	}

	return sel, nil
}

// RemoveDocumentFromSelections drops a deleted document from every
// step selection that still references it.
func (r *implRepository) RemoveDocumentFromSelections(ctx context.Context, documentID string) error {
	query := `
		UPDATE ecp.step_selections
		SET document_ids = (
			SELECT COALESCE(jsonb_agg(elem), '[]'::jsonb)
			FROM jsonb_array_elements(document_ids) elem
			WHERE elem <> to_jsonb($1::text)
		), updated_at = $2
		WHERE document_ids @> to_jsonb($1::text)
	`

	if _, err := r.db.ExecContext(ctx, query, documentID, time.Now()); err != nil {
		return fmt.Errorf("RemoveDocumentFromSelections: %w", err)
	}
	return nil
}
