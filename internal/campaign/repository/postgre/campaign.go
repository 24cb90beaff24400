package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-srv/internal/campaign/repository"
	"campaign-srv/internal/model"

	"github.com/google/uuid"
)

const campaignColumns = `id, project_id, ecp_name, problem_core, country, industry,
	status, error_message, current_step_id, step_outputs, started_at, completed_at,
	created_at, updated_at`

// CreateCampaign inserts a new draft campaign with an empty output mapping.
func (r *implRepository) CreateCampaign(ctx context.Context, opt repository.CreateCampaignOptions) (model.Campaign, error) {
	id := uuid.New().String()
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO ecp.campaigns (id, project_id, ecp_name, problem_core, country, industry,
			status, error_message, step_outputs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '', '{}'::jsonb, $8, $8)
		RETURNING %s
	`, campaignColumns)

	row := r.db.QueryRowContext(ctx, query,
		id, opt.ProjectID, opt.ECPName, opt.ProblemCore, opt.Country, opt.Industry,
		string(model.CampaignStatusDraft), now,
	)
	camp, err := scanCampaign(row)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("CreateCampaign: %w", err)
	}
	return camp, nil
}

// GetCampaignByID fetches one campaign.
func (r *implRepository) GetCampaignByID(ctx context.Context, id string) (model.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM ecp.campaigns WHERE id = $1`, campaignColumns)

	camp, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Campaign{}, repository.ErrNotFound
		}
		return model.Campaign{}, fmt.Errorf("GetCampaignByID: %w", err)
	}
	return camp, nil
}

// ListCampaigns pages a project's campaigns, newest first.
func (r *implRepository) ListCampaigns(ctx context.Context, opt repository.ListCampaignsOptions) ([]model.Campaign, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ecp.campaigns WHERE project_id = $1`, opt.ProjectID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListCampaigns count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM ecp.campaigns
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, campaignColumns)
	args := []interface{}{opt.ProjectID}
	argIdx := 2

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
		argIdx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListCampaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		camp, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListCampaigns scan: %w", err)
		}
		campaigns = append(campaigns, camp)
	}

	return campaigns, total, rows.Err()
}

// TryMarkRunning is the atomic run guard: the UPDATE only matches when
// no run is active, so two simultaneous starts cannot both win.
func (r *implRepository) TryMarkRunning(ctx context.Context, id string, startedAt time.Time) (bool, error) {
	query := `
		UPDATE ecp.campaigns
		SET status = $1, started_at = $2, completed_at = NULL,
			error_message = '', current_step_id = NULL, updated_at = $2
		WHERE id = $3 AND status <> $1
	`

	res, err := r.db.ExecContext(ctx, query, string(model.CampaignStatusRunning), startedAt, id)
	if err != nil {
		return false, fmt.Errorf("TryMarkRunning: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("TryMarkRunning affected: %w", err)
	}
	return affected > 0, nil
}

// FinishRun records the terminal status of a run.
func (r *implRepository) FinishRun(ctx context.Context, opt repository.FinishRunOptions) error {
	query := `
		UPDATE ecp.campaigns
		SET status = $1, error_message = $2, current_step_id = NULLIF($3, ''),
			completed_at = $4, updated_at = $4
		WHERE id = $5
	`

	_, err := r.db.ExecContext(ctx, query,
		string(opt.Status), opt.ErrorMessage, opt.CurrentStepID, opt.CompletedAt, opt.ID,
	)
	if err != nil {
		return fmt.Errorf("FinishRun: %w", err)
	}
	return nil
}

// SetCurrentStep moves the run pointer to the given step.
func (r *implRepository) SetCurrentStep(ctx context.Context, id, stepID string) error {
	query := `
		UPDATE ecp.campaigns
		SET current_step_id = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, stepID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("SetCurrentStep: %w", err)
	}
	return nil
}

// SaveStepOutput upserts one entry of the step_outputs mapping without
// touching the other entries.
func (r *implRepository) SaveStepOutput(ctx context.Context, id, stepID string, output model.StepOutput) error {
	payload, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("SaveStepOutput marshal: %w", err)
	}

	query := `
		UPDATE ecp.campaigns
		SET step_outputs = jsonb_set(COALESCE(step_outputs, '{}'::jsonb), ARRAY[$1], $2::jsonb),
			updated_at = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, stepID, payload, time.Now(), id)
	if err != nil {
		return fmt.Errorf("SaveStepOutput: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("SaveStepOutput affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (model.Campaign, error) {
	var camp model.Campaign
	var errorMessage, currentStepID sql.NullString
	var stepOutputs []byte
	var startedAt, completedAt sql.NullTime

	if err := row.Scan(
		&camp.ID, &camp.ProjectID, &camp.ECPName, &camp.ProblemCore,
		&camp.Country, &camp.Industry, &camp.Status, &errorMessage,
		&currentStepID, &stepOutputs, &startedAt, &completedAt,
		&camp.CreatedAt, &camp.UpdatedAt,
	); err != nil {
		return model.Campaign{}, err
	}

	camp.ErrorMessage = errorMessage.String
	camp.CurrentStepID = currentStepID.String
	if startedAt.Valid {
		camp.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		camp.CompletedAt = &completedAt.Time
	}

	camp.StepOutputs = map[string]model.StepOutput{}
	if len(stepOutputs) > 0 {
		if err := json.Unmarshal(stepOutputs, &camp.StepOutputs); err != nil {
			return model.Campaign{}, fmt.Errorf("step_outputs unmarshal: %w", err)
		}
	}

	return camp, nil
}
