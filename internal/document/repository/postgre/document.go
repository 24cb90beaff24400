package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campaign-srv/internal/document/repository"
	"campaign-srv/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateDocument inserts a new document record.
func (r *implRepository) CreateDocument(ctx context.Context, opt repository.CreateDocumentOptions) (model.Document, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO ecp.documents (id, project_id, filename, category, content, tokens, file_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, project_id, filename, category, content, tokens, file_size, created_at
	`

	var doc model.Document
	err := r.db.QueryRowContext(ctx, query,
		id, opt.ProjectID, opt.Filename, string(opt.Category), opt.Content, opt.Tokens, opt.FileSize, now,
	).Scan(
		&doc.ID, &doc.ProjectID, &doc.Filename, &doc.Category,
		&doc.Content, &doc.Tokens, &doc.FileSize, &doc.CreatedAt,
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("CreateDocument: %w", err)
	}

	return doc, nil
}

// GetDocumentByID fetches one document.
func (r *implRepository) GetDocumentByID(ctx context.Context, id string) (model.Document, error) {
	query := `
		SELECT id, project_id, filename, category, content, tokens, file_size, created_at
		FROM ecp.documents
		WHERE id = $1
	`

	var doc model.Document
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doc.ID, &doc.ProjectID, &doc.Filename, &doc.Category,
		&doc.Content, &doc.Tokens, &doc.FileSize, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, repository.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("GetDocumentByID: %w", err)
	}

	return doc, nil
}

// GetDocumentsByIDs fetches documents preserving the order of ids.
func (r *implRepository) GetDocumentsByIDs(ctx context.Context, ids []string) ([]model.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, project_id, filename, category, content, tokens, file_size, created_at
		FROM ecp.documents
		WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("GetDocumentsByIDs: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]model.Document, len(ids))
	for rows.Next() {
		var doc model.Document
		if err := rows.Scan(
			&doc.ID, &doc.ProjectID, &doc.Filename, &doc.Category,
			&doc.Content, &doc.Tokens, &doc.FileSize, &doc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("GetDocumentsByIDs scan: %w", err)
		}
		byID[doc.ID] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetDocumentsByIDs rows: %w", err)
	}

	// Selection order matters for deterministic context assembly.
	docs := make([]model.Document, 0, len(byID))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// ListDocuments pages documents for a project, newest first.
func (r *implRepository) ListDocuments(ctx context.Context, opt repository.ListDocumentsOptions) ([]model.Document, int64, error) {
	countQuery := `SELECT COUNT(*) FROM ecp.documents WHERE project_id = $1`
	countArgs := []interface{}{opt.ProjectID}
	if opt.Category != "" {
		countQuery += ` AND category = $2`
		countArgs = append(countArgs, string(opt.Category))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListDocuments count: %w", err)
	}

	query := `
		SELECT id, project_id, filename, category, content, tokens, file_size, created_at
		FROM ecp.documents
		WHERE project_id = $1
	`
	args := []interface{}{opt.ProjectID}
	argIdx := 2

	if opt.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, string(opt.Category))
		argIdx++
	}

	query += " ORDER BY created_at DESC"

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
		return nil, 0, fmt.Errorf("ListDocuments: %w", err)
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var doc model.Document
		if err := rows.Scan(
			&doc.ID, &doc.ProjectID, &doc.Filename, &doc.Category,
			&doc.Content, &doc.Tokens, &doc.FileSize, &doc.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ListDocuments scan: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, total, rows.Err()
}

// DeleteDocument removes a document record.
func (r *implRepository) DeleteDocument(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ecp.documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteDocument: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteDocument affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
