package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/ports"
)

// fileRepository implements the ImportFileRepository interface. The
// materialized table content is stored as a JSONB column next to the file
// record so the listing endpoint can serve it without re-parsing the upload.
type fileRepository struct {
	db *sqlx.DB
}

// NewImportFileRepository creates a new import file repository
func NewImportFileRepository(db *sqlx.DB) ports.ImportFileRepository {
	return &fileRepository{db: db}
}

// Create inserts a file record together with its table content
func (r *fileRepository) Create(ctx context.Context, f *class.ImportFile, t roster.Table) error {
	contentJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet content: %w", err)
	}

	query := `INSERT INTO import_files (id, class_id, name, row_count, content, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		f.ID, f.ClassID, f.Name, len(t.Rows), contentJSON, f.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create import file: %w", err)
	}
	return nil
}

// GetByID retrieves a file record by its ID
func (r *fileRepository) GetByID(ctx context.Context, id core.ID) (*class.ImportFile, error) {
	query := `SELECT id, class_id, name, row_count, uploaded_at
	FROM import_files WHERE id = $1`

	var f class.ImportFile
	err := r.db.GetContext(ctx, &f, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("file", id.String())
		}
		return nil, fmt.Errorf("failed to get import file: %w", err)
	}
	return &f, nil
}

// ListByClass retrieves the file records of one class, newest first
func (r *fileRepository) ListByClass(ctx context.Context, classID core.ID) ([]*class.ImportFile, error) {
	query := `SELECT id, class_id, name, row_count, uploaded_at
	FROM import_files WHERE class_id = $1 ORDER BY uploaded_at DESC`

	var files []*class.ImportFile
	if err := r.db.SelectContext(ctx, &files, query, classID); err != nil {
		return nil, fmt.Errorf("failed to list import files: %w", err)
	}
	return files, nil
}

// GetTable retrieves the materialized table content of a file
func (r *fileRepository) GetTable(ctx context.Context, id core.ID) (roster.Table, error) {
	var contentJSON []byte
	err := r.db.QueryRowContext(ctx, `SELECT content FROM import_files WHERE id = $1`, id).Scan(&contentJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Table{}, core.NewNotFoundError("file", id.String())
		}
		return roster.Table{}, fmt.Errorf("failed to get sheet content: %w", err)
	}

	var t roster.Table
	if err := json.Unmarshal(contentJSON, &t); err != nil {
		return roster.Table{}, fmt.Errorf("failed to unmarshal sheet content: %w", err)
	}
	return t, nil
}

// UpdateTable replaces the materialized table content of a file
func (r *fileRepository) UpdateTable(ctx context.Context, id core.ID, t roster.Table) error {
	contentJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet content: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE import_files SET content = $2, row_count = $3 WHERE id = $1`,
		id, contentJSON, len(t.Rows),
	)
	if err != nil {
		return fmt.Errorf("failed to update sheet content: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return core.NewNotFoundError("file", id.String())
	}
	return nil
}

// Delete removes a file record and its content
func (r *fileRepository) Delete(ctx context.Context, id core.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM import_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete import file: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return core.NewNotFoundError("file", id.String())
	}
	return nil
}
