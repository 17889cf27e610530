package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/ports"
)

// classRepository implements the ClassRepository interface
type classRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *sqlx.DB) ports.ClassRepository {
	return &classRepository{db: db}
}

// Create inserts a new class into the database
func (r *classRepository) Create(ctx context.Context, c *class.Class) error {
	query := `INSERT INTO classes (id, name, course, section, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Course, c.Section, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

// GetByID retrieves a class by its ID
func (r *classRepository) GetByID(ctx context.Context, id core.ID) (*class.Class, error) {
	query := `SELECT id, name, COALESCE(course, '') as course, COALESCE(section, '') as section,
		created_at, updated_at
	FROM classes WHERE id = $1`

	var c class.Class
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("class", id.String())
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &c, nil
}

// List retrieves all classes, newest first
func (r *classRepository) List(ctx context.Context) ([]*class.Class, error) {
	query := `SELECT id, name, COALESCE(course, '') as course, COALESCE(section, '') as section,
		created_at, updated_at
	FROM classes ORDER BY created_at DESC`

	var classes []*class.Class
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

// Update modifies an existing class
func (r *classRepository) Update(ctx context.Context, c *class.Class) error {
	query := `UPDATE classes SET name = $2, course = $3, section = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Course, c.Section, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return core.NewNotFoundError("class", c.ID.String())
	}
	return nil
}

// Delete removes a class and, via FK cascade, its imported files
func (r *classRepository) Delete(ctx context.Context, id core.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return core.NewNotFoundError("class", id.String())
	}
	return nil
}
