package ports

import (
	"context"

	"rosterd/domain/core"
	"rosterd/domain/roster"
)

// OverrideRepository caches manual column-role picks for the duration of a
// session. Overrides are deliberately not persisted: a fresh load always
// starts from classifier output.
type OverrideRepository interface {
	Set(ctx context.Context, fileID core.ID, header string, role roster.ColumnRole) error
	Get(ctx context.Context, fileID core.ID) (roster.RoleOverrides, error)
	Clear(ctx context.Context, fileID core.ID) error
}
