package ports

import (
	"context"

	"rosterd/domain/class"
	"rosterd/domain/core"
)

// ClassRepository defines the interface for class registry storage. It
// replaces any notion of a global in-memory class list: implementations
// return copies, so callers never share mutable state.
type ClassRepository interface {
	Create(ctx context.Context, c *class.Class) error
	GetByID(ctx context.Context, id core.ID) (*class.Class, error)
	List(ctx context.Context) ([]*class.Class, error)
	Update(ctx context.Context, c *class.Class) error
	Delete(ctx context.Context, id core.ID) error
}
