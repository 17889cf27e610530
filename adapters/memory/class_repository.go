// Package memory provides in-memory repository implementations used by
// tests and by session-scoped state that must not outlive the process.
package memory

import (
	"context"
	"sort"
	"sync"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/ports"
)

// classRepository is a mutex-guarded map-backed ClassRepository. All reads
// return copies so callers cannot mutate stored state.
type classRepository struct {
	mu      sync.RWMutex
	classes map[core.ID]class.Class
}

// NewClassRepository creates an in-memory class repository.
func NewClassRepository() ports.ClassRepository {
	return &classRepository{classes: make(map[core.ID]class.Class)}
}

func (r *classRepository) Create(_ context.Context, c *class.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.classes[c.ID] = *c
	return nil
}

func (r *classRepository) GetByID(_ context.Context, id core.ID) (*class.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[id]
	if !ok {
		return nil, core.NewNotFoundError("class", id.String())
	}
	out := c
	return &out, nil
}

func (r *classRepository) List(_ context.Context) ([]*class.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*class.Class, 0, len(r.classes))
	for _, c := range r.classes {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *classRepository) Update(_ context.Context, c *class.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.classes[c.ID]; !ok {
		return core.NewNotFoundError("class", c.ID.String())
	}
	r.classes[c.ID] = *c
	return nil
}

func (r *classRepository) Delete(_ context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.classes[id]; !ok {
		return core.NewNotFoundError("class", id.String())
	}
	delete(r.classes, id)
	return nil
}

// overrideRepository caches session-scoped column-role overrides.
type overrideRepository struct {
	mu        sync.RWMutex
	overrides map[core.ID]roster.RoleOverrides
}

// NewOverrideRepository creates an in-memory override repository.
func NewOverrideRepository() ports.OverrideRepository {
	return &overrideRepository{overrides: make(map[core.ID]roster.RoleOverrides)}
}

func (r *overrideRepository) Set(_ context.Context, fileID core.ID, header string, role roster.ColumnRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.overrides[fileID] == nil {
		r.overrides[fileID] = make(roster.RoleOverrides)
	}
	r.overrides[fileID][header] = role
	return nil
}

func (r *overrideRepository) Get(_ context.Context, fileID core.ID) (roster.RoleOverrides, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(roster.RoleOverrides, len(r.overrides[fileID]))
	for h, role := range r.overrides[fileID] {
		out[h] = role
	}
	return out, nil
}

func (r *overrideRepository) Clear(_ context.Context, fileID core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.overrides, fileID)
	return nil
}
