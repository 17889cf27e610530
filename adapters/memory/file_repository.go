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

// fileRepository is a map-backed ImportFileRepository. Tables are cloned on
// the way in and out so stored content is never shared.
type fileRepository struct {
	mu     sync.RWMutex
	files  map[core.ID]class.ImportFile
	tables map[core.ID]roster.Table
}

// NewImportFileRepository creates an in-memory import file repository.
func NewImportFileRepository() ports.ImportFileRepository {
	return &fileRepository{
		files:  make(map[core.ID]class.ImportFile),
		tables: make(map[core.ID]roster.Table),
	}
}

func (r *fileRepository) Create(_ context.Context, f *class.ImportFile, t roster.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *f
	stored.RowCount = len(t.Rows)
	r.files[f.ID] = stored
	r.tables[f.ID] = t.Clone()
	return nil
}

func (r *fileRepository) GetByID(_ context.Context, id core.ID) (*class.ImportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.files[id]
	if !ok {
		return nil, core.NewNotFoundError("file", id.String())
	}
	out := f
	return &out, nil
}

func (r *fileRepository) ListByClass(_ context.Context, classID core.ID) ([]*class.ImportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*class.ImportFile
	for _, f := range r.files {
		if f.ClassID == classID {
			ff := f
			out = append(out, &ff)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (r *fileRepository) GetTable(_ context.Context, id core.ID) (roster.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[id]
	if !ok {
		return roster.Table{}, core.NewNotFoundError("file", id.String())
	}
	return t.Clone(), nil
}

func (r *fileRepository) UpdateTable(_ context.Context, id core.ID, t roster.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[id]
	if !ok {
		return core.NewNotFoundError("file", id.String())
	}
	f.RowCount = len(t.Rows)
	r.files[id] = f
	r.tables[id] = t.Clone()
	return nil
}

func (r *fileRepository) Delete(_ context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return core.NewNotFoundError("file", id.String())
	}
	delete(r.files, id)
	delete(r.tables, id)
	return nil
}
