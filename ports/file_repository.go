package ports

import (
	"context"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/domain/roster"
)

// ImportFileRepository stores completed spreadsheet imports: the file record
// plus its materialized table content. The stored table is canonical; the
// client-side reader only ever produces upload-time previews.
type ImportFileRepository interface {
	Create(ctx context.Context, f *class.ImportFile, t roster.Table) error
	GetByID(ctx context.Context, id core.ID) (*class.ImportFile, error)
	ListByClass(ctx context.Context, classID core.ID) ([]*class.ImportFile, error)
	GetTable(ctx context.Context, id core.ID) (roster.Table, error)
	UpdateTable(ctx context.Context, id core.ID, t roster.Table) error
	Delete(ctx context.Context, id core.ID) error
}
