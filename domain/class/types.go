// Package class defines the class registry entities: the classes an
// instructor manages and the spreadsheet files imported into them.
package class

import (
	"time"

	"rosterd/domain/core"
)

// Class is one managed class/group. The registry of classes is an explicit
// repository dependency, never process-global state.
type Class struct {
	ID        core.ID   `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Course    string    `json:"course" db:"course"`
	Section   string    `json:"section" db:"section"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ImportFile is the record of one completed spreadsheet import: identity and
// upload metadata. The materialized sheet content is stored alongside it and
// served back as headers plus per-row header→value objects.
type ImportFile struct {
	ID         core.ID   `json:"id" db:"id"`
	ClassID    core.ID   `json:"class_id" db:"class_id"`
	Name       string    `json:"name" db:"name"`
	RowCount   int       `json:"row_count" db:"row_count"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// SheetContent is the client-facing materialized view of a stored sheet.
type SheetContent struct {
	Headers []string            `json:"headers"`
	Data    []map[string]string `json:"data"`
}
