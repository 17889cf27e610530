// Package roster holds the tabular roster model produced by spreadsheet
// ingestion: a rectangular table of string cells whose first row is the
// header row, plus the derived per-student view of it.
package roster

// Table is the uniform representation of a parsed spreadsheet. Row 0 of the
// source file becomes Headers; the remaining rows become Rows. Every row has
// exactly len(Headers) cells: the reader pads short rows with "" and
// truncates long ones, so a Table is rectangular by construction.
//
// Duplicate headers are preserved verbatim. Lookups by header name resolve
// to the first occurrence.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewTable builds a rectangular table from raw parsed rows. The first raw
// row is taken as the header row. Returns an empty table if raw is empty.
func NewTable(raw [][]string) Table {
	if len(raw) == 0 {
		return Table{}
	}
	t := Table{Headers: raw[0]}
	width := len(t.Headers)
	t.Rows = make([][]string, 0, len(raw)-1)
	for _, src := range raw[1:] {
		row := make([]string, width)
		copy(row, src)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ColumnIndex returns the index of the first column with the given header,
// or -1 if no such column exists.
func (t *Table) ColumnIndex(header string) int {
	for i, h := range t.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// AddColumn appends a new column with the given header and a default empty
// cell on every existing row.
func (t *Table) AddColumn(header string) {
	t.Headers = append(t.Headers, header)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], "")
	}
}

// SetCell writes value into the given row and column. Returns false if the
// coordinates are out of range.
func (t *Table) SetCell(row, col int, value string) bool {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Headers) {
		return false
	}
	t.Rows[row][col] = value
	return true
}

// Cell reads the value at the given row and column, or "" if out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Headers) {
		return ""
	}
	return t.Rows[row][col]
}

// Clone returns a deep copy of the table. Repositories hand out clones so
// callers cannot mutate stored state through the returned value.
func (t *Table) Clone() Table {
	out := Table{Headers: append([]string(nil), t.Headers...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// Truncate returns a copy of the table keeping at most maxRows data rows.
// Used for wizard previews; the header row is always kept.
func (t *Table) Truncate(maxRows int) Table {
	out := t.Clone()
	if maxRows >= 0 && len(out.Rows) > maxRows {
		out.Rows = out.Rows[:maxRows]
	}
	return out
}
