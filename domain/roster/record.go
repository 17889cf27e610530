package roster

import "strings"

// UnknownStudentName is the display name used when no name column could be
// resolved for a row.
const UnknownStudentName = "Unknown Student"

// StudentRecord is a derived view of one data row: the header→value mapping
// plus a resolved display name.
type StudentRecord struct {
	Row         int               `json:"row"`
	DisplayName string            `json:"display_name"`
	Values      map[string]string `json:"values"`
}

// NameColumns identifies which columns contribute to a student's display
// name. Exactly one of (First, Last) pair or Generic is typically set; all
// may be empty when classification found nothing.
type NameColumns struct {
	First   string
	Last    string
	Generic string
}

// Records derives StudentRecords for every data row of the table. The
// display name is "<first> <last>" when both name columns resolved, a single
// generic name column otherwise, and UnknownStudentName as the fallback.
// Duplicate headers collapse to the first occurrence in the value map.
func (t *Table) Records(names NameColumns) []StudentRecord {
	firstIdx := t.nameIndex(names.First)
	lastIdx := t.nameIndex(names.Last)
	genericIdx := t.nameIndex(names.Generic)

	records := make([]StudentRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		values := make(map[string]string, len(t.Headers))
		for j, h := range t.Headers {
			if _, seen := values[h]; seen {
				continue
			}
			values[h] = row[j]
		}
		records = append(records, StudentRecord{
			Row:         i,
			DisplayName: displayName(row, firstIdx, lastIdx, genericIdx),
			Values:      values,
		})
	}
	return records
}

// nameIndex resolves a name column header, treating "" as "not set" rather
// than matching a blank header.
func (t *Table) nameIndex(header string) int {
	if header == "" {
		return -1
	}
	return t.ColumnIndex(header)
}

func displayName(row []string, firstIdx, lastIdx, genericIdx int) string {
	var parts []string
	if firstIdx >= 0 && strings.TrimSpace(row[firstIdx]) != "" {
		parts = append(parts, strings.TrimSpace(row[firstIdx]))
	}
	if lastIdx >= 0 && strings.TrimSpace(row[lastIdx]) != "" {
		parts = append(parts, strings.TrimSpace(row[lastIdx]))
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if genericIdx >= 0 && strings.TrimSpace(row[genericIdx]) != "" {
		return strings.TrimSpace(row[genericIdx])
	}
	return UnknownStudentName
}
