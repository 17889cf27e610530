// Package spreadsheet reads uploaded Excel and CSV byte streams into the
// uniform roster.Table representation.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"rosterd/domain/core"
	"rosterd/domain/roster"
)

// PreviewRowLimit is the number of data rows shown in the import wizard
// preview. The full unbounded read happens before final upload.
const PreviewRowLimit = 10

// Reader parses spreadsheet byte streams, dispatching on the declared file
// extension: xlsx/xls via excelize (first sheet only), csv via encoding/csv
// honoring quoted fields.
type Reader struct{}

// NewReader creates a spreadsheet reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the full stream into a Table. Row 0 becomes the header row,
// verbatim (duplicate headers preserved). Cell values are the cells' display
// text, trimmed. Short rows are padded with "" to header length and long
// rows truncated, so the result is always rectangular.
func (rd *Reader) Read(r io.Reader, declaredExt string) (roster.Table, error) {
	return rd.read(r, declaredExt, -1)
}

// ReadPreview parses at most maxDataRows data rows (plus the header row).
func (rd *Reader) ReadPreview(r io.Reader, declaredExt string, maxDataRows int) (roster.Table, error) {
	return rd.read(r, declaredExt, maxDataRows)
}

func (rd *Reader) read(r io.Reader, declaredExt string, maxDataRows int) (roster.Table, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(declaredExt), "."))

	var raw [][]string
	var err error
	switch ext {
	case "xlsx", "xls":
		raw, err = readWorkbook(r)
	case "csv":
		raw, err = readCSV(r)
	default:
		return roster.Table{}, core.NewUnsupportedFormatError(declaredExt)
	}
	if err != nil {
		return roster.Table{}, core.NewCorruptFileError(err)
	}
	if len(raw) == 0 || len(raw[0]) == 0 {
		return roster.Table{}, core.ErrEmptySheet
	}

	for i, row := range raw {
		for j, cell := range row {
			raw[i][j] = strings.TrimSpace(cell)
		}
	}
	if maxDataRows >= 0 && len(raw)-1 > maxDataRows {
		raw = raw[:maxDataRows+1]
	}
	return roster.NewTable(raw), nil
}

// readWorkbook reads the first sheet of an Excel workbook. GetRows returns
// formatted display text, so numeric and date cells arrive as the text the
// spreadsheet shows.
func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptySheet
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	// Buffer so a BOM, if present, can be stripped before parsing.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
