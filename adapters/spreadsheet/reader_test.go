package spreadsheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rosterd/domain/core"
)

func TestRead_CSV(t *testing.T) {
	csv := "First Name,Last Name,Quiz 1\nAda,Lovelace,85\n\"Grace, M.\",Hopper,90\n"
	table, err := NewReader().Read(strings.NewReader(csv), "csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"First Name", "Last Name", "Quiz 1"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Grace, M.", table.Rows[1][0], "quoted fields must survive")
}

func TestRead_CSVRaggedRowsPadded(t *testing.T) {
	csv := "Name,Quiz 1,Quiz 2\nAda,85\nGrace,90,95\n"
	table, err := NewReader().Read(strings.NewReader(csv), "csv")
	require.NoError(t, err)

	for i, row := range table.Rows {
		assert.Len(t, row, len(table.Headers), "row %d must match header width", i)
	}
	assert.Equal(t, "", table.Rows[0][2])
}

func TestRead_CSVWithBOM(t *testing.T) {
	csv := "\xEF\xBB\xBFName\nAda\n"
	table, err := NewReader().Read(strings.NewReader(csv), "csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, table.Headers)
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"First Name", "Last Name", "Quiz 1"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Ada", "Lovelace", 85}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Grace", "Hopper", 90}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := NewReader().Read(&buf, "xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"First Name", "Last Name", "Quiz 1"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "85", table.Rows[0][2], "numeric cells arrive as display text")
}

func TestReadPreview_Bounded(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Name\n")
	for i := 0; i < 25; i++ {
		sb.WriteString("student\n")
	}

	table, err := NewReader().ReadPreview(strings.NewReader(sb.String()), "csv", PreviewRowLimit)
	require.NoError(t, err)
	assert.Len(t, table.Rows, PreviewRowLimit)
	assert.Equal(t, []string{"Name"}, table.Headers, "header row is always kept")
}

func TestRead_UnsupportedFormat(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("x"), "pdf")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat), "got %v", err)
}

func TestRead_CorruptFile(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("not a zip archive"), "xlsx")
	assert.True(t, errors.Is(err, core.ErrCorruptFile), "got %v", err)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader(""), "csv")
	assert.Error(t, err)
}

func TestRead_ExtensionNormalization(t *testing.T) {
	table, err := NewReader().Read(strings.NewReader("Name\nAda\n"), ".CSV")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}
