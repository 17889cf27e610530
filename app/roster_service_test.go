package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/adapters/memory"
	"rosterd/domain/class"
	"rosterd/domain/classify"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/ports"
)

func newRosterFixture(t *testing.T, raw [][]string) (*RosterService, core.ID, ports.ImportFileRepository) {
	t.Helper()
	files := memory.NewImportFileRepository()
	overrides := memory.NewOverrideRepository()

	file := &class.ImportFile{ID: core.NewID(), ClassID: core.NewID(), Name: "roster.csv", UploadedAt: time.Now()}
	require.NoError(t, files.Create(context.Background(), file, roster.NewTable(raw)))

	svc := NewRosterService(files, overrides, classify.NewDefault())
	return svc, file.ID, files
}

func TestRosterService_Columns(t *testing.T) {
	svc, fileID, _ := newRosterFixture(t, [][]string{
		{"ID", "First Name", "Last Name", "Quiz 1", "Final Exam"},
		{"1", "Ada", "Lovelace", "85", "90"},
	})

	cols, ambiguous, err := svc.Columns(context.Background(), fileID)
	require.NoError(t, err)
	assert.False(t, ambiguous)

	roles := make(map[string]roster.ColumnRole)
	for _, c := range cols {
		roles[c.Header] = c.Role
	}
	assert.Equal(t, roster.RoleFirstName, roles["First Name"])
	assert.Equal(t, roster.RoleLastName, roles["Last Name"])
	assert.Equal(t, roster.RoleIdentifier, roles["ID"])
	assert.Equal(t, roster.RoleAssessment, roles["Quiz 1"])
	assert.Equal(t, roster.RoleAssessment, roles["Final Exam"])
}

func TestRosterService_AmbiguousThenOverride(t *testing.T) {
	svc, fileID, _ := newRosterFixture(t, [][]string{
		{"Col A", "Col B"},
		{"Ada Lovelace", "85"},
	})
	ctx := context.Background()

	_, ambiguous, err := svc.Columns(ctx, fileID)
	require.NoError(t, err)
	assert.True(t, ambiguous, "no name column should prompt a manual pick")

	require.NoError(t, svc.OverrideColumn(ctx, fileID, "Col A", roster.RoleFirstName))

	cols, ambiguous, err := svc.Columns(ctx, fileID)
	require.NoError(t, err)
	assert.False(t, ambiguous, "a manual name override resolves the ambiguity")
	for _, c := range cols {
		if c.Header == "Col A" {
			assert.Equal(t, roster.RoleFirstName, c.Role)
		}
	}

	students, err := svc.Students(ctx, fileID, "")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", students[0].DisplayName)
}

func TestRosterService_OverrideValidation(t *testing.T) {
	svc, fileID, _ := newRosterFixture(t, [][]string{{"Name"}, {"Ada"}})
	ctx := context.Background()

	err := svc.OverrideColumn(ctx, fileID, "Missing", roster.RoleFirstName)
	assert.Error(t, err, "unknown header must be rejected")

	err = svc.OverrideColumn(ctx, fileID, "Name", roster.ColumnRole("bogus"))
	assert.Error(t, err, "unknown role must be rejected")
}

func TestRosterService_StudentsSearch(t *testing.T) {
	svc, fileID, _ := newRosterFixture(t, [][]string{
		{"First Name", "Last Name", "Quiz 1"},
		{"Ada", "Lovelace", "85"},
		{"Grace", "Hopper", "90"},
		{"Alan", "Turing", "70"},
	})
	ctx := context.Background()

	all, err := svc.Students(ctx, fileID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hits, err := svc.Students(ctx, fileID, "hopper")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Grace Hopper", hits[0].DisplayName)

	student, err := svc.Student(ctx, fileID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Alan Turing", student.DisplayName)

	_, err = svc.Student(ctx, fileID, 99)
	assert.Error(t, err)
}

func TestRosterService_AddAssessmentColumn(t *testing.T) {
	svc, fileID, files := newRosterFixture(t, [][]string{
		{"Name", "Quiz 1", "Quiz 2"},
		{"Ada", "85", "90"},
	})
	ctx := context.Background()

	header, err := svc.AddAssessmentColumn(ctx, fileID, classify.CategoryQuiz)
	require.NoError(t, err)
	assert.Equal(t, "Quiz 3", header)

	table, err := files.GetTable(ctx, fileID)
	require.NoError(t, err)
	assert.Len(t, table.Headers, 4)
	for _, row := range table.Rows {
		assert.Len(t, row, 4)
		assert.Equal(t, "", row[3])
	}
}

func TestRosterService_SetCell(t *testing.T) {
	svc, fileID, files := newRosterFixture(t, [][]string{
		{"Name", "Quiz 1"},
		{"Ada", ""},
	})
	ctx := context.Background()

	require.NoError(t, svc.SetCell(ctx, fileID, 0, "Quiz 1", "85/100"))

	table, err := files.GetTable(ctx, fileID)
	require.NoError(t, err)
	assert.Equal(t, "85/100", table.Cell(0, 1))

	assert.Error(t, svc.SetCell(ctx, fileID, 5, "Quiz 1", "85"), "out-of-range row")
	assert.Error(t, svc.SetCell(ctx, fileID, 0, "Nope", "85"), "unknown header")
}
