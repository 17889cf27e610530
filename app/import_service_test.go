package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterd/adapters/memory"
	"rosterd/adapters/spreadsheet"
	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/internal/wizard"
)

func newImportFixture(t *testing.T) (*ImportService, core.ID) {
	t.Helper()
	classes := memory.NewClassRepository()
	files := memory.NewImportFileRepository()

	c := &class.Class{ID: core.NewID(), Name: "CS101", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, classes.Create(context.Background(), c))

	svc := NewImportService(wizard.NewManager(), spreadsheet.NewReader(), classes, files, spreadsheet.PreviewRowLimit)
	return svc, c.ID
}

const rosterCSV = "First Name,Last Name,Quiz 1\nAda,Lovelace,85\nGrace,Hopper,90\n"

func TestImportService_FullFlow(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepFileInfo, snap.Step)

	snap, err = svc.Pick(ctx, snap.ID, "roster.csv", []byte(rosterCSV))
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPreviewData, snap.Step)
	assert.Len(t, snap.Preview.Rows, 2)

	file, err := svc.Import(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, classID, file.ClassID)
	assert.Equal(t, 2, file.RowCount)

	// Session terminated on success.
	_, err = svc.Session(ctx, snap.ID)
	assert.True(t, errors.Is(err, core.ErrSessionNotFound), "got %v", err)
}

func TestImportService_PreviewIsBounded(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	csv := "Name\n"
	for i := 0; i < 30; i++ {
		csv += "student\n"
	}

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)
	snap, err = svc.Pick(ctx, snap.ID, "big.csv", []byte(csv))
	require.NoError(t, err)
	assert.Len(t, snap.Preview.Rows, spreadsheet.PreviewRowLimit)

	// Final import re-reads the whole file, unbounded.
	file, err := svc.Import(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, file.RowCount)
}

func TestImportService_UnsupportedFormatStaysInFileInfo(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)

	_, err = svc.Pick(ctx, snap.ID, "roster.pdf", []byte("%PDF"))
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat), "got %v", err)

	got, err := svc.Session(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepFileInfo, got.Step, "a failed pick must not advance the wizard")
}

func TestImportService_ImportWithoutPick(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)

	_, err = svc.Import(ctx, snap.ID)
	assert.True(t, errors.Is(err, core.ErrNoFilePicked), "got %v", err)
}

func TestImportService_BackRequiresRepick(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)
	snap, err = svc.Pick(ctx, snap.ID, "roster.csv", []byte(rosterCSV))
	require.NoError(t, err)

	snap, err = svc.Back(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepFileInfo, snap.Step)
	assert.Empty(t, snap.FileName)

	_, err = svc.Import(ctx, snap.ID)
	assert.True(t, errors.Is(err, core.ErrNoFilePicked), "got %v", err)
}

func TestImportService_CancelDiscardsSession(t *testing.T) {
	svc, classID := newImportFixture(t)
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, classID)
	require.NoError(t, err)
	require.NoError(t, svc.CancelSession(ctx, snap.ID))

	_, err = svc.Session(ctx, snap.ID)
	assert.True(t, errors.Is(err, core.ErrSessionNotFound), "got %v", err)
}

func TestImportService_UnknownClass(t *testing.T) {
	svc, _ := newImportFixture(t)
	_, err := svc.StartSession(context.Background(), core.NewID())
	assert.True(t, core.IsNotFoundError(err), "got %v", err)
}
