package app

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/internal/wizard"
	"rosterd/ports"
)

// ImportService orchestrates the import wizard: preview reads on pick, the
// unbounded re-read plus persist on import, and session teardown.
type ImportService struct {
	sessions    *wizard.Manager
	reader      ports.SpreadsheetReader
	classes     ports.ClassRepository
	files       ports.ImportFileRepository
	previewRows int
}

// NewImportService creates an import service.
func NewImportService(sessions *wizard.Manager, reader ports.SpreadsheetReader, classes ports.ClassRepository, files ports.ImportFileRepository, previewRows int) *ImportService {
	return &ImportService{
		sessions:    sessions,
		reader:      reader,
		classes:     classes,
		files:       files,
		previewRows: previewRows,
	}
}

// StartSession opens a wizard session for a class.
func (s *ImportService) StartSession(ctx context.Context, classID core.ID) (wizard.Snapshot, error) {
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return wizard.Snapshot{}, err
	}
	sess := s.sessions.Create(classID)
	return sess.Snapshot(), nil
}

// Pick reads a preview of the uploaded file (header plus a bounded number of
// data rows) and advances the session to the PreviewData step. A pick that
// is superseded by a newer one is abandoned: its read context is cancelled
// and its result discarded.
func (s *ImportService) Pick(ctx context.Context, sessionID core.ID, fileName string, data []byte) (wizard.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}

	pickCtx, err := sess.BeginPick(ctx)
	if err != nil {
		return wizard.Snapshot{}, err
	}

	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")

	type readResult struct {
		table roster.Table
		err   error
	}
	done := make(chan readResult, 1)
	go func() {
		t, rerr := s.reader.ReadPreview(bytes.NewReader(data), ext, s.previewRows)
		done <- readResult{table: t, err: rerr}
	}()

	select {
	case <-pickCtx.Done():
		return wizard.Snapshot{}, pickCtx.Err()
	case res := <-done:
		if res.err != nil {
			return wizard.Snapshot{}, res.err
		}
		if err := sess.CompletePick(pickCtx, fileName, ext, data, res.table); err != nil {
			return wizard.Snapshot{}, err
		}
		return sess.Snapshot(), nil
	}
}

// Back returns the session to the FileInfo step, discarding the picked file.
func (s *ImportService) Back(_ context.Context, sessionID core.ID) (wizard.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	if err := sess.Back(); err != nil {
		return wizard.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Import performs the full unbounded read of the picked file and persists it
// for the session's class. On success the session is finished and removed;
// on failure the session stays in PreviewData so the user can retry
// manually. No automatic retry happens here.
func (s *ImportService) Import(ctx context.Context, sessionID core.ID) (*class.ImportFile, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	name, ext, data, err := sess.File()
	if err != nil {
		return nil, err
	}

	table, err := s.reader.Read(bytes.NewReader(data), ext)
	if err != nil {
		return nil, err
	}

	file := &class.ImportFile{
		ID:         core.NewID(),
		ClassID:    sess.ClassID,
		Name:       name,
		RowCount:   len(table.Rows),
		UploadedAt: time.Now(),
	}
	if err := s.files.Create(ctx, file, table); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUpload, err)
	}

	s.sessions.Finish(sessionID)
	return file, nil
}

// CancelSession discards a session and all of its state.
func (s *ImportService) CancelSession(_ context.Context, sessionID core.ID) error {
	return s.sessions.Remove(sessionID)
}

// Session returns the current state of a session.
func (s *ImportService) Session(_ context.Context, sessionID core.ID) (wizard.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}
