package wizard

import (
	"context"
	"errors"
	"testing"

	"rosterd/domain/core"
	"rosterd/domain/roster"
)

func previewTable() roster.Table {
	return roster.NewTable([][]string{{"Name"}, {"Ada"}})
}

func TestSession_HappyPath(t *testing.T) {
	s := NewSession(core.NewID())
	if snap := s.Snapshot(); snap.Step != StepFileInfo {
		t.Fatalf("Expected new session in FileInfo, got %s", snap.Step)
	}

	ctx, err := s.BeginPick(context.Background())
	if err != nil {
		t.Fatalf("BeginPick failed: %v", err)
	}
	if err := s.CompletePick(ctx, "roster.csv", "csv", []byte("Name\nAda\n"), previewTable()); err != nil {
		t.Fatalf("CompletePick failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Step != StepPreviewData {
		t.Errorf("Expected PreviewData step, got %s", snap.Step)
	}
	if snap.FileName != "roster.csv" {
		t.Errorf("Expected file name to be recorded, got %q", snap.FileName)
	}
	if len(snap.Preview.Rows) != 1 {
		t.Errorf("Expected preview rows, got %d", len(snap.Preview.Rows))
	}
}

func TestSession_NewPickSupersedesInFlight(t *testing.T) {
	s := NewSession(core.NewID())

	first, err := s.BeginPick(context.Background())
	if err != nil {
		t.Fatalf("BeginPick failed: %v", err)
	}
	second, err := s.BeginPick(context.Background())
	if err != nil {
		t.Fatalf("second BeginPick failed: %v", err)
	}

	select {
	case <-first.Done():
	default:
		t.Fatal("Expected the first pick context to be cancelled by the second pick")
	}

	// The superseded pick cannot complete.
	if err := s.CompletePick(first, "old.csv", "csv", nil, previewTable()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled completing a superseded pick, got %v", err)
	}
	// The newer pick still can.
	if err := s.CompletePick(second, "new.csv", "csv", []byte("Name\n"), previewTable()); err != nil {
		t.Errorf("Expected the newer pick to complete, got %v", err)
	}
}

func TestSession_BackDiscardsFile(t *testing.T) {
	s := NewSession(core.NewID())
	ctx, _ := s.BeginPick(context.Background())
	if err := s.CompletePick(ctx, "roster.csv", "csv", []byte("Name\n"), previewTable()); err != nil {
		t.Fatalf("CompletePick failed: %v", err)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.Step != StepFileInfo {
		t.Errorf("Expected FileInfo after Back, got %s", snap.Step)
	}
	if snap.FileName != "" {
		t.Errorf("Expected picked file to be discarded, got %q", snap.FileName)
	}
	if _, _, _, err := s.File(); !errors.Is(err, core.ErrNoFilePicked) {
		t.Errorf("Expected ErrNoFilePicked after Back, got %v", err)
	}
}

func TestSession_BackOnlyFromPreview(t *testing.T) {
	s := NewSession(core.NewID())
	if err := s.Back(); !errors.Is(err, core.ErrWrongStep) {
		t.Errorf("Expected ErrWrongStep, got %v", err)
	}
}

func TestSession_CancelDiscardsEverything(t *testing.T) {
	s := NewSession(core.NewID())
	ctx, _ := s.BeginPick(context.Background())
	if err := s.CompletePick(ctx, "roster.csv", "csv", []byte("Name\n"), previewTable()); err != nil {
		t.Fatalf("CompletePick failed: %v", err)
	}

	s.Cancel()

	if _, err := s.BeginPick(context.Background()); !errors.Is(err, core.ErrSessionFinished) {
		t.Errorf("Expected ErrSessionFinished after Cancel, got %v", err)
	}
	if snap := s.Snapshot(); !snap.Finished || snap.FileName != "" {
		t.Errorf("Expected cleared finished snapshot, got %+v", snap)
	}
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()
	s := m.Create(core.NewID())

	got, err := m.Get(s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("Expected to retrieve session, got %v %v", got, err)
	}

	if err := m.Remove(s.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, core.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
	if err := m.Remove(s.ID); !errors.Is(err, core.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on double remove, got %v", err)
	}
}
