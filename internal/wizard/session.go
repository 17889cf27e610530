// Package wizard implements the two-step import wizard state machine:
// FileInfo (pick a file) then PreviewData (confirm and import). Sessions are
// transient; cancelling or completing a session discards all of its state.
package wizard

import (
	"context"
	"sync"
	"time"

	"rosterd/domain/core"
	"rosterd/domain/roster"
)

// Step identifies the wizard step a session is in.
type Step string

const (
	StepFileInfo    Step = "file_info"
	StepPreviewData Step = "preview_data"
)

// Session holds the transient state of one import wizard run. A session is
// single-flight: starting a new pick cancels any in-flight preview read
// through the pick context, so stale work is abandoned actively instead of
// racing the newer read.
type Session struct {
	ID        core.ID
	ClassID   core.ID
	CreatedAt time.Time

	mu         sync.Mutex
	step       Step
	fileName   string
	fileExt    string
	fileData   []byte
	preview    roster.Table
	finished   bool
	cancelPick context.CancelFunc
}

// NewSession creates a session in the FileInfo step.
func NewSession(classID core.ID) *Session {
	return &Session{
		ID:        core.NewID(),
		ClassID:   classID,
		CreatedAt: time.Now(),
		step:      StepFileInfo,
	}
}

// BeginPick starts a file pick, superseding any pick still in flight. The
// returned context is cancelled when a newer pick starts or the session is
// cancelled.
func (s *Session) BeginPick(parent context.Context) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return nil, core.ErrSessionFinished
	}
	if s.step != StepFileInfo {
		return nil, core.ErrWrongStep
	}
	if s.cancelPick != nil {
		s.cancelPick()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancelPick = cancel
	return ctx, nil
}

// CompletePick records a successfully previewed file and advances the
// session to PreviewData. It is a no-op returning a context error when the
// pick was superseded before completing.
func (s *Session) CompletePick(ctx context.Context, name, ext string, data []byte, preview roster.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.finished {
		return core.ErrSessionFinished
	}
	s.fileName = name
	s.fileExt = ext
	s.fileData = data
	s.preview = preview
	s.step = StepPreviewData
	return nil
}

// Back returns to the FileInfo step, discarding the previously picked file.
// A new file must be picked before the wizard can advance again.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return core.ErrSessionFinished
	}
	if s.step != StepPreviewData {
		return core.ErrWrongStep
	}
	s.step = StepFileInfo
	s.fileName = ""
	s.fileExt = ""
	s.fileData = nil
	s.preview = roster.Table{}
	return nil
}

// File returns the picked file for the final unbounded read. Valid only in
// the PreviewData step.
func (s *Session) File() (name, ext string, data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return "", "", nil, core.ErrSessionFinished
	}
	if s.step != StepPreviewData || s.fileData == nil {
		return "", "", nil, core.ErrNoFilePicked
	}
	return s.fileName, s.fileExt, s.fileData, nil
}

// Finish marks the session complete after a successful import. Ownership of
// the data has transferred to storage; the session keeps nothing.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
}

// Cancel discards all session state from either step. No partial writes
// exist to undo: storage only ever receives data on a completed import.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardLocked()
}

func (s *Session) discardLocked() {
	if s.cancelPick != nil {
		s.cancelPick()
		s.cancelPick = nil
	}
	s.finished = true
	s.fileName = ""
	s.fileExt = ""
	s.fileData = nil
	s.preview = roster.Table{}
}

// Snapshot is an immutable view of session state for the API layer.
type Snapshot struct {
	ID       core.ID      `json:"id"`
	ClassID  core.ID      `json:"class_id"`
	Step     Step         `json:"step"`
	FileName string       `json:"file_name,omitempty"`
	Preview  roster.Table `json:"preview,omitempty"`
	Finished bool         `json:"finished"`
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:       s.ID,
		ClassID:  s.ClassID,
		Step:     s.step,
		FileName: s.fileName,
		Preview:  s.preview.Clone(),
		Finished: s.finished,
	}
}
