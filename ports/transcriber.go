package ports

import "context"

// Transcriber calls the external speech-to-text collaborator. Candidates is
// an optional list of student names used to bias recognition; it is joined
// comma-separated on the wire.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, candidates []string) (string, error)
}
