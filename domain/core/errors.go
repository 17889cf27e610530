package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrClassNotFound   = fmt.Errorf("%w: class", ErrNotFound)
	ErrFileNotFound    = fmt.Errorf("%w: file", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("%w: import session", ErrNotFound)
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// Spreadsheet errors
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrCorruptFile       = errors.New("corrupt spreadsheet file")
	ErrEmptySheet        = errors.New("sheet has no header row")

	// Wizard errors
	ErrNoFilePicked    = errors.New("no file has been picked")
	ErrWrongStep       = errors.New("operation not valid in current wizard step")
	ErrSessionFinished = errors.New("import session already finished")

	// External collaborator errors
	ErrTranscription = errors.New("transcription service error")
	ErrUpload        = errors.New("roster upload failed")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewUnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

func NewCorruptFileError(cause error) error {
	return fmt.Errorf("%w: %v", ErrCorruptFile, cause)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsSpreadsheetError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrCorruptFile) ||
		errors.Is(err, ErrEmptySheet)
}

func IsWizardError(err error) bool {
	return errors.Is(err, ErrNoFilePicked) ||
		errors.Is(err, ErrWrongStep) ||
		errors.Is(err, ErrSessionFinished)
}
