package ports

import (
	"io"

	"rosterd/domain/roster"
)

// SpreadsheetReader parses an uploaded byte stream, dispatching on the
// declared file extension. Errors are core.ErrUnsupportedFormat for an
// unrecognized extension and core.ErrCorruptFile when the parser fails.
type SpreadsheetReader interface {
	Read(r io.Reader, declaredExt string) (roster.Table, error)
	ReadPreview(r io.Reader, declaredExt string, maxDataRows int) (roster.Table, error)
}
