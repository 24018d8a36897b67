package attachment

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var uploadedAt = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestAttacher(t *testing.T, policy Policy) *Attacher {
	t.Helper()
	attacher, err := NewAttacher(logs.GetLoggerFromLevel(slog.LevelDebug), policy, 4)
	require.NoError(t, err)
	attacher.now = func() time.Time { return uploadedAt }
	attacher.newID = func() string { return "attachment-1" }
	return attacher
}

func policyWith(verification Verification) Policy {
	p := DefaultPolicy()
	p.Verification = verification
	return p
}

// pdfContent returns size bytes starting with a PDF signature.
func pdfContent(size int) []byte {
	b := make([]byte, size)
	copy(b, "%PDF-1.4\n")
	return b
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func newTrackingBody(content []byte) *trackingBody {
	return &trackingBody{Reader: bytes.NewReader(content)}
}

func streamOf(name, mediaType string, declared uint64, body io.ReadCloser) *StreamResource {
	return NewStreamResource(name, declared, mediaType, body)
}
