// Package attachment turns generic file resources into validated chat attachments.
// An attachment is only ever built around a resource that passed the policy,
// and its byte stream has a single owner.
package attachment

import (
	"chat-kit/errors"
	"context"
	"fmt"
	"io"
	"iter"
	"sync"
	"time"
)

const DefaultChunkSize = 64 * KB

var (
	errStreamConsumed = fmt.Errorf("stream already consumed")
	errStreamInUse    = fmt.Errorf("stream is already being read")
	errClosed         = fmt.Errorf("attachment is closed")
	errSizeMismatch   = fmt.Errorf("stream length does not match declared size")
)

// Attachment is an immutable, validated file attached to one message.
type Attachment struct {
	meta     Metadata
	checksum string
	resource Resource

	mu      sync.Mutex
	pending io.ReadCloser // stream opened during validation, not handed out yet
	active  *guardedReader
	closed  bool
}

func (a *Attachment) ID() string            { return a.meta.AttachmentID }
func (a *Attachment) MessageID() string     { return a.meta.MessageID }
func (a *Attachment) Name() string          { return a.meta.Name }
func (a *Attachment) Size() uint64          { return a.meta.Size }
func (a *Attachment) MediaType() string     { return a.meta.MediaType }
func (a *Attachment) UploadedAt() time.Time { return a.meta.UploadedAt }

// Checksum is the hex SHA-256 of the content, empty unless the policy verified checksums.
func (a *Attachment) Checksum() string { return a.checksum }

func (a *Attachment) Metadata() Metadata { return a.meta }

// Reader hands out the byte stream. The first call returns the stream opened
// during validation; later calls fail with a read failure unless the resource
// can be reopened. Only one reader may be open at a time. Every Read honours ctx.
func (a *Attachment) Reader(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, a.readFailure(err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, a.readFailure(errClosed)
	}
	if a.active != nil {
		return nil, a.readFailure(errStreamInUse)
	}

	var src io.ReadCloser
	switch {
	case a.pending != nil:
		src, a.pending = a.pending, nil
	case isReopenable(a.resource):
		rc, err := a.resource.Open(ctx)
		if err != nil {
			return nil, a.readFailure(err)
		}
		src = rc
	default:
		return nil, a.readFailure(errStreamConsumed)
	}

	a.active = newGuardedReader(ctx, src, a.meta.Name, a.meta.Size, a.release)
	return a.active, nil
}

// Chunks yields the content in chunks of at most chunkSize bytes. Each chunk is a copy
// the caller may keep. Iteration stops at the first error, which is yielded once.
func (a *Attachment) Chunks(ctx context.Context, chunkSize int) iter.Seq2[[]byte, error] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return func(yield func([]byte, error) bool) {
		rc, err := a.Reader(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rc.Close()

		buf := make([]byte, chunkSize)
		for {
			n, err := rc.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				if !yield(chunk, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
		}
	}
}

// Close releases the stream opened during validation and any reader still
// held by a caller; that reader fails on its next Read.
// The attachment cannot be read afterwards.
func (a *Attachment) Close() error {
	a.mu.Lock()
	a.closed = true
	pending, active := a.pending, a.active
	a.pending = nil
	a.mu.Unlock()

	var err error
	if pending != nil {
		err = pending.Close()
	}
	if active != nil {
		if cerr := active.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (a *Attachment) release() {
	a.mu.Lock()
	a.active = nil
	a.mu.Unlock()
}

func (a *Attachment) readFailure(err error) error {
	return errors.NewAttachmentError(errors.ReadFailure, a.meta.Name, err)
}
