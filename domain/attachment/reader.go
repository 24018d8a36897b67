package attachment

import (
	"chat-kit/errors"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// guardedReader enforces the declared size and cancellation on an attachment stream.
// Once it fails, every later Read returns the same error.
type guardedReader struct {
	ctx     context.Context
	src     io.ReadCloser
	name    string
	size    uint64
	read    uint64
	err     error
	release func()
	once    sync.Once
	closed  atomic.Bool
}

func newGuardedReader(ctx context.Context, src io.ReadCloser, name string, size uint64, release func()) *guardedReader {
	return &guardedReader{ctx: ctx, src: src, name: name, size: size, release: release}
}

func (r *guardedReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.closed.Load() {
		return 0, r.fail(errClosed)
	}
	if err := r.ctx.Err(); err != nil {
		return 0, r.fail(err)
	}

	n, err := r.src.Read(p)
	r.read += uint64(n)
	if r.read > r.size {
		n -= int(r.read - r.size)
		return n, r.fail(fmt.Errorf("%w: more than %d bytes", errSizeMismatch, r.size))
	}

	switch {
	case err == io.EOF && r.read < r.size:
		return n, r.fail(fmt.Errorf("%w: got %d of %d bytes", errSizeMismatch, r.read, r.size))
	case err == io.EOF:
		r.err = io.EOF
		return n, io.EOF
	case err != nil:
		return n, r.fail(err)
	}
	return n, nil
}

func (r *guardedReader) Close() error {
	var err error
	r.once.Do(func() {
		r.closed.Store(true)
		err = r.src.Close()
		r.release()
	})
	return err
}

func (r *guardedReader) fail(err error) error {
	r.err = errors.NewAttachmentError(errors.ReadFailure, r.name, err)
	return r.err
}
