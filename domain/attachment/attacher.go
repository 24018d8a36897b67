package attachment

import (
	"bufio"
	"bytes"
	"chat-kit/domain/mimetypes"
	"chat-kit/errors"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// sniffLen matches the default read limit of the mimetype detector.
const sniffLen = 3072

// Attacher validates file resources against a Policy and builds attachments.
// It keeps no state between calls.
type Attacher struct {
	log        *slog.Logger
	policy     Policy
	bufferPool *sync.Pool
	now        func() time.Time
	newID      func() string
}

func NewAttacher(log *slog.Logger, policy Policy, chunkSizeKb int) (*Attacher, error) {
	validated, err := policy.Validate()
	if err != nil {
		return nil, err
	}
	chunk := DefaultChunkSize
	if chunkSizeKb > 0 {
		chunk = chunkSizeKb * KB
	}
	return &Attacher{
		log:    log,
		policy: validated,
		bufferPool: &sync.Pool{
			New: func() any {
				b := make([]byte, chunk)
				return &b
			},
		},
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

func (a *Attacher) Policy() Policy {
	return a.policy
}

// Attach validates the resource and wraps it for the owning message.
// Size and media type are checked before any I/O; the stream is then opened
// and its head peeked without being consumed. On failure nothing is returned
// and the stream, if opened, is closed.
func (a *Attacher) Attach(ctx context.Context, resource Resource, ownerMessageID string) (*Attachment, error) {
	if strings.TrimSpace(ownerMessageID) == "" {
		return nil, errors.ErrInvalidOwner
	}
	name, size := resource.Name(), resource.Size()

	mediaType, err := a.policy.check(name, size, resource.MediaType())
	if err != nil {
		a.log.Info("Attachment rejected by policy", "name", name, "size", size, "err", err)
		return nil, err
	}

	stream, checksum, err := a.probe(ctx, resource, mediaType)
	if err != nil {
		a.log.Warn("Attachment probe failed", "name", name, "err", err)
		return nil, err
	}

	att := &Attachment{
		meta: Metadata{
			Name:         name,
			Size:         size,
			MediaType:    string(mediaType),
			AttachmentID: a.newID(),
			MessageID:    ownerMessageID,
			UploadedAt:   a.now().UTC(),
		},
		checksum: checksum,
		resource: resource,
		pending:  stream,
	}
	a.log.Debug("Attachment accepted", "id", att.ID(), "name", name, "size", size,
		"mediaType", mediaType, "messageID", ownerMessageID)
	return att, nil
}

func (a *Attacher) probe(ctx context.Context, resource Resource, declared mimetypes.MIME) (io.ReadCloser, string, error) {
	name, size := resource.Name(), resource.Size()
	fail := func(kind errors.AttachmentKind, err error) error {
		return errors.NewAttachmentError(kind, name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, "", fail(errors.ReadFailure, err)
	}
	rc, err := resource.Open(ctx)
	if err != nil {
		return nil, "", fail(errors.ReadFailure, err)
	}

	br := bufio.NewReaderSize(rc, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		_ = rc.Close()
		return nil, "", fail(errors.ReadFailure, err)
	}
	if want := min(size, sniffLen); uint64(len(head)) < want || uint64(len(head)) > size {
		_ = rc.Close()
		return nil, "", fail(errors.ReadFailure,
			fmt.Errorf("%w: declared %d bytes, stream starts with %d", errSizeMismatch, size, len(head)))
	}

	if a.policy.Verification != VerifyNone && !sniffedAs(head, declared) {
		_ = rc.Close()
		return nil, "", fail(errors.UnsupportedType,
			fmt.Errorf("content looks like %s, declared %s", mimetype.Detect(head), declared))
	}

	if a.policy.Verification != VerifyChecksum {
		return bufferedStream{Reader: br, Closer: rc}, "", nil
	}

	data, checksum, err := a.spool(ctx, br, size)
	_ = rc.Close()
	if err != nil {
		return nil, "", fail(errors.ReadFailure, err)
	}
	return io.NopCloser(bytes.NewReader(data)), checksum, nil
}

// spool reads the whole stream in pooled chunks, hashing it on the fly.
// Reading stops one byte past the declared size so a longer stream is detected.
func (a *Attacher) spool(ctx context.Context, r io.Reader, size uint64) ([]byte, string, error) {
	bufPtr := a.bufferPool.Get().(*[]byte)
	defer a.bufferPool.Put(bufPtr)
	buf := *bufPtr

	hash := sha256.New()
	data := bytes.NewBuffer(make([]byte, 0, size))
	limited := io.LimitReader(r, int64(size)+1)
	for {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		n, err := limited.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
			data.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", err
		}
	}
	if uint64(data.Len()) != size {
		return nil, "", fmt.Errorf("%w: declared %d bytes, read %d", errSizeMismatch, size, data.Len())
	}
	return data.Bytes(), hex.EncodeToString(hash.Sum(nil)), nil
}

// sniffedAs reports whether the content head is compatible with the declared type.
// Text subtypes such as markdown cannot be told apart from plain text by content.
func sniffedAs(head []byte, declared mimetypes.MIME) bool {
	if len(head) == 0 {
		return true
	}
	detected := mimetype.Detect(head)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(string(declared)) {
			return true
		}
	}
	if !declared.IsText() {
		return false
	}
	_, ok := mimetypes.Matches(detected.String(), mimetypes.TextPlain)
	return ok
}

type bufferedStream struct {
	*bufio.Reader
	io.Closer
}
