package attachment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// LocalFile is a Resource backed by a regular file on disk.
type LocalFile struct {
	path      string
	name      string
	size      uint64
	mediaType string
}

// NewLocalFile stats the file and sniffs its media type from the content.
func NewLocalFile(path string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("entry %s is not a file", path)
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect media type of %s: %w", path, err)
	}
	return &LocalFile{
		path:      path,
		name:      filepath.Base(path),
		size:      uint64(info.Size()),
		mediaType: detected.String(),
	}, nil
}

// WithMediaType returns a copy declaring the given media type instead of the sniffed one.
func (f *LocalFile) WithMediaType(mediaType string) *LocalFile {
	cp := *f
	cp.mediaType = mediaType
	return &cp
}

func (f *LocalFile) Name() string      { return f.name }
func (f *LocalFile) Size() uint64      { return f.size }
func (f *LocalFile) MediaType() string { return f.mediaType }
func (f *LocalFile) Reopenable() bool  { return true }

func (f *LocalFile) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(f.path)
}

// StreamResource wraps a one-shot stream, such as an upload body, whose
// metadata was announced by the sender.
type StreamResource struct {
	name      string
	size      uint64
	mediaType string

	mu   sync.Mutex
	body io.ReadCloser
}

func NewStreamResource(name string, size uint64, mediaType string, body io.ReadCloser) *StreamResource {
	return &StreamResource{name: name, size: size, mediaType: mediaType, body: body}
}

func (s *StreamResource) Name() string      { return s.name }
func (s *StreamResource) Size() uint64      { return s.size }
func (s *StreamResource) MediaType() string { return s.mediaType }

func (s *StreamResource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.body == nil {
		return nil, errStreamConsumed
	}
	body := s.body
	s.body = nil
	return body, nil
}
