//go:generate go run go.uber.org/mock/mockgen -source=resource.go -destination=../../mocks/mock_resource.go -package=mocks
package attachment

import (
	"context"
	"io"
)

// Resource is the generic file capability set an attachment wraps.
// Open hands out a single-pass byte stream; unless the resource also
// implements Reopener (and reports true), it may only be opened once.
type Resource interface {
	Name() string
	Size() uint64
	MediaType() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Reopener is implemented by resources whose stream can be opened again
// after it has been exhausted, like a file on disk.
type Reopener interface {
	Reopenable() bool
}

func isReopenable(r Resource) bool {
	reopener, ok := r.(Reopener)
	return ok && reopener.Reopenable()
}
