package main

import (
	"chat-kit/domain/attachment"
	"chat-kit/errors"
	"context"
	stderrors "errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

type fileResult struct {
	Path     string               `json:"path"`
	Status   Status               `json:"status"`
	Kind     string               `json:"kind,omitempty"`
	Error    string               `json:"error,omitempty"`
	Metadata *attachment.Metadata `json:"metadata,omitempty"`
}

// checkFiles runs every path through the attacher and reports the outcome.
// It returns the number of rejected files; the error is reserved for output failures.
func checkFiles(ctx context.Context, attacher *attachment.Attacher, owner string, paths []string, report *Report) (int, error) {
	report.SetHeader("Path", "Size", "Media Type", "Detail")
	rejected := 0
	for _, path := range paths {
		result, size := checkFile(ctx, attacher, owner, path)
		if result.Status == StatusRejected {
			rejected++
		}
		mediaType, detail := "", result.Error
		if result.Metadata != nil {
			mediaType, detail = result.Metadata.MediaType, result.Metadata.AttachmentID
		}
		if err := report.Add(result.Status, result, path, size, mediaType, detail); err != nil {
			return rejected, err
		}
	}
	report.Render()
	return rejected, nil
}

func checkFile(ctx context.Context, attacher *attachment.Attacher, owner, path string) (fileResult, string) {
	file, err := attachment.NewLocalFile(path)
	if err != nil {
		return fileResult{Path: path, Status: StatusRejected, Kind: "NotFile", Error: err.Error()}, "-"
	}
	size := humanize.IBytes(file.Size())

	att, err := attacher.Attach(ctx, file, owner)
	if err != nil {
		return fileResult{Path: path, Status: StatusRejected, Kind: kindOf(err), Error: err.Error()}, size
	}
	defer att.Close()

	meta := att.Metadata()
	return fileResult{Path: path, Status: StatusAccepted, Metadata: &meta}, size
}

func kindOf(err error) string {
	var attErr *errors.AttachmentError
	if stderrors.As(err, &attErr) {
		return attErr.Kind.String()
	}
	var valErr *errors.ValidationError
	if stderrors.As(err, &valErr) {
		return valErr.Kind.String()
	}
	return fmt.Sprintf("%T", err)
}
