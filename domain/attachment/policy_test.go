package attachment

import (
	"chat-kit/domain/mimetypes"
	"chat-kit/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(p *Policy)
		wantErr     bool
	}{
		{"Should succeed with the default policy", func(p *Policy) {}, false},
		{"Should fail if MaxBytes is zero", func(p *Policy) { p.MaxBytes = 0 }, true},
		{"Should fail if no media type is allowed", func(p *Policy) { p.AllowedMediaTypes = nil }, true},
		{"Should fail if a media type is empty", func(p *Policy) { p.AllowedMediaTypes = []mimetypes.MIME{""} }, true},
		{"Should fail if a media type cannot be parsed", func(p *Policy) { p.AllowedMediaTypes = []mimetypes.MIME{"pdf"} }, true},
		{"Should fail if verification is unknown", func(p *Policy) { p.Verification = "deep" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			p := DefaultPolicy()
			tt.modify(&p)
			_, err := p.Validate()
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidPolicy)
				return
			}
			req.NoError(err)
		})
	}
}

func TestPolicy_Validate_NormalizesMediaTypes(t *testing.T) {
	req := require.New(t)
	p := DefaultPolicy()
	p.AllowedMediaTypes = []mimetypes.MIME{"Application/PDF", "application/pdf", "text/plain; charset=utf-8"}

	validated, err := p.Validate()
	req.NoError(err)
	req.Equal([]mimetypes.MIME{mimetypes.ApplicationPDF, mimetypes.TextPlain}, validated.AllowedMediaTypes)
}

func TestPolicy_Check(t *testing.T) {
	policy := DefaultPolicy()
	base := Metadata{
		Name:         "report.pdf",
		Size:         10 * MB,
		MediaType:    "application/pdf",
		AttachmentID: "attachment-1",
		MessageID:    "message-1",
		UploadedAt:   uploadedAt,
	}

	tests := []struct {
		description string
		modify      func(m *Metadata)
		want        error
	}{
		{"10 MiB PDF is accepted", func(m *Metadata) {}, nil},
		{"Exactly the limit is accepted", func(m *Metadata) { m.Size = DefaultMaxBytes }, nil},
		{"Empty file is accepted", func(m *Metadata) { m.Size = 0 }, nil},
		{"One byte over the limit is too large", func(m *Metadata) { m.Size = DefaultMaxBytes + 1 }, errors.ErrTooLarge},
		{"30 MiB is too large", func(m *Metadata) { m.Size = 30 * MB }, errors.ErrTooLarge},
		{"Parameters and case are ignored", func(m *Metadata) { m.MediaType = "Text/Plain; charset=utf-8" }, nil},
		{"Zip archive is not allowed", func(m *Metadata) { m.MediaType = "application/zip" }, errors.ErrUnsupportedType},
		{"Malformed media type is not allowed", func(m *Metadata) { m.MediaType = "pdf" }, errors.ErrUnsupportedType},
		{"Size is checked before type", func(m *Metadata) { m.Size = 30 * MB; m.MediaType = "application/zip" }, errors.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			m := base
			tt.modify(&m)
			err := policy.Check(m)
			if tt.want == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.want)
		})
	}
}

func TestPolicy_Check_IsIdempotent(t *testing.T) {
	req := require.New(t)
	policy := DefaultPolicy()
	valid := Metadata{Name: "notes.md", Size: 2 * KB, MediaType: "text/markdown"}
	invalid := Metadata{Name: "movie.mp4", Size: 2 * KB, MediaType: "video/mp4"}

	req.NoError(policy.Check(valid))
	req.NoError(policy.Check(valid))

	first := policy.Check(invalid)
	second := policy.Check(invalid)
	req.ErrorIs(first, errors.ErrUnsupportedType)
	req.Equal(first.Error(), second.Error())
	req.Equal(DefaultPolicy(), policy)
}

func TestParseVerification(t *testing.T) {
	req := require.New(t)
	for _, s := range []string{"none", "sniff", "checksum"} {
		v, err := ParseVerification(s)
		req.NoError(err)
		req.Equal(Verification(s), v)
	}
	_, err := ParseVerification("full")
	req.ErrorIs(err, errors.ErrInvalidPolicy)
}
