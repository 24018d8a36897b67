package attachment

import (
	"chat-kit/domain/mimetypes"
	"chat-kit/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

const (
	KB = 1024
	MB = KB * KB

	DefaultMaxBytes = 25 * MB
)

// Verification tells how much of the content is inspected before a file is attached.
type Verification string

const (
	// VerifyNone only checks that the stream opens and its first bytes can be read.
	VerifyNone Verification = "none"
	// VerifySniff also requires the sniffed content type to agree with the declared one.
	VerifySniff Verification = "sniff"
	// VerifyChecksum reads the whole stream, checks its length and records its SHA-256.
	VerifyChecksum Verification = "checksum"
)

func ParseVerification(s string) (Verification, error) {
	v := Verification(s)
	switch v {
	case VerifyNone, VerifySniff, VerifyChecksum:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown verification %q", errors.ErrInvalidPolicy, s)
	}
}

// Policy holds the business limits applied to every attachment.
type Policy struct {
	MaxBytes          uint64           `validate:"gt=0"`
	AllowedMediaTypes []mimetypes.MIME `validate:"min=1,dive,required"`
	Verification      Verification     `validate:"oneof=none sniff checksum"`
}

func DefaultAllowedMediaTypes() []mimetypes.MIME {
	return []mimetypes.MIME{
		mimetypes.ApplicationPDF,
		mimetypes.TextPlain,
		mimetypes.TextMarkdown,
		mimetypes.TextCSV,
		mimetypes.ApplicationJSON,
		mimetypes.ImagePNG,
		mimetypes.ImageJPEG,
	}
}

func DefaultPolicy() Policy {
	return Policy{
		MaxBytes:          DefaultMaxBytes,
		AllowedMediaTypes: DefaultAllowedMediaTypes(),
		Verification:      VerifySniff,
	}
}

// Validate checks the policy itself and returns a copy with normalized media types.
func (p Policy) Validate() (Policy, error) {
	if err := validate.Struct(p); err != nil {
		return Policy{}, fmt.Errorf("%w: %v", errors.ErrInvalidPolicy, err)
	}
	allowed := make([]mimetypes.MIME, 0, len(p.AllowedMediaTypes))
	for _, raw := range p.AllowedMediaTypes {
		mt, err := mimetypes.Normalize(string(raw))
		if err != nil {
			return Policy{}, fmt.Errorf("%w: %v", errors.ErrInvalidPolicy, err)
		}
		allowed = append(allowed, mt)
	}
	p.AllowedMediaTypes = lo.Uniq(allowed)
	return p, nil
}

// Check applies the size cap and the media type allow-list to already known metadata.
// It has no side effects: checking the same metadata twice gives the same answer.
func (p Policy) Check(m Metadata) error {
	_, err := p.check(m.Name, m.Size, m.MediaType)
	return err
}

func (p Policy) check(name string, size uint64, mediaType string) (mimetypes.MIME, error) {
	if size > p.MaxBytes {
		return mimetypes.Unknown, errors.NewAttachmentError(errors.TooLarge, name,
			fmt.Errorf("%d bytes exceeds the limit of %d bytes", size, p.MaxBytes))
	}
	mt, err := mimetypes.Normalize(mediaType)
	if err != nil {
		return mimetypes.Unknown, errors.NewAttachmentError(errors.UnsupportedType, name, err)
	}
	allowed := lo.ContainsBy(p.AllowedMediaTypes, func(item mimetypes.MIME) bool {
		return mimetypes.ToMIME(string(item)) == mt
	})
	if !allowed {
		return mimetypes.Unknown, errors.NewAttachmentError(errors.UnsupportedType, name,
			fmt.Errorf("media type %s is not allowed", mt))
	}
	return mt, nil
}
