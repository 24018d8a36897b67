package attachment

import (
	"chat-kit/errors"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata is the wire form of an attachment. The bytes themselves travel out of band.
type Metadata struct {
	Name         string    `json:"name" validate:"required,max=1024"`
	Size         uint64    `json:"size"`
	MediaType    string    `json:"mediaType" validate:"required"`
	AttachmentID string    `json:"attachmentId" validate:"required"`
	MessageID    string    `json:"messageId" validate:"required"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ParseMetadata decodes metadata received from a peer and checks that every field is present.
func ParseMetadata(data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", errors.ErrInvalidMetadata, err)
	}
	if err := m.Validate(); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

func (m Metadata) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidMetadata, err)
	}
	if m.UploadedAt.IsZero() {
		return fmt.Errorf("%w: uploadedAt is required", errors.ErrInvalidMetadata)
	}
	return nil
}
