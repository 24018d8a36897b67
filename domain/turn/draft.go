// Package turn ties a message to the attachments uploaded with it.
// A Draft collects attachments while the user composes; Finalize freezes
// both into a Turn. Attachments are owned by exactly one draft or turn.
package turn

import (
	"chat-kit/domain/attachment"
	"chat-kit/domain/chat"
	"chat-kit/errors"
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Attacher interface {
	Attach(ctx context.Context, resource attachment.Resource, ownerMessageID string) (*attachment.Attachment, error)
}

type Draft struct {
	id       string
	attacher Attacher

	mu          sync.Mutex
	attachments []*attachment.Attachment
	finalized   bool
}

func NewDraft(attacher Attacher) *Draft {
	return &Draft{id: uuid.NewString(), attacher: attacher}
}

func (d *Draft) ID() string {
	return d.id
}

// Attach validates the resource and adds it to the draft. A rejected resource leaves the draft unchanged.
func (d *Draft) Attach(ctx context.Context, resource attachment.Resource) (*attachment.Attachment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return nil, errors.ErrDraftFinalized
	}
	att, err := d.attacher.Attach(ctx, resource, d.id)
	if err != nil {
		return nil, err
	}
	d.attachments = append(d.attachments, att)
	return att, nil
}

// Finalize builds the message and freezes the draft. If the message is invalid
// the draft stays open so the caller can correct the input.
func (d *Draft) Finalize(text string, sender chat.Sender) (Turn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.finalized {
		return Turn{}, errors.ErrDraftFinalized
	}
	msg, err := chat.NewMessage(text, sender)
	if err != nil {
		return Turn{}, err
	}
	d.finalized = true
	// The turn owns the attachments from here on.
	attachments := d.attachments
	d.attachments = nil
	return Turn{
		id:          d.id,
		message:     msg,
		attachments: attachments,
	}, nil
}

// Discard drops the draft and closes every attachment it still owns.
// After Finalize it does nothing, so it is safe to defer.
func (d *Draft) Discard() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finalized = true
	var firstErr error
	for _, att := range d.attachments {
		if err := att.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	d.attachments = nil
	return firstErr
}

// Turn is a finalized message with its attachments.
type Turn struct {
	id          string
	message     chat.Message
	attachments []*attachment.Attachment
}

func (t Turn) ID() string {
	return t.id
}

func (t Turn) Message() chat.Message {
	return t.message
}

func (t Turn) Attachments() []*attachment.Attachment {
	return append([]*attachment.Attachment(nil), t.attachments...)
}

// Close releases the attachment streams when the turn is deleted.
func (t Turn) Close() error {
	var firstErr error
	for _, att := range t.attachments {
		if err := att.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type wireTurn struct {
	ID          string                `json:"id"`
	Message     chat.Message          `json:"message"`
	Attachments []attachment.Metadata `json:"attachments"`
}

func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTurn{
		ID:      t.id,
		Message: t.message,
		Attachments: lo.Map(t.attachments, func(item *attachment.Attachment, _ int) attachment.Metadata {
			return item.Metadata()
		}),
	})
}
