// Package chat holds the conversation turn record exchanged by the chat system.
// Messages are immutable: a turn is superseded by a new record, never edited.
package chat

import (
	"chat-kit/errors"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Message is one turn of a conversation, tagged by its originator.
// Two messages built from the same text and sender are equal with ==.
type Message struct {
	text   string
	sender Sender
}

// NewMessage builds a message record. Any text is accepted, including the empty string.
func NewMessage(text string, sender Sender) (Message, error) {
	if !sender.IsValid() {
		return Message{}, sender.invalid()
	}
	return Message{text: text, sender: sender}, nil
}

func (m Message) Text() string {
	return m.text
}

func (m Message) Sender() Sender {
	return m.sender
}

// wireMessage is the JSON form. Text is a pointer so that an absent field
// can be told apart from an empty one.
type wireMessage struct {
	Text   *string `json:"text" validate:"required"`
	Sender string  `json:"sender" validate:"required"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	tag, err := m.sender.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireMessage{Text: &m.text, Sender: string(tag)})
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := validate.Struct(w); err != nil {
		return toValidationError(err, w)
	}
	sender, err := ParseSender(w.Sender)
	if err != nil {
		return err
	}
	msg, err := NewMessage(*w.Text, sender)
	if err != nil {
		return err
	}
	*m = msg
	return nil
}

func toValidationError(err error, w wireMessage) error {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	switch fieldErrors[0].StructField() {
	case "Text":
		return &errors.ValidationError{Kind: errors.MissingText, Field: "text"}
	default:
		return &errors.ValidationError{Kind: errors.InvalidSender, Field: "sender", Value: w.Sender}
	}
}
