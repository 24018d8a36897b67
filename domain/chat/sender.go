package chat

import (
	"chat-kit/errors"
)

// Sender tags who authored a message. The zero value is not a valid sender.
type Sender uint8

const (
	SenderUser Sender = iota + 1
	SenderAI
)

const (
	senderUserTag = "user"
	senderAITag   = "ai"
)

func ParseSender(s string) (Sender, error) {
	switch s {
	case senderUserTag:
		return SenderUser, nil
	case senderAITag:
		return SenderAI, nil
	default:
		return 0, &errors.ValidationError{Kind: errors.InvalidSender, Field: "sender", Value: s}
	}
}

func (s Sender) IsValid() bool {
	return s == SenderUser || s == SenderAI
}

func (s Sender) String() string {
	switch s {
	case SenderUser:
		return senderUserTag
	case SenderAI:
		return senderAITag
	default:
		return "unknown"
	}
}

func (s Sender) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, s.invalid()
	}
	return []byte(s.String()), nil
}

func (s *Sender) UnmarshalText(text []byte) error {
	parsed, err := ParseSender(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Sender) invalid() error {
	return &errors.ValidationError{Kind: errors.InvalidSender, Field: "sender", Value: s.String()}
}
