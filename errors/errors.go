package errors

import "fmt"

var (
	ErrInvalidSender   = fmt.Errorf("invalid sender")
	ErrMissingText     = fmt.Errorf("message text is missing")
	ErrTooLarge        = fmt.Errorf("attachment is too large")
	ErrUnsupportedType = fmt.Errorf("attachment media type is not supported")
	ErrReadFailure     = fmt.Errorf("attachment stream could not be read")
	ErrInvalidOwner    = fmt.Errorf("attachment owner message id is required")
	ErrInvalidPolicy   = fmt.Errorf("invalid attachment policy")
	ErrInvalidMetadata = fmt.Errorf("invalid attachment metadata")
	ErrDraftFinalized  = fmt.Errorf("draft message is already finalized")
)

type ValidationKind int

const (
	InvalidSender ValidationKind = iota + 1
	MissingText
)

func (k ValidationKind) String() string {
	switch k {
	case InvalidSender:
		return "InvalidSender"
	case MissingText:
		return "MissingText"
	default:
		return "Unknown"
	}
}

func (k ValidationKind) sentinel() error {
	switch k {
	case InvalidSender:
		return ErrInvalidSender
	case MissingText:
		return ErrMissingText
	default:
		return nil
	}
}

// ValidationError is returned when a message record cannot be built.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error %s on field %q (value %q)", e.Kind, e.Field, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

type AttachmentKind int

const (
	TooLarge AttachmentKind = iota + 1
	UnsupportedType
	ReadFailure
)

func (k AttachmentKind) String() string {
	switch k {
	case TooLarge:
		return "TooLarge"
	case UnsupportedType:
		return "UnsupportedType"
	case ReadFailure:
		return "ReadFailure"
	default:
		return "Unknown"
	}
}

func (k AttachmentKind) sentinel() error {
	switch k {
	case TooLarge:
		return ErrTooLarge
	case UnsupportedType:
		return ErrUnsupportedType
	case ReadFailure:
		return ErrReadFailure
	default:
		return nil
	}
}

// AttachmentError is returned when a file resource is rejected or its stream fails.
// Err carries the underlying cause when there is one (I/O error, context error).
type AttachmentError struct {
	Kind AttachmentKind
	Name string
	Err  error
}

func NewAttachmentError(kind AttachmentKind, name string, err error) *AttachmentError {
	return &AttachmentError{Kind: kind, Name: name, Err: err}
}

func (e *AttachmentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("attachment error %s for %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("attachment error %s for %q: %v", e.Kind, e.Name, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}

func (e *AttachmentError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
