package chat

import (
	"chat-kit/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSender(t *testing.T) {
	tests := []struct {
		input   string
		want    Sender
		wantErr bool
	}{
		{"user", SenderUser, false},
		{"ai", SenderAI, false},
		{"", 0, true},
		{"AI", 0, true},
		{"assistant", 0, true},
		{"system", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseSender(tt.input)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidSender)
				req.False(got.IsValid())
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
			req.Equal(tt.input, got.String())
		})
	}
}

func TestSender_TextRoundTrip(t *testing.T) {
	req := require.New(t)
	for _, s := range []Sender{SenderUser, SenderAI} {
		text, err := s.MarshalText()
		req.NoError(err)

		var decoded Sender
		req.NoError(decoded.UnmarshalText(text))
		req.Equal(s, decoded)
	}

	_, err := Sender(9).MarshalText()
	req.ErrorIs(err, errors.ErrInvalidSender)
}
