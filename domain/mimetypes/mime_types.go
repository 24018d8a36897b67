package mimetypes

import (
	"fmt"
	"mime"
	"strings"
)

type MIME string

const (
	Unknown      MIME = "unknown"
	TextPlain    MIME = "text/plain"
	TextHTML     MIME = "text/html"
	TextCSS      MIME = "text/css"
	TextCSV      MIME = "text/csv"
	TextMarkdown MIME = "text/markdown"

	ApplicationPDF         MIME = "application/pdf"
	ApplicationJSON        MIME = "application/json"
	ApplicationXML         MIME = "application/xml"
	ApplicationOctetStream MIME = "application/octet-stream"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
)

const textPrefix = "text/"

// Normalize parses a media type and returns its lower-cased essence,
// without parameters ("Text/Plain; charset=utf-8" gives text/plain).
func Normalize(raw string) (MIME, error) {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(raw))
	if err != nil {
		return Unknown, fmt.Errorf("parse media type %q: %w", raw, err)
	}
	return MIME(mt), nil
}

// ToMIME is Normalize without the error: unparsable input gives Unknown.
func ToMIME(raw string) MIME {
	mt, err := Normalize(raw)
	if err != nil {
		return Unknown
	}
	return mt
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, err := Normalize(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == expected
}

func (m MIME) IsText() bool {
	return strings.HasPrefix(string(m), textPrefix)
}

func (m MIME) String() string {
	return string(m)
}
