package protocol

import (
	"strings"
	"unicode/utf8"

	httperrors "github.com/artdelpi/basichttp/errors"
)

// HTMLMarker is the literal substring the body is split on.
const HTMLMarker = "<html>"

var headerSeparator = "\r\n\r\n"

// SplitStrategy separates raw response bytes into a text body, discarding
// the status line and headers.
type SplitStrategy interface {
	Split(raw []byte) (string, error)
}

// MarkerSplit locates the first <html> occurrence and returns it together
// with everything after it. The status line and headers are discarded
// without being parsed. This is the baseline behavior of the client.
type MarkerSplit struct{}

func (MarkerSplit) Split(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", httperrors.NewMalformedResponseError(httperrors.EmptyResponse, nil)
	}
	if !utf8.Valid(raw) {
		return "", httperrors.NewMalformedResponseError(httperrors.DecodeFailure, nil)
	}

	text := string(raw)
	pos := strings.Index(text, HTMLMarker)
	if pos < 0 {
		return "", httperrors.NewMalformedResponseError(httperrors.MissingMarker, nil)
	}

	return HTMLMarker + text[pos+len(HTMLMarker):], nil
}

// HeaderSplit separates headers from body on the first CRLF CRLF sequence,
// as a conforming HTTP/1.1 parser would. Selectable alternative to
// MarkerSplit for responses whose body does not start with <html>.
type HeaderSplit struct{}

func (HeaderSplit) Split(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", httperrors.NewMalformedResponseError(httperrors.EmptyResponse, nil)
	}
	if !utf8.Valid(raw) {
		return "", httperrors.NewMalformedResponseError(httperrors.DecodeFailure, nil)
	}

	text := string(raw)
	pos := strings.Index(text, headerSeparator)
	if pos < 0 {
		return "", httperrors.NewMalformedResponseError(httperrors.MissingHeaderSeparator, nil)
	}

	return text[pos+len(headerSeparator):], nil
}
