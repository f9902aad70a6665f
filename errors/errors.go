package errors

import (
	stderrors "errors"
	"fmt"
)

// ConnectionError represents failures to establish a connection
type ConnectionError int

const (
	EmptyHost ConnectionError = iota
	ResolveFailure
	ConnectRefused
	ConnectTimeout
	ConnectFailure
)

func (e ConnectionError) Error() string {
	switch e {
	case EmptyHost:
		return "Host must not be empty"
	case ResolveFailure:
		return "Host resolution failed"
	case ConnectRefused:
		return "Connection refused"
	case ConnectTimeout:
		return "Connection attempt timed out"
	case ConnectFailure:
		return "Connection failed"
	default:
		return fmt.Sprintf("Unknown connection error: %d", e)
	}
}

// TransportError represents failures on an established connection
type TransportError int

const (
	NotConnected TransportError = iota
	WriteFailure
	ReadFailure
	PeerClosed
	CloseFailure
)

func (e TransportError) Error() string {
	switch e {
	case NotConnected:
		return "Transport is not connected"
	case WriteFailure:
		return "Write failed"
	case ReadFailure:
		return "Read failed"
	case PeerClosed:
		return "Connection closed by peer"
	case CloseFailure:
		return "Close failed"
	default:
		return fmt.Sprintf("Unknown transport error: %d", e)
	}
}

// MalformedResponseError represents response bytes that cannot be split
// into headers and an HTML body
type MalformedResponseError int

const (
	EmptyResponse MalformedResponseError = iota
	MissingMarker
	MissingHeaderSeparator
	DecodeFailure
)

func (e MalformedResponseError) Error() string {
	switch e {
	case EmptyResponse:
		return "Response is empty"
	case MissingMarker:
		return "No <html> marker in response"
	case MissingHeaderSeparator:
		return "No header separator in response"
	case DecodeFailure:
		return "Response is not valid text"
	default:
		return fmt.Sprintf("Unknown response error: %d", e)
	}
}

// Error is the top-level error type that wraps the three failure categories
type Error struct {
	ConnectionErr *ConnectionError
	TransportErr  *TransportError
	ResponseErr   *MalformedResponseError
	underlying    error
}

func (e *Error) Error() string {
	switch {
	case e.ConnectionErr != nil:
		return format("Connection Error", e.ConnectionErr.Error(), e.underlying)
	case e.TransportErr != nil:
		return format("Transport Error", e.TransportErr.Error(), e.underlying)
	case e.ResponseErr != nil:
		return format("Malformed Response", e.ResponseErr.Error(), e.underlying)
	case e.underlying != nil:
		return e.underlying.Error()
	default:
		return "Unknown error"
	}
}

func format(category, msg string, underlying error) string {
	if underlying != nil {
		return fmt.Sprintf("%s: %s (underlying: %v)", category, msg, underlying)
	}
	return fmt.Sprintf("%s: %s", category, msg)
}

func (e *Error) Unwrap() error {
	return e.underlying
}

// NewConnectionError creates a new Error with a ConnectionError
func NewConnectionError(ce ConnectionError, underlying error) *Error {
	return &Error{
		ConnectionErr: &ce,
		underlying:    underlying,
	}
}

// NewTransportError creates a new Error with a TransportError
func NewTransportError(te TransportError, underlying error) *Error {
	return &Error{
		TransportErr: &te,
		underlying:   underlying,
	}
}

// NewMalformedResponseError creates a new Error with a MalformedResponseError
func NewMalformedResponseError(re MalformedResponseError, underlying error) *Error {
	return &Error{
		ResponseErr: &re,
		underlying:  underlying,
	}
}

// IsConnectionError reports whether err is an Error in the connection
// category, unwrapping any chain wrapped around it
func IsConnectionError(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.ConnectionErr != nil
}

// IsTransportError reports whether err is an Error in the transport
// category, unwrapping any chain wrapped around it
func IsTransportError(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.TransportErr != nil
}

// IsMalformedResponseError reports whether err is an Error in the response
// category, unwrapping any chain wrapped around it
func IsMalformedResponseError(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.ResponseErr != nil
}
