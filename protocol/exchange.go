package protocol

import (
	httperrors "github.com/artdelpi/basichttp/errors"
	"github.com/artdelpi/basichttp/transport"
)

// DefaultMaxResponseBytes bounds the single receive. Responses larger than
// this are truncated silently; with small, locally served documents that is
// an accepted limit, not an error.
const DefaultMaxResponseBytes = 4096

// Exchange writes the request over the transport and performs exactly one
// bounded read of up to maxBytes, returning whatever was received. It never
// loops: a response larger than maxBytes comes back truncated.
func Exchange(t transport.Transport, request string, maxBytes int) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResponseBytes
	}

	if err := writeAll(t, []byte(request)); err != nil {
		return nil, err
	}

	buf := make([]byte, maxBytes)
	n, err := t.Read(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// ExchangeFull writes the request and then reads until the peer closes the
// connection, returning the complete response bytes. Opt-in alternative to
// the bounded single read of Exchange.
func ExchangeFull(t transport.Transport, request string) ([]byte, error) {
	if err := writeAll(t, []byte(request)); err != nil {
		return nil, err
	}

	var response []byte
	buf := make([]byte, 1024)

	for {
		n, err := t.Read(buf)
		response = append(response, buf[:n]...)
		if err != nil {
			if httpErr, ok := err.(*httperrors.Error); ok &&
				httpErr.TransportErr != nil &&
				*httpErr.TransportErr == httperrors.PeerClosed {
				if len(response) > 0 {
					return response, nil
				}
			}
			return nil, err
		}
	}
}

// writeAll pushes the whole buffer through the transport, retrying short writes
func writeAll(t transport.Transport, buf []byte) error {
	for len(buf) > 0 {
		n, err := t.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
