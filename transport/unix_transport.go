package transport

import (
	"errors"
	"io"
	"net"
	"syscall"
	"time"

	httperrors "github.com/artdelpi/basichttp/errors"
)

// UnixTransport implements the Transport interface using Unix domain
// sockets. It exists so the protocol layer can be exercised end to end
// without binding TCP ports.
type UnixTransport struct {
	conn net.Conn

	// IOTimeout bounds each Write and Read. Zero means no deadline.
	IOTimeout time.Duration
}

// NewUnixTransport creates a new UnixTransport instance
func NewUnixTransport() *UnixTransport {
	return &UnixTransport{
		conn: nil,
	}
}

// Connect establishes a Unix domain socket connection to the specified path.
// The port parameter is ignored for Unix sockets.
func (t *UnixTransport) Connect(path string, port uint16) error {
	if path == "" {
		return httperrors.NewConnectionError(httperrors.EmptyHost, nil)
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		if errors.Is(err, syscall.ENOENT) {
			return httperrors.NewConnectionError(httperrors.ResolveFailure, err)
		}
		if errors.Is(err, syscall.ECONNREFUSED) {
			return httperrors.NewConnectionError(httperrors.ConnectRefused, err)
		}
		return httperrors.NewConnectionError(httperrors.ConnectFailure, err)
	}

	t.conn = conn
	return nil
}

// Write sends data over the Unix domain socket
func (t *UnixTransport) Write(buf []byte) (int, error) {
	if t.conn == nil {
		return 0, httperrors.NewTransportError(httperrors.NotConnected, nil)
	}

	if t.IOTimeout > 0 {
		t.conn.SetWriteDeadline(time.Now().Add(t.IOTimeout))
	}

	n, err := t.conn.Write(buf)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
			return n, httperrors.NewTransportError(httperrors.PeerClosed, err)
		}
		return n, httperrors.NewTransportError(httperrors.WriteFailure, err)
	}

	return n, nil
}

// Read receives data from the Unix domain socket
func (t *UnixTransport) Read(buf []byte) (int, error) {
	if t.conn == nil {
		return 0, httperrors.NewTransportError(httperrors.NotConnected, nil)
	}

	if t.IOTimeout > 0 {
		t.conn.SetReadDeadline(time.Now().Add(t.IOTimeout))
	}

	n, err := t.conn.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, syscall.ECONNRESET) {
			return n, httperrors.NewTransportError(httperrors.PeerClosed, err)
		}
		return n, httperrors.NewTransportError(httperrors.ReadFailure, err)
	}

	return n, nil
}

// Open reports whether the transport holds a live connection
func (t *UnixTransport) Open() bool {
	return t.conn != nil
}

// Close closes the Unix domain socket connection
func (t *UnixTransport) Close() error {
	if t.conn == nil {
		return nil // Idempotent close
	}

	err := t.conn.Close()
	t.conn = nil

	if err != nil {
		return httperrors.NewTransportError(httperrors.CloseFailure, err)
	}

	return nil
}
