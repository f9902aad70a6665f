package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"

	httperrors "github.com/artdelpi/basichttp/errors"
)

// TCPTransport implements the Transport interface using TCP sockets
type TCPTransport struct {
	conn net.Conn

	// DialTimeout bounds the connection attempt. Zero means block until
	// the platform gives up, matching the baseline behavior.
	DialTimeout time.Duration

	// IOTimeout bounds each Write and Read. Zero means no deadline.
	IOTimeout time.Duration
}

// NewTCPTransport creates a new TCPTransport instance
func NewTCPTransport() *TCPTransport {
	return &TCPTransport{
		conn: nil,
	}
}

// Connect establishes a TCP connection to the specified host and port
func (t *TCPTransport) Connect(host string, port uint16) error {
	if host == "" {
		return httperrors.NewConnectionError(httperrors.EmptyHost, nil)
	}

	addr := fmt.Sprintf("%s:%d", host, port)

	dialer := net.Dialer{Timeout: t.DialTimeout}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return httperrors.NewConnectionError(classifyDialError(err), err)
	}

	// Set TCP_NODELAY to disable Nagle's algorithm for lower latency
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			conn.Close()
			return httperrors.NewConnectionError(httperrors.ConnectFailure, err)
		}
	}

	t.conn = conn
	return nil
}

// classifyDialError maps a net.Dial failure onto the ConnectionError enum
func classifyDialError(err error) httperrors.ConnectionError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return httperrors.ResolveFailure
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return httperrors.ConnectRefused
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return httperrors.ConnectTimeout
	}
	return httperrors.ConnectFailure
}

// Write sends data over the TCP connection
func (t *TCPTransport) Write(buf []byte) (int, error) {
	if t.conn == nil {
		return 0, httperrors.NewTransportError(httperrors.NotConnected, nil)
	}

	if t.IOTimeout > 0 {
		t.conn.SetWriteDeadline(time.Now().Add(t.IOTimeout))
	}

	n, err := t.conn.Write(buf)
	if err != nil {
		// Check for broken pipe or connection reset
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
			return n, httperrors.NewTransportError(httperrors.PeerClosed, err)
		}
		return n, httperrors.NewTransportError(httperrors.WriteFailure, err)
	}

	return n, nil
}

// Read receives data from the TCP connection
func (t *TCPTransport) Read(buf []byte) (int, error) {
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
func (t *TCPTransport) Open() bool {
	return t.conn != nil
}

// Close closes the TCP connection
func (t *TCPTransport) Close() error {
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
