package protocol

import (
	"net"
	"path/filepath"
	"strings"
	"testing"

	httperrors "github.com/artdelpi/basichttp/errors"
	"github.com/artdelpi/basichttp/transport"
)

// serveOnce runs a one-shot Unix socket server that reads one request and
// answers with the given bytes.
func serveOnce(t *testing.T, response string) (string, func()) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sock")

	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("Failed to create test server: %v", err)
	}

	done := make(chan struct{})
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		buf := make([]byte, 1024)
		conn.Read(buf)
		conn.Write([]byte(response))
		conn.Close()
		close(done)
	}()

	cleanup := func() {
		listener.Close()
		<-done
	}

	return path, cleanup
}

func connectUnix(t *testing.T, path string) *transport.UnixTransport {
	t.Helper()

	tr := transport.NewUnixTransport()
	if err := tr.Connect(path, 0); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return tr
}

func TestExchange_SingleBoundedRead(t *testing.T) {
	response := "HTTP/1.1 200 OK\r\n\r\n<html>ok</html>"
	path, cleanup := serveOnce(t, response)
	defer cleanup()

	tr := connectUnix(t, path)
	defer tr.Close()

	raw, err := Exchange(tr, BuildGet("localhost", ""), DefaultMaxResponseBytes)
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}

	if string(raw) != response {
		t.Errorf("Exchange = %q, want %q", string(raw), response)
	}
}

func TestExchange_TruncatesAtMaxBytes(t *testing.T) {
	response := "HTTP/1.1 200 OK\r\n\r\n" + strings.Repeat("x", 500)
	path, cleanup := serveOnce(t, response)
	defer cleanup()

	tr := connectUnix(t, path)
	defer tr.Close()

	raw, err := Exchange(tr, BuildGet("localhost", ""), 32)
	if err != nil {
		t.Fatalf("Exchange failed: %v", err)
	}

	if len(raw) > 32 {
		t.Errorf("Expected at most 32 bytes, got %d", len(raw))
	}
	if string(raw) != response[:len(raw)] {
		t.Errorf("Truncated read does not match response prefix")
	}
}

func TestExchange_NotConnected(t *testing.T) {
	tr := transport.NewUnixTransport()

	_, err := Exchange(tr, BuildGet("localhost", ""), DefaultMaxResponseBytes)
	if err == nil {
		t.Fatal("Expected error on unconnected transport")
	}

	if !httperrors.IsTransportError(err) {
		t.Errorf("Expected a transport error, got %v", err)
	}
}

func TestExchange_PeerClosedWithoutData(t *testing.T) {
	path, cleanup := serveOnce(t, "")
	defer cleanup()

	tr := connectUnix(t, path)
	defer tr.Close()

	_, err := Exchange(tr, BuildGet("localhost", ""), DefaultMaxResponseBytes)
	if err == nil {
		t.Fatal("Expected error when peer closes before sending data")
	}

	httpErr, ok := err.(*httperrors.Error)
	if !ok {
		t.Fatalf("Expected *httperrors.Error, got %T", err)
	}

	if httpErr.TransportErr == nil || *httpErr.TransportErr != httperrors.PeerClosed {
		t.Errorf("Expected PeerClosed, got %v", err)
	}
}

func TestExchangeFull_ReadsUntilClose(t *testing.T) {
	response := "HTTP/1.1 200 OK\r\n\r\n" + strings.Repeat("y", 5000)
	path, cleanup := serveOnce(t, response)
	defer cleanup()

	tr := connectUnix(t, path)
	defer tr.Close()

	raw, err := ExchangeFull(tr, BuildGet("localhost", ""))
	if err != nil {
		t.Fatalf("ExchangeFull failed: %v", err)
	}

	if string(raw) != response {
		t.Errorf("Expected %d bytes, got %d", len(response), len(raw))
	}
}
