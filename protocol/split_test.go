package protocol

import (
	"testing"

	httperrors "github.com/artdelpi/basichttp/errors"
)

func TestMarkerSplit_RoundTrip(t *testing.T) {
	// For header + "<html>" + body with a marker-free header, the result
	// is exactly "<html>" + body.
	tests := []struct {
		name   string
		header string
		body   string
	}{
		{
			name:   "typical response",
			header: "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n",
			body:   "<body>hi</body></html>",
		},
		{
			name:   "empty header",
			header: "",
			body:   "</html>",
		},
		{
			name:   "body contains second marker",
			header: "HTTP/1.1 200 OK\r\n\r\n",
			body:   "<p>see <html> tag</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(tt.header + HTMLMarker + tt.body)
			got, err := MarkerSplit{}.Split(raw)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			want := HTMLMarker + tt.body
			if got != want {
				t.Errorf("Split = %q, want %q", got, want)
			}
		})
	}
}

func TestMarkerSplit_MissingMarker(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\n\r\nPLAINTEXT")

	_, err := MarkerSplit{}.Split(raw)
	if err == nil {
		t.Fatal("Expected error for response without marker")
	}

	httpErr, ok := err.(*httperrors.Error)
	if !ok {
		t.Fatalf("Expected *httperrors.Error, got %T", err)
	}

	if httpErr.ResponseErr == nil || *httpErr.ResponseErr != httperrors.MissingMarker {
		t.Errorf("Expected MissingMarker, got %v", err)
	}
}

func TestMarkerSplit_EmptyResponse(t *testing.T) {
	_, err := MarkerSplit{}.Split(nil)
	if !httperrors.IsMalformedResponseError(err) {
		t.Errorf("Expected malformed response error, got %v", err)
	}
}

func TestMarkerSplit_InvalidText(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0xfd}

	_, err := MarkerSplit{}.Split(raw)
	if err == nil {
		t.Fatal("Expected error for invalid byte sequence")
	}

	httpErr, ok := err.(*httperrors.Error)
	if !ok {
		t.Fatalf("Expected *httperrors.Error, got %T", err)
	}

	if httpErr.ResponseErr == nil || *httpErr.ResponseErr != httperrors.DecodeFailure {
		t.Errorf("Expected DecodeFailure, got %v", err)
	}
}

func TestHeaderSplit_BodyAfterSeparator(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\nPLAINTEXT")

	got, err := HeaderSplit{}.Split(raw)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	if got != "PLAINTEXT" {
		t.Errorf("Split = %q, want %q", got, "PLAINTEXT")
	}
}

func TestHeaderSplit_MissingSeparator(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain")

	_, err := HeaderSplit{}.Split(raw)
	if err == nil {
		t.Fatal("Expected error for response without separator")
	}

	if !httperrors.IsMalformedResponseError(err) {
		t.Errorf("Expected malformed response error, got %v", err)
	}
}
