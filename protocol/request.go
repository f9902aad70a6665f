package protocol

import "fmt"

// BuildGet formats an HTTP/1.1 GET request for the given host and resource
// path. The path is inserted verbatim after a single leading slash and the
// host verbatim into the Host header; no other headers are sent. An empty
// resourcePath requests the server root.
func BuildGet(host, resourcePath string) string {
	return fmt.Sprintf("GET /%s HTTP/1.1\r\nHost: %s\r\n\r\n", resourcePath, host)
}
