package client

import "strings"

// ParseAddress splits a user-entered address into host and resource path.
// A leading "http://" is stripped; everything up to the first slash is the
// host and the remainder is the resource path, which may be empty. This is
// the contract callers of Fetch are expected to satisfy; the client itself
// never sees schemes.
func ParseAddress(input string) (host, resourcePath string) {
	input = strings.TrimPrefix(input, "http://")

	host, resourcePath, _ = strings.Cut(input, "/")
	return host, resourcePath
}
