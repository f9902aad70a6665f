package client

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/artdelpi/basichttp/protocol"
	"github.com/artdelpi/basichttp/transport"
)

// Config holds the knobs of a Client. The zero value reproduces the
// baseline behavior: port 80, a single 4096-byte read, no timeouts, and
// marker-based body extraction.
type Config struct {
	// Port to connect on. Defaults to 80.
	Port uint16

	// MaxResponseBytes bounds the single receive. Defaults to
	// protocol.DefaultMaxResponseBytes. Ignored when FullRead is set.
	MaxResponseBytes int

	// DialTimeout bounds the connection attempt. Zero means none.
	DialTimeout time.Duration

	// IOTimeout bounds each write and read on the connection. Zero means none.
	IOTimeout time.Duration

	// FullRead switches from the bounded single read to reading until the
	// peer closes the connection.
	FullRead bool

	// Splitter extracts the body from the raw response bytes. Defaults to
	// protocol.MarkerSplit.
	Splitter protocol.SplitStrategy

	// Logger receives best-effort diagnostics, such as close failures.
	// Defaults to a no-op logger.
	Logger zerolog.Logger
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = transport.DefaultPort
	}
	if c.MaxResponseBytes <= 0 {
		c.MaxResponseBytes = protocol.DefaultMaxResponseBytes
	}
	if c.Splitter == nil {
		c.Splitter = protocol.MarkerSplit{}
	}
}

// Client fetches single documents over plain HTTP. It holds no connection
// state: every Fetch opens its own transport and closes it before
// returning, so a Client may be reused across sequential fetches.
type Client struct {
	cfg Config
}

// New creates a Client, filling unset Config fields with defaults
func New(cfg Config) *Client {
	cfg.applyDefaults()
	return &Client{cfg: cfg}
}

// Fetch connects to host, issues a GET for resourcePath, and returns the
// extracted body. An empty resourcePath requests the server root. The
// returned error is always a *errors.Error in one of the connection,
// transport, or malformed-response categories.
func (c *Client) Fetch(host, resourcePath string) (string, error) {
	t := &transport.TCPTransport{
		DialTimeout: c.cfg.DialTimeout,
		IOTimeout:   c.cfg.IOTimeout,
	}

	if err := t.Connect(host, c.cfg.Port); err != nil {
		return "", err
	}
	defer c.closeQuietly(t, host)

	return c.exchange(t, host, resourcePath)
}

// FetchOver runs the same request flow over an already-connected transport.
// The caller keeps ownership of the transport and must close it.
func (c *Client) FetchOver(t transport.Transport, host, resourcePath string) (string, error) {
	return c.exchange(t, host, resourcePath)
}

func (c *Client) exchange(t transport.Transport, host, resourcePath string) (string, error) {
	request := protocol.BuildGet(host, resourcePath)

	var raw []byte
	var err error
	if c.cfg.FullRead {
		raw, err = protocol.ExchangeFull(t, request)
	} else {
		raw, err = protocol.Exchange(t, request, c.cfg.MaxResponseBytes)
	}
	if err != nil {
		return "", err
	}

	return c.cfg.Splitter.Split(raw)
}

// closeQuietly releases the transport. Close failures are never propagated:
// from the caller's perspective closing is best effort.
func (c *Client) closeQuietly(t transport.Transport, host string) {
	if err := t.Close(); err != nil {
		c.cfg.Logger.Warn().Err(err).Str("host", host).Msg("close failed")
	}
}
