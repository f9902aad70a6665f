package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/artdelpi/basichttp/client"
	"github.com/artdelpi/basichttp/protocol"
)

func main() {
	timeout := flag.Duration("timeout", 0, "dial and I/O timeout (0 = none)")
	maxBytes := flag.Int("max-bytes", protocol.DefaultMaxResponseBytes, "receive buffer size for the single bounded read")
	fullRead := flag.Bool("full", false, "read until the server closes instead of one bounded read")
	headers := flag.Bool("headers", false, "split on the HTTP header separator instead of the <html> marker")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] host[/resource]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	cfg := client.Config{
		MaxResponseBytes: *maxBytes,
		DialTimeout:      *timeout,
		IOTimeout:        *timeout,
		FullRead:         *fullRead,
		Logger:           logger,
	}
	if *headers {
		cfg.Splitter = protocol.HeaderSplit{}
	}

	host, resource := client.ParseAddress(flag.Arg(0))
	logger.Debug().Str("host", host).Str("resource", resource).Msg("fetching")

	start := time.Now()
	body, err := client.New(cfg).Fetch(host, resource)
	if err != nil {
		logger.Error().Err(err).Str("host", host).Msg("fetch failed")
		os.Exit(1)
	}

	logger.Debug().Dur("elapsed", time.Since(start)).Int("bytes", len(body)).Msg("fetched")
	fmt.Print(body)
}
