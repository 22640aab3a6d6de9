// Command catalogue reads a JSON request document on stdin and writes the
// answers to its stat requests to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/requests"
)

func main() {
	verbose := flag.Bool("v", false, "Log build steps to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := logging.NewStructuredLogger(os.Stderr, level)

	if err := process(logger, os.Stdin, os.Stdout); err != nil {
		logging.LogError(logger, "failed to process requests", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// process buffers both ends of requests.Run. Nothing is flushed to w when the
// document fails to build.
func process(logger *slog.Logger, r io.Reader, w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	if err := requests.Run(logger, bufio.NewReader(r), out); err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, out.Flush, logger, "flush output")
	return nil
}
