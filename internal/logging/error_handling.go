package logging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net"
)

// SafeCloseWithLogging closes a document, feed file or response body at the
// end of a load. Closing something that is already closed is not reported.
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}
	err := closer.Close()
	if err == nil || errors.Is(err, fs.ErrClosed) || errors.Is(err, net.ErrClosed) {
		return
	}
	LogError(ForComponent(logger, "resource_management"), "failed to close resource", err,
		slog.String("operation", operation))
}

// HandleDeferredError runs a cleanup step such as flushing buffered output.
// Its failure becomes the function's error unless one is already set.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}
	err := deferredOp()
	if err == nil {
		return
	}
	LogError(ForComponent(logger, "deferred_cleanup"), "deferred operation failed", err,
		slog.String("operation", operation))
	if originalErr != nil && *originalErr == nil {
		*originalErr = fmt.Errorf("%s failed: %w", operation, err)
	}
}
