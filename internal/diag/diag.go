// Package diag provides a scoped diagnostic wrapper for units of work.
//
// Observe runs a function and, when it fails, logs a structured snapshot of
// the process state before handing the original error back unchanged. The
// error identity is preserved so callers can still classify it; the snapshot
// only adds observability.
package diag

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"

	"scrobbler/internal/logging"
)

// Observe executes fn and returns its error untouched. On failure (error or
// panic) it captures a diagnostic snapshot and writes it to the logger at
// error level first. A panic is logged the same way and then re-raised.
func Observe(logger *slog.Logger, component string, fn func() error) (err error) {
	logger = logging.NewComponentLogger(logger, component)

	defer func() {
		if recovered := recover(); recovered != nil {
			logSnapshot(logger, fmt.Sprintf("panic: %v", recovered))
			panic(recovered)
		}
		if err != nil {
			logSnapshot(logger, err.Error())
		}
	}()

	return fn()
}

func logSnapshot(logger *slog.Logger, failure string) {
	hostname, _ := os.Hostname()
	workingDir, _ := os.Getwd()

	logger.Error("unhandled failure, capturing diagnostics",
		logging.String("failure", failure),
		logging.String("incident_id", uuid.NewString()),
		logging.String("go_version", runtime.Version()),
		logging.String("os", runtime.GOOS),
		logging.String("arch", runtime.GOARCH),
		logging.String("hostname", hostname),
		logging.String("working_dir", workingDir),
		logging.Int("goroutines", runtime.NumGoroutine()),
		logging.Any("argv", os.Args),
		logging.String("stack", string(debug.Stack())))
}
