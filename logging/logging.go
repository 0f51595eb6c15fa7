/*package logging wires the library's diagnostic output to a structured
logger. The library is silent by default: Logger starts as a no-op and only
the heavyweight code paths (table construction, batched evaluation) write to
it, always at debug level.*/
package logging

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger used by the rest of the library. It is handled this
// way so that a logger handle doesn't need to be threaded through literally
// every function signature in the project. Replace it (or call Enable)
// before doing any work if you want diagnostics; leave it alone for silence.
var Logger = zap.NewNop()

// Enable replaces Logger with a production-configured logger writing to
// stderr. If debug is true the level is lowered so that the library's
// diagnostic output becomes visible.
func Enable(debug bool) error {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("logging: could not build logger: %w", err)
	}

	Logger = logger
	return nil
}

// MemString returns a string containing various statistics on the current
// memory usage of the process. It's cheap enough to compute inline in a
// debug field.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB; Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
