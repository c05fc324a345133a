package askline

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	debugOnce   sync.Once
	debugLogger zerolog.Logger
)

// debugLog returns the package trace logger. Tracing is off unless
// ASKLINE_DEBUG names a file to append to; it never writes to the terminal
// streams, which belong to the prompt protocol. Password buffer contents are
// never logged, only lengths and outcomes.
func debugLog() *zerolog.Logger {
	debugOnce.Do(func() {
		debugLogger = zerolog.Nop()
		path := os.Getenv("ASKLINE_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		debugLogger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	})
	return &debugLogger
}
