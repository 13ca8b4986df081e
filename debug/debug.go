// Package debug configures the shared tracing logger for switchapps.
// Verbose tracing is enabled by the --debug flag or by SWITCHAPPS_DEBUG=1
// in the environment.
package debug

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = newLogger(zerolog.WarnLevel)
)

func newLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Init sets the trace level for the current invocation.
func Init(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose || os.Getenv("SWITCHAPPS_DEBUG") == "1" {
		logger = newLogger(zerolog.DebugLevel)
		logger.Debug().Int("pid", os.Getpid()).Strs("args", os.Args).Msg("verbose tracing enabled")
		return
	}
	logger = newLogger(zerolog.WarnLevel)
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
