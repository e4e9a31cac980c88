// Package rlog is a small wrapper around zerolog, in the same
// package-level-logger-with-chained-fields shape the teacher uses via
// gnark's "logger" package: `log := rlog.Logger(); log.Info().Str(...).Msg(...)`.
package rlog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	mu  sync.Mutex
	log zerolog.Logger
)

func init() {
	log = zerolog.New(consoleOrJSON(os.Stderr)).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func consoleOrJSON(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		// colorable translates ANSI escapes for Windows consoles;
		// a no-op wrapper on platforms that already support them.
		return zerolog.ConsoleWriter{Out: colorable.NewColorable(f), TimeFormat: time.RFC3339}
	}
	return w
}

// Logger returns the package-level logger.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// SetOutput redirects the package-level logger to w, auto-detecting
// whether to colorize for an interactive terminal the same way the
// default os.Stderr destination does.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(consoleOrJSON(w)).With().Timestamp().Logger()
}

// SetLevel sets the minimum level the package-level logger emits.
// Levels below Info have no effect, since init sets zerolog's global
// level to Info. PassConfig's Silent knob does not call this; it only
// suppresses the manager's statistics table.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(level)
}

// Disable silences all output from the package-level logger.
func Disable() {
	SetLevel(zerolog.Disabled)
}
