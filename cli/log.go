package cli

import (
	"io"
	"strings"

	"github.com/andaru/sedml/sedlog"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogLevel is the console log level when none is configured
const DefaultLogLevel = "warn"

// LogLevels lists the accepted log level names
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// SetupLogging sends the global zerolog logger to a console writer on w,
// or on a colorable standard error when w is nil, at the named level. The
// library packages log through the same logger.
func SetupLogging(level string, w io.Writer) error {
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return errors.Errorf("invalid log level %q, use one of: %s", level, strings.Join(LogLevels, ", "))
	}
	if w == nil {
		w = colorable.NewColorableStderr()
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
	}).With().Timestamp().Logger()
	sedlog.SetLogger(log.Logger)
	return nil
}
