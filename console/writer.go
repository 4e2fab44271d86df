package console

import (
	"strings"

	"github.com/rs/zerolog"
)

// Writer is a zerolog.LevelWriter that forwards each log line to the browser
// console method matching its level.
type Writer struct {
	// Emit receives one trimmed log line. Nil means the console functions.
	Emit func(level zerolog.Level, line string)
}

var _ zerolog.LevelWriter = Writer{}

// NewLogger returns a logger writing to the browser console at the given level.
func NewLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(Writer{}).Level(level).With().Timestamp().Logger()
}

func (w Writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w Writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	if w.Emit != nil {
		w.Emit(level, line)
		return len(p), nil
	}

	switch {
	case level == zerolog.NoLevel:
		Log(line)
	case level <= zerolog.DebugLevel:
		Debug(line)
	case level == zerolog.InfoLevel:
		Log(line)
	case level == zerolog.WarnLevel:
		Warn(line)
	default:
		Error(line)
	}
	return len(p), nil
}
