package log

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

func NewLevel(l string) (Level, error) {
	for level, name := range levelNames {
		if name == strings.ToLower(l) {
			return level, nil
		}
	}
	return LevelTrace, errors.Errorf("invalid log level %q", l)
}

func (l Level) String() string {
	name, ok := levelNames[l]
	if !ok {
		panic("invalid level")
	}
	return name
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelFatal:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var currLevel = LevelInfo

var backend = logrus.New()

var rootLogger = &logrusLogger{
	entry: logrus.NewEntry(backend),
}

type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

func SetLevel(level Level) {
	currLevel = level
	backend.SetLevel(level.logrusLevel())
}

func SetFormat(format string) error {
	switch format {
	case FormatText:
		backend.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		backend.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid log format %q", format)
	}
	return nil
}

func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	backend.SetOutput(os.Stderr)
	// trace everything under go test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
