package log

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	entry *logrus.Entry
}

var _ Logger = (*logrusLogger)(nil)

func (l *logrusLogger) Trace(msg string, kv ...interface{}) {
	l.log(LevelTrace, msg, kv)
}

func (l *logrusLogger) Debug(msg string, kv ...interface{}) {
	l.log(LevelDebug, msg, kv)
}

func (l *logrusLogger) Info(msg string, kv ...interface{}) {
	l.log(LevelInfo, msg, kv)
}

func (l *logrusLogger) Warn(msg string, kv ...interface{}) {
	l.log(LevelWarn, msg, kv)
}

func (l *logrusLogger) Error(msg string, kv ...interface{}) {
	l.log(LevelError, msg, kv)
}

// Fatal logs regardless of level and exits.
func (l *logrusLogger) Fatal(msg string, kv ...interface{}) {
	l.withPairs(kv).Fatal(msg)
}

func (l *logrusLogger) Sub(kv ...interface{}) Logger {
	return &logrusLogger{
		entry: l.withPairs(kv),
	}
}

func (l *logrusLogger) log(level Level, msg string, kv []interface{}) {
	if level < currLevel {
		return
	}
	l.withPairs(kv).Log(level.logrusLevel(), msg)
}

// withPairs attaches alternating key/value arguments as fields. Errors are
// stored as their message so the JSON formatter renders them.
func (l *logrusLogger) withPairs(kv []interface{}) *logrus.Entry {
	if len(kv) == 0 {
		return l.entry
	}
	if len(kv)%2 != 0 {
		panic("log fields must be key/value pairs")
	}

	fields := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("log field keys must be strings")
		}
		val := kv[i+1]
		if err, ok := val.(error); ok {
			val = err.Error()
		}
		fields[key] = val
	}
	return l.entry.WithFields(fields)
}
