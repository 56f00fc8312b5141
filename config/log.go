package config

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the standard logger.
func InitLogger(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("[config] %w", err)
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// NamedLogger creates named package logger. Every message is prefixed with
// the name and the calling file:line. It follows the standard logger level.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			Name: name,
			TextFormatter: logrus.TextFormatter{
				FullTimestamp: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.GetLevel(),
	}
}

// CustomTextFormatter ...
type CustomTextFormatter struct {
	Name string
	logrus.TextFormatter
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	caller := ""
	if entry.HasCaller() {
		caller = fmt.Sprintf("%s:%03d", path.Base(entry.Caller.File), entry.Caller.Line)
	} else if _, file, no, ok := runtime.Caller(6); ok {
		caller = fmt.Sprintf("%s:%03d", path.Base(file), no)
	}
	entry.Message = fmt.Sprintf("[%s][%-15s]%s", f.Name, caller, entry.Message)
	return f.TextFormatter.Format(entry)
}
