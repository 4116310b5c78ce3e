// Package logger provides a levelled logger that tags every line with a
// coloured component prefix, e.g. "[APP] [INFO] message".
package logger

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/lmandres/mazegen/config"
	"github.com/sirupsen/logrus"
)

const componentField = "component"

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

var levelColors = map[logrus.Level]string{
	logrus.InfoLevel:  config.ColorGreen,
	logrus.WarnLevel:  config.ColorYellow,
	logrus.ErrorLevel: config.ColorRed,
}

// Logger writes Info, Warning and Error lines for one component.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger for the named component writing to w.
// color is one of the ANSI sequences in config; an empty color disables colouring.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&prefixFormatter{color: color})

	return &Logger{entry: base.WithField(componentField, prefix)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders entries as "[COMPONENT] [LEVEL] message".
type prefixFormatter struct {
	color string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	component, _ := e.Data[componentField].(string)
	level := strings.ToUpper(e.Level.String())

	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.color == "" {
		b.WriteString("[" + component + "] [" + level + "] ")
	} else {
		b.WriteString(f.color + "[" + component + "]" + config.ColorReset + " ")
		b.WriteString(levelColors[e.Level] + "[" + level + "]" + config.ColorReset + " ")
	}
	b.WriteString(e.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}
