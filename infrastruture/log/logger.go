// Package logger provides the prefixed, leveled logger every component writes through.
package logger

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger output must not be nil")
)

const timeLayout = "2006/01/02 15:04:05"

// Logger writes lines of the form `2006/01/02 15:04:05 [PREFIX] [LEVEL] message`.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger that tags every line with prefix drawn in c and writes to out.
// The level starts at info.
func New(prefix string, c color.Color, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: c.Sprint(prefix)})

	return &Logger{log: l}, nil
}

// SetLevel changes the minimum level written, e.g. "debug", "info", "warning", "error".
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.log.SetLevel(lvl)
	return nil
}

func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.log.Warning(msg)
}

func (l *Logger) Error(msg string) {
	l.log.Error(msg)
}

func (l *Logger) Debug(msg string) {
	l.log.Debug(msg)
}

type prefixFormatter struct {
	prefix string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(e.Time.Format(timeLayout))
	b.WriteString(" [")
	b.WriteString(f.prefix)
	b.WriteString("] [")
	b.WriteString(strings.ToUpper(e.Level.String()))
	b.WriteString("] ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
