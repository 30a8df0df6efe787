package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goto/salt/log"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const defaultLevel = "info"

// clientLogger prints printf style messages without timestamps or fields, the way an
// interactive terminal user expects to read them.
type clientLogger struct {
	log *logrus.Logger
}

// NewClientLogger returns a logger writing to stdout at the given level. An unknown level
// falls back to info.
func NewClientLogger(level string) log.Logger {
	return NewClientLoggerWithWriter(level, os.Stdout)
}

func NewClientLoggerWithWriter(level string, writer io.Writer) log.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl, _ = logrus.ParseLevel(defaultLevel)
	}

	l := logrus.New()
	l.SetOutput(writer)
	l.SetLevel(lvl)
	l.SetFormatter(&plainFormatter{colored: isTerminal(writer)})

	return &clientLogger{log: l}
}

func (c *clientLogger) Debug(msg string, args ...interface{}) {
	c.log.Debug(format(msg, args...))
}

func (c *clientLogger) Info(msg string, args ...interface{}) {
	c.log.Info(format(msg, args...))
}

func (c *clientLogger) Warn(msg string, args ...interface{}) {
	c.log.Warn(format(msg, args...))
}

func (c *clientLogger) Error(msg string, args ...interface{}) {
	c.log.Error(format(msg, args...))
}

func (c *clientLogger) Fatal(msg string, args ...interface{}) {
	c.log.Fatal(format(msg, args...))
}

func (c *clientLogger) Level() string {
	return c.log.Level.String()
}

func (c *clientLogger) Writer() io.Writer {
	return c.log.Out
}

func format(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

type plainFormatter struct {
	colored bool
}

func (p *plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := entry.Message
	if p.colored {
		switch entry.Level {
		case logrus.WarnLevel:
			msg = color.YellowString(msg)
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			msg = color.RedString(msg)
		}
	}

	var b bytes.Buffer
	b.WriteString(msg)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
