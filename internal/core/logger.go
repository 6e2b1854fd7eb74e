package core

import (
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Logger defines the output interface used by the rbtree tools.
type Logger interface {
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
	Critical(...interface{})
	Criticalf(string, ...interface{})
}

// DefaultLogger is the default logger, and wraps the standard log library.
type DefaultLogger struct {
	I *log.Logger
	W *log.Logger
	E *log.Logger
}

// NewLogger returns a configured default logger.
func NewLogger() *DefaultLogger {
	return &DefaultLogger{
		I: log.New(os.Stderr, "[INFO] ", log.LstdFlags),
		W: log.New(os.Stderr, "[WARN] ", log.LstdFlags),
		E: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// Info writes to info logger
func (d *DefaultLogger) Info(v ...interface{}) { d.I.Print(v...) }

// Infof writes to info logger
func (d *DefaultLogger) Infof(f string, v ...interface{}) { d.I.Printf(f, v...) }

// Warn writes to the warning logger
func (d *DefaultLogger) Warn(v ...interface{}) { d.W.Print(v...) }

// Warnf writes to the warning logger
func (d *DefaultLogger) Warnf(f string, v ...interface{}) { d.W.Printf(f, v...) }

// Error writes to the error logger
func (d *DefaultLogger) Error(v ...interface{}) { d.E.Print(v...) }

// Errorf writes to the error logger
func (d *DefaultLogger) Errorf(f string, v ...interface{}) { d.E.Printf(f, v...) }

// Critical writes to the error logger with the stack trace
func (d *DefaultLogger) Critical(v ...interface{}) {
	d.E.Print(v...)
	d.E.Print(string(debug.Stack()))
}

// Criticalf writes to the error logger with the stack trace
func (d *DefaultLogger) Criticalf(f string, v ...interface{}) {
	d.E.Printf(f, v...)
	d.E.Print(string(debug.Stack()))
}

// LogrusLogger writes structured records through logrus.
type LogrusLogger struct {
	*logrus.Entry
}

// NewLogrusLogger returns a logrus backed logger which writes to out, either as JSON or as text.
func NewLogrusLogger(out io.Writer, json bool) *LogrusLogger {
	logger := logrus.New()
	logger.SetOutput(out)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return &LogrusLogger{Entry: logrus.NewEntry(logger)}
}

// Critical writes an error record with the stack trace attached
func (l *LogrusLogger) Critical(v ...interface{}) {
	l.WithField("stack", string(debug.Stack())).Error(v...)
}

// Criticalf writes an error record with the stack trace attached
func (l *LogrusLogger) Criticalf(f string, v ...interface{}) {
	l.WithField("stack", string(debug.Stack())).Errorf(f, v...)
}
