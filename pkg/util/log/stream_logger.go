package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	goansi "github.com/k0kubun/go-ansi"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

var stdout = goansi.NewAnsiStdout()
var stderr = goansi.NewAnsiStderr()

type fnTypeInformation struct {
	tag      string
	color    string
	logLevel logrus.Level
}

var fnTypeInformationMap = map[logFunctionType]*fnTypeInformation{
	debugFn: {
		tag:      "[debug]  ",
		color:    "green+b",
		logLevel: logrus.DebugLevel,
	},
	infoFn: {
		tag:      "[info]   ",
		color:    "cyan+b",
		logLevel: logrus.InfoLevel,
	},
	warnFn: {
		tag:      "[warn]   ",
		color:    "magenta+b",
		logLevel: logrus.WarnLevel,
	},
	errorFn: {
		tag:      "[error]  ",
		color:    "red+b",
		logLevel: logrus.ErrorLevel,
	},
	fatalFn: {
		tag:      "[fatal]  ",
		color:    "red+b",
		logLevel: logrus.FatalLevel,
	},
	doneFn: {
		tag:      "[done] √ ",
		color:    "green+b",
		logLevel: logrus.InfoLevel,
	},
	failFn: {
		tag:      "[fail] X ",
		color:    "red+b",
		logLevel: logrus.ErrorLevel,
	},
}

// StreamLogger logs all messages to a stream
type StreamLogger struct {
	logMutex sync.Mutex
	level    logrus.Level

	waitMessage string

	stream io.Writer
}

// NewStreamLogger creates a new stream logger for the given stream
func NewStreamLogger(stream io.Writer, level logrus.Level) *StreamLogger {
	return &StreamLogger{
		level:  level,
		stream: stream,
	}
}

// NewStdoutLogger creates a new logger that writes to the ansi aware stdout
func NewStdoutLogger(level logrus.Level) *StreamLogger {
	return &StreamLogger{
		level:  level,
		stream: stdout,
	}
}

func (s *StreamLogger) writeMessage(fnType logFunctionType, message string) {
	fnInformation := fnTypeInformationMap[fnType]
	if s.level >= fnInformation.logLevel {
		_, _ = s.stream.Write([]byte(ansi.Color(fnInformation.tag, fnInformation.color)))
		_, _ = s.stream.Write([]byte(message))
	}
}

// StartWait prints a wait message until StopWait is called
func (s *StreamLogger) StartWait(message string) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	if s.waitMessage == message {
		return
	}

	s.waitMessage = message
	if s.level >= logrus.InfoLevel {
		_, _ = s.stream.Write([]byte(ansi.Color("[wait]   ", "cyan+b")))
		_, _ = s.stream.Write([]byte(message + "\n"))
	}
}

// StopWait stops the wait message
func (s *StreamLogger) StopWait() {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.waitMessage = ""
}

// Debug implements interface
func (s *StreamLogger) Debug(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(debugFn, fmt.Sprintln(args...))
}

// Debugf implements interface
func (s *StreamLogger) Debugf(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(debugFn, fmt.Sprintf(format, args...)+"\n")
}

// Info implements interface
func (s *StreamLogger) Info(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(infoFn, fmt.Sprintln(args...))
}

// Infof implements interface
func (s *StreamLogger) Infof(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(infoFn, fmt.Sprintf(format, args...)+"\n")
}

// Warn implements interface
func (s *StreamLogger) Warn(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(warnFn, fmt.Sprintln(args...))
}

// Warnf implements interface
func (s *StreamLogger) Warnf(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(warnFn, fmt.Sprintf(format, args...)+"\n")
}

// Error implements interface
func (s *StreamLogger) Error(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(errorFn, fmt.Sprintln(args...))
}

// Errorf implements interface
func (s *StreamLogger) Errorf(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(errorFn, fmt.Sprintf(format, args...)+"\n")
}

// Fatal implements interface
func (s *StreamLogger) Fatal(args ...interface{}) {
	s.logMutex.Lock()
	s.writeMessage(fatalFn, fmt.Sprintln(args...))
	s.logMutex.Unlock()

	os.Exit(1)
}

// Fatalf implements interface
func (s *StreamLogger) Fatalf(format string, args ...interface{}) {
	s.logMutex.Lock()
	s.writeMessage(fatalFn, fmt.Sprintf(format, args...)+"\n")
	s.logMutex.Unlock()

	os.Exit(1)
}

// Done implements interface
func (s *StreamLogger) Done(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(doneFn, fmt.Sprintln(args...))
}

// Donef implements interface
func (s *StreamLogger) Donef(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(doneFn, fmt.Sprintf(format, args...)+"\n")
}

// Fail implements interface
func (s *StreamLogger) Fail(args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(failFn, fmt.Sprintln(args...))
}

// Failf implements interface
func (s *StreamLogger) Failf(format string, args ...interface{}) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.writeMessage(failFn, fmt.Sprintf(format, args...)+"\n")
}

// Print implements interface
func (s *StreamLogger) Print(level logrus.Level, args ...interface{}) {
	switch level {
	case logrus.DebugLevel:
		s.Debug(args...)
	case logrus.InfoLevel:
		s.Info(args...)
	case logrus.WarnLevel:
		s.Warn(args...)
	case logrus.ErrorLevel:
		s.Error(args...)
	case logrus.FatalLevel:
		s.Fatal(args...)
	}
}

// Printf implements interface
func (s *StreamLogger) Printf(level logrus.Level, format string, args ...interface{}) {
	switch level {
	case logrus.DebugLevel:
		s.Debugf(format, args...)
	case logrus.InfoLevel:
		s.Infof(format, args...)
	case logrus.WarnLevel:
		s.Warnf(format, args...)
	case logrus.ErrorLevel:
		s.Errorf(format, args...)
	case logrus.FatalLevel:
		s.Fatalf(format, args...)
	}
}

// Write implements interface
func (s *StreamLogger) Write(message []byte) (int, error) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	return s.stream.Write(message)
}

// WriteString writes a raw message to the stream
func (s *StreamLogger) WriteString(message string) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	_, _ = s.stream.Write([]byte(message))
}

// SetLevel implements interface
func (s *StreamLogger) SetLevel(level logrus.Level) {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	s.level = level
}

// GetLevel implements interface
func (s *StreamLogger) GetLevel() logrus.Level {
	s.logMutex.Lock()
	defer s.logMutex.Unlock()

	return s.level
}
