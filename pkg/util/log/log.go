package log

import (
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

var defaultLog Logger = NewStdoutLogger(logrus.InfoLevel)

// Discard is a logger implementation that just discards every log statement
var Discard = &DiscardLogger{}

// GetInstance returns the Logger instance
func GetInstance() Logger {
	return defaultLog
}

// SetInstance sets the default logger instance
func SetInstance(logger Logger) {
	if logger == nil {
		return
	}

	defaultLog = logger
}

// PrintTable prints a table with header columns and string values
func PrintTable(s Logger, header []string, values [][]string) {
	table := tablewriter.NewWriter(s)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.AppendBulk(values)

	s.WriteString("\n")
	table.Render()
	s.WriteString("\n")
}

// Debug prints debug information with the default logger
func Debug(args ...interface{}) {
	defaultLog.Debug(args...)
}

// Debugf prints formatted debug information with the default logger
func Debugf(format string, args ...interface{}) {
	defaultLog.Debugf(format, args...)
}

// Info prints information with the default logger
func Info(args ...interface{}) {
	defaultLog.Info(args...)
}

// Infof prints formatted information with the default logger
func Infof(format string, args ...interface{}) {
	defaultLog.Infof(format, args...)
}

// Warn prints warnings with the default logger
func Warn(args ...interface{}) {
	defaultLog.Warn(args...)
}

// Warnf prints formatted warnings with the default logger
func Warnf(format string, args ...interface{}) {
	defaultLog.Warnf(format, args...)
}

// Error prints errors with the default logger
func Error(args ...interface{}) {
	defaultLog.Error(args...)
}

// Errorf prints formatted errors with the default logger
func Errorf(format string, args ...interface{}) {
	defaultLog.Errorf(format, args...)
}

// Fatal prints fatal errors with the default logger and exits
func Fatal(args ...interface{}) {
	defaultLog.Fatal(args...)
}

// Fatalf prints formatted fatal errors with the default logger and exits
func Fatalf(format string, args ...interface{}) {
	defaultLog.Fatalf(format, args...)
}

// Done prints a success message with the default logger
func Done(args ...interface{}) {
	defaultLog.Done(args...)
}

// Donef prints a formatted success message with the default logger
func Donef(format string, args ...interface{}) {
	defaultLog.Donef(format, args...)
}

// StartWait prints a wait message with the default logger
func StartWait(message string) {
	defaultLog.StartWait(message)
}

// StopWait stops the wait message of the default logger
func StopWait() {
	defaultLog.StopWait()
}

// SetLevel sets the log level of the default logger
func SetLevel(level logrus.Level) {
	defaultLog.SetLevel(level)
}
