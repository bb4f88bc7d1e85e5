package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Default is the global console instance so callers don't thread one
// around. Color defaults off when stderr is not a terminal.
var Default = &Console{
	Color: isatty.IsTerminal(os.Stderr.Fd()),
	Level: InfoLevel,
}

// SetLevel sets the global log level.
func SetLevel(level Level) {
	Default.Level = level
}

// Debug level message.
func Debug(msg string, v ...interface{}) {
	Default.Debug(msg, v...)
}

// Info level message.
func Info(msg string, v ...interface{}) {
	Default.Info(msg, v...)
}

// Warn level message.
func Warn(msg string, v ...interface{}) {
	Default.Warn(msg, v...)
}

// Error level message.
func Error(msg string, v ...interface{}) {
	Default.Error(msg, v...)
}

// Fatal level message, followed by exit.
func Fatal(msg string, v ...interface{}) {
	Default.Fatal(msg, v...)
}

// Output writes a line of primary command output to stdout.
func Output(line string) {
	Default.Output(line)
}
