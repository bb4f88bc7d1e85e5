// Package console is the leveled logging and output layer shared by the
// CLI. It writes human-oriented messages to stderr and primary command
// output (rendered Dockerfiles) to stdout, with colors disabled when the
// stream is not a terminal.
package console

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/mitchellh/go-wordwrap"
	"github.com/moby/term"
)

// Console writes leveled messages and command output. Methods are safe
// for concurrent use.
type Console struct {
	Color bool
	Level Level
	mu    sync.Mutex
}

// Debug level message.
func (c *Console) Debug(msg string, v ...interface{}) {
	c.log(DebugLevel, msg, v...)
}

// Info level message.
func (c *Console) Info(msg string, v ...interface{}) {
	c.log(InfoLevel, msg, v...)
}

// Warn level message.
func (c *Console) Warn(msg string, v ...interface{}) {
	c.log(WarnLevel, msg, v...)
}

// Error level message.
func (c *Console) Error(msg string, v ...interface{}) {
	c.log(ErrorLevel, msg, v...)
}

// Fatal level message, followed by exit.
func (c *Console) Fatal(msg string, v ...interface{}) {
	c.log(FatalLevel, msg, v...)
	os.Exit(1)
}

// Output writes a line of primary command output to stdout.
func (c *Console) Output(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(os.Stdout, line)
}

func (c *Console) log(level Level, msg string, v ...interface{}) {
	if level < c.Level {
		return
	}

	formatted := fmt.Sprintf(msg, v...)

	// Wrap for the terminal, but only when it is wide enough to matter;
	// tiny widths produce one word per line.
	if width := stderrWidth(); width > 30 {
		formatted = wordwrap.WrapString(formatted, uint(width)-4)
	}

	prefix := "===> "
	if c.Color {
		color := aurora.Faint
		switch level {
		case WarnLevel:
			color = aurora.Yellow
		case ErrorLevel, FatalLevel:
			color = aurora.Red
		}
		prefix = color(prefix).String()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range strings.Split(formatted, "\n") {
		if c.Color && level == DebugLevel {
			line = aurora.Faint(line).String()
		}
		if i == 0 {
			line = prefix + line
		} else {
			line = "     " + line
		}
		fmt.Fprintln(os.Stderr, line)
	}
}

// stderrWidth returns the terminal width of stderr, or 0 when stderr is
// not a terminal (stdout might be piped, so stderr is the one measured).
func stderrWidth() int {
	fd := os.Stderr.Fd()
	if !term.IsTerminal(fd) {
		return 0
	}
	ws, err := term.GetWinsize(fd)
	if err != nil {
		return 0
	}
	return int(ws.Width)
}
