package compiler

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger traces parser decisions when verbose mode is enabled.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to out, or to stderr when out is nil.
func NewLogger(enabled bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{enabled: enabled, out: out}
}

// Log prints a formatted line if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[automat] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[automat] === %s ===\n", name)
	}
}

// stacks prints the depth of the operand stack and the pending operators.
func (l *Logger) stacks(operands int, operators []pending) {
	if !l.enabled {
		return
	}
	var ops strings.Builder
	for _, op := range operators {
		ops.WriteRune(op.op)
	}
	fmt.Fprintf(l.out, "[automat]     operands=%d operators=%q\n", operands, ops.String())
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
