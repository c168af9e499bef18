// Package automat compiles regular expressions into Thompson NFAs.
//
// The accepted syntax is letters and digits as literals, '.' for explicit
// concatenation, '|' for union, the postfix operators '*', '+' and '?', and
// parentheses for grouping. Adjacent operands are concatenated implicitly.
// Whitespace is not part of the grammar; callers strip it before compiling.
package automat

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/KromDaniel/automat/internal/automaton"
	"github.com/KromDaniel/automat/internal/codegen"
	"github.com/KromDaniel/automat/internal/compiler"
)

// Automaton is a compiled NFA. It is read-only and safe to share.
type Automaton = automaton.Automaton

// Edge is a single labeled transition of an Automaton.
type Edge = automaton.Edge

// Epsilon labels transitions that consume no input.
const Epsilon = automaton.Epsilon

// Errors returned by Compile.
type (
	// SyntaxError reports a malformed pattern.
	SyntaxError = compiler.SyntaxError
	// OperatorError reports an operator applied without enough operands.
	OperatorError = compiler.OperatorError
	// InvalidSymbolError reports a literal outside the symbol alphabet.
	InvalidSymbolError = automaton.InvalidSymbolError
)

// ErrAmbiguousParse is returned when a pattern does not reduce to a single
// automaton.
var ErrAmbiguousParse = compiler.ErrAmbiguousParse

// Compiler compiles patterns, optionally tracing each parsing step.
type Compiler = compiler.Compiler

// NewCompiler returns a compiler. When verbose is set, parsing steps are
// written to w, or to stderr when w is nil.
func NewCompiler(verbose bool, w io.Writer) *Compiler {
	return compiler.New(compiler.Config{Verbose: verbose, Output: w})
}

// Compile builds the NFA of pattern.
func Compile(pattern string) (*Automaton, error) {
	return compiler.Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("automat: Compile(%q): %v", pattern, err))
	}
	return a
}

// StripSpace removes every whitespace character from pattern.
func StripSpace(pattern string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, pattern)
}

// Options configures Go code generation for a pattern.
type Options struct {
	// Pattern is the regular expression to compile
	Pattern string

	// Name is the variable name of the generated automaton (e.g., "binary" generates "Binary")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose traces parsing to Log (stderr when Log is nil)
	Verbose bool
	Log     io.Writer
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles opts.Pattern and writes its automaton as a Go table to
// opts.OutputFile.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	a, err := NewCompiler(opts.Verbose, opts.Log).Compile(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	gen, err := codegen.New(codegen.Config{Package: opts.Package})
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if err := gen.Add(opts.Name, opts.Pattern, a); err != nil {
		return fmt.Errorf("failed to register automaton: %w", err)
	}
	if err := gen.Save(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
