// Command automat compiles regular expressions into Thompson NFAs and prints
// them as text, Graphviz or Go source.
//
// Usage:
//
//	automat -re '10+' -re '1(00)*1'
//	automat -batch patterns.re -format go -pkg tables -o tables.go
//	automat -re '(ab)*c' -format dot | dot -Tpng -o nfa.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/automat/internal/automaton"
	"github.com/KromDaniel/automat/internal/batch"
	"github.com/KromDaniel/automat/internal/codegen"
	"github.com/KromDaniel/automat/pkg/automat"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a arrayFlags) String() string {
	return strings.Join(a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

const (
	formatText  = "text"
	formatDot   = "dot"
	formatGo    = "go"
	formatStats = "stats"
)

type entry struct {
	name    string
	pattern string
}

type options struct {
	patterns  arrayFlags
	names     arrayFlags
	batchFile string
	format    string
	output    string
	pkg       string
	verbose   bool
	demo      bool
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 2
	}

	if err := execute(opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("automat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&opts.patterns, "re", "pattern to compile (repeatable)")
	fs.Var(&opts.names, "name", "name for the matching -re pattern (repeatable)")
	fs.StringVar(&opts.batchFile, "batch", "", "file of name = \"pattern\"; entries")
	fs.StringVar(&opts.format, "format", formatText, "output format: text, dot, go or stats")
	fs.StringVar(&opts.output, "o", "-", "output file, - for stdout")
	fs.StringVar(&opts.pkg, "pkg", codegen.DefaultPackage, "package name for -format go")
	fs.BoolVar(&opts.verbose, "v", false, "trace parsing to stderr")
	fs.BoolVar(&opts.demo, "demo", false, "print sample automata built from each combinator")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if !opts.demo && len(opts.patterns) == 0 && opts.batchFile == "" {
		fmt.Fprintln(stderr, "usage: automat (-re <pattern>... | -batch <file> | -demo) [-format text|dot|go|stats] [-o file] [-pkg name] [-v]")
		fs.PrintDefaults()
		return nil, errUsage
	}
	if len(opts.names) > 0 && len(opts.names) != len(opts.patterns) {
		return nil, fmt.Errorf("got %d -name flags for %d -re patterns", len(opts.names), len(opts.patterns))
	}
	switch opts.format {
	case formatText, formatDot, formatGo, formatStats:
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	return opts, nil
}

func execute(opts *options, stdout, stderr io.Writer) error {
	w, closeOutput, err := openOutput(opts.output, stdout)
	if err != nil {
		return err
	}
	defer closeOutput()

	if opts.demo {
		return writeDemo(w)
	}

	entries, err := collectEntries(opts)
	if err != nil {
		return err
	}

	c := automat.NewCompiler(opts.verbose, stderr)
	compiled := make([]*automaton.Automaton, len(entries))
	for i, e := range entries {
		a, err := c.Compile(automat.StripSpace(e.pattern))
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		compiled[i] = a
	}

	switch opts.format {
	case formatGo:
		return writeGo(w, opts, entries, compiled)
	case formatDot:
		for _, a := range compiled {
			if err := a.WriteDOT(w); err != nil {
				return err
			}
		}
	case formatStats:
		for i, e := range entries {
			s := automat.Summarize(e.pattern, compiled[i])
			fmt.Fprintf(w, "%s\t%s\tstates=%d transitions=%d epsilon=%d alphabet=%q\n",
				e.name, e.pattern, s.States, s.Transitions, s.EpsilonTransitions, s.Alphabet)
		}
	default:
		for i, e := range entries {
			fmt.Fprintf(w, "# %s: %s\n%s\n\n", e.name, e.pattern, compiled[i])
		}
	}
	return nil
}

func collectEntries(opts *options) ([]entry, error) {
	var entries []entry
	for i, p := range opts.patterns {
		name := fmt.Sprintf("Pattern%d", i+1)
		if len(opts.names) > 0 {
			name = opts.names[i]
		}
		entries = append(entries, entry{name: name, pattern: p})
	}

	if opts.batchFile != "" {
		f, err := batch.Load(opts.batchFile)
		if err != nil {
			return nil, err
		}
		for _, e := range f.Entries {
			entries = append(entries, entry{name: e.Name, pattern: e.Pattern})
		}
	}
	return entries, nil
}

func writeGo(w io.Writer, opts *options, entries []entry, compiled []*automaton.Automaton) error {
	source := "command line"
	if opts.batchFile != "" {
		source = opts.batchFile
	}

	gen, err := codegen.New(codegen.Config{Package: opts.pkg, Source: source})
	if err != nil {
		return err
	}
	for i, e := range entries {
		if err := gen.Add(e.name, e.pattern, compiled[i]); err != nil {
			return err
		}
	}
	return gen.Render(w)
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
