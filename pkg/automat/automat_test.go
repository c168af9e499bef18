package automat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/automat/internal/nfatest"
)

func TestOptionsValidate(t *testing.T) {
	valid := Options{Pattern: "a", Name: "A", OutputFile: "a.go", Package: "nfa"}

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"valid", func(*Options) {}, false},
		{"no pattern", func(o *Options) { o.Pattern = "" }, true},
		{"no name", func(o *Options) { o.Name = "" }, true},
		{"no output", func(o *Options) { o.OutputFile = "" }, true},
		{"no package", func(o *Options) { o.Package = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	var synErr *SyntaxError
	if _, err := Compile("a|"); !errors.As(err, &synErr) {
		t.Errorf("Compile(a|) error = %v, want SyntaxError", err)
	}
	if _, err := Compile("a#b"); !errors.As(err, &synErr) {
		t.Errorf("Compile(a#b) error = %v, want SyntaxError", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile("(a")
}

func TestStripSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a b", "ab"},
		{" 1 ( 0 0 ) * 1\n", "1(00)*1"},
		{"a\t|\r\nb", "a|b"},
	}

	for _, tt := range tests {
		if got := StripSpace(tt.input); got != tt.want {
			t.Errorf("StripSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	a := MustCompile(StripSpace("( a b ) * c"))
	nfatest.AssertAccepts(t, a, "c", "abc")
}

func TestAnalyze(t *testing.T) {
	result, err := Analyze("10+")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.States != 8 {
		t.Errorf("States = %d, want 8", result.States)
	}
	if result.Transitions != 8 {
		t.Errorf("Transitions = %d, want 8", result.Transitions)
	}
	if result.EpsilonTransitions != 6 {
		t.Errorf("EpsilonTransitions = %d, want 6", result.EpsilonTransitions)
	}
	if result.Alphabet != "01" {
		t.Errorf("Alphabet = %q, want %q", result.Alphabet, "01")
	}
	if len(result.FinalStates) != 1 || result.FinalStates[0] != 8 {
		t.Errorf("FinalStates = %v, want [8]", result.FinalStates)
	}

	if _, err := Analyze("*"); err == nil {
		t.Error("Analyze(*) succeeded, want error")
	}
}

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "binary.go")

	var trace strings.Builder
	err := Generate(Options{
		Pattern:    "10+",
		Name:       "binary",
		OutputFile: outputFile,
		Package:    "tables",
		Verbose:    true,
		Log:        &trace,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("output file was not created: %v", err)
	}
	src := string(data)
	for _, want := range []string{"package tables", "var Binary = NFA{", `"10+"`} {
		if !strings.Contains(src, want) {
			t.Errorf("generated file missing %q:\n%s", want, src)
		}
	}
	if !strings.Contains(trace.String(), "[automat]") {
		t.Errorf("verbose trace is empty")
	}
}

func TestGenerateErrors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		opts Options
	}{
		{"invalid options", Options{Pattern: "a"}},
		{"bad pattern", Options{Pattern: "a||b", Name: "x", OutputFile: filepath.Join(tmpDir, "x.go"), Package: "p"}},
		{"bad name", Options{Pattern: "a", Name: "9x", OutputFile: filepath.Join(tmpDir, "y.go"), Package: "p"}},
		{"bad package", Options{Pattern: "a", Name: "x", OutputFile: filepath.Join(tmpDir, "z.go"), Package: "a-b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Generate(tt.opts); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
