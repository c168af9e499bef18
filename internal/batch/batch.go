// Package batch reads files of named patterns.
//
// A batch file is a list of assignments, one pattern per name:
//
//	# binary numbers ending in 0
//	binary = "10+";
//	pairs  = "1(00)*1";
//
// Names follow Go identifier rules. Comments run from '#' to the end of the
// line.
package batch

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed batch file.
type File struct {
	Entries []*Entry `parser:"@@*"`
}

// Entry is a single named pattern.
type Entry struct {
	Pos     lexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@String ';'"`
}

var batchLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Punct", Pattern: `[=;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(batchLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
)

// Parse parses src. filename is only used in error positions.
func Parse(filename, src string) (*File, error) {
	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	if err := f.checkNames(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads and parses the batch file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

func (f *File) checkNames() error {
	seen := make(map[string]*Entry, len(f.Entries))
	for _, e := range f.Entries {
		if prev, ok := seen[e.Name]; ok {
			return fmt.Errorf("%s: duplicate name %q, first defined at %s", e.Pos, e.Name, prev.Pos)
		}
		seen[e.Name] = e
	}
	return nil
}
