package codegen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/KromDaniel/automat/internal/automaton"
)

// Config holds the configuration for code generation.
type Config struct {
	Package string // Package clause of the generated file
	Source  string // Where the patterns came from, shown in the header
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid identifier", c.Package)
	}
	return nil
}

type table struct {
	name    string
	pattern string
	nfa     *automaton.Automaton
}

// Generator collects automata and renders them as one Go file. Each
// automaton becomes an exported variable of type NFA.
type Generator struct {
	config Config
	tables []table
	names  map[string]bool
}

// New creates a generator. It returns an error if config is invalid.
func New(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{config: config, names: make(map[string]bool)}, nil
}

// Add registers an automaton under name. The exported form of name must be
// a Go identifier not already registered.
func (g *Generator) Add(name, pattern string, a *automaton.Automaton) error {
	varName := VarName(name)
	if !token.IsIdentifier(varName) || !token.IsExported(varName) {
		return fmt.Errorf("name %q does not form an exported Go identifier", name)
	}
	if varName == TypeName || varName == EpsilonName {
		return fmt.Errorf("name %q collides with a generated declaration", name)
	}
	if g.names[varName] {
		return fmt.Errorf("duplicate automaton name %q", varName)
	}
	g.names[varName] = true
	g.tables = append(g.tables, table{name: varName, pattern: pattern, nfa: a})
	return nil
}

// Len returns the number of registered automata.
func (g *Generator) Len() int {
	return len(g.tables)
}

// Render writes the generated source to w.
func (g *Generator) Render(w io.Writer) error {
	if err := g.file().Render(w); err != nil {
		return fmt.Errorf("failed to render file: %w", err)
	}
	return nil
}

// Save writes the generated source to path.
func (g *Generator) Save(path string) error {
	if err := g.file().Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (g *Generator) file() *jen.File {
	f := jen.NewFile(g.config.Package)
	header := "Code generated by automat. DO NOT EDIT."
	if g.config.Source != "" {
		header = fmt.Sprintf("Code generated by automat from %s. DO NOT EDIT.", g.config.Source)
	}
	f.HeaderComment(header)

	f.Comment(EpsilonName + " labels transitions that consume no input.")
	f.Const().Id(EpsilonName).Op("=").LitRune(automaton.Epsilon)
	f.Line()

	f.Comment(TypeName + " is a nondeterministic finite automaton with epsilon transitions.")
	f.Type().Id(TypeName).Struct(
		jen.Id(PatternField).String(),
		jen.Id(StatesField).Index().Int(),
		jen.Id(StartField).Int(),
		jen.Id(FinalField).Index().Int(),
		jen.Id(AlphabetField).Index().Rune(),
		jen.Id(TransitionsField).Map(jen.Int()).Map(jen.Int()).Index().Rune(),
	)

	for _, t := range g.tables {
		f.Line()
		f.Comment(fmt.Sprintf("%s is the automaton of the pattern %s", t.name, t.pattern))
		f.Var().Id(t.name).Op("=").Id(TypeName).Values(jen.Dict{
			jen.Id(PatternField):     jen.Lit(t.pattern),
			jen.Id(StatesField):      jen.Index().Int().Values(intLits(t.nfa.States())...),
			jen.Id(StartField):       jen.Lit(t.nfa.Start()),
			jen.Id(FinalField):       jen.Index().Int().Values(intLits(t.nfa.FinalStates())...),
			jen.Id(AlphabetField):    jen.Index().Rune().Values(runeLits(t.nfa.Alphabet())...),
			jen.Id(TransitionsField): jen.Map(jen.Int()).Map(jen.Int()).Index().Rune().Values(transitionDict(t.nfa)),
		})
	}
	return f
}

// transitionDict builds the nested map literal. jen.Dict orders keys when
// rendering, so the output does not depend on map iteration order.
func transitionDict(a *automaton.Automaton) jen.Dict {
	outer := jen.Dict{}
	for from, row := range a.Transitions() {
		inner := jen.Dict{}
		for to, labels := range row {
			inner[jen.Lit(to)] = jen.Values(runeLits(labels)...)
		}
		outer[jen.Lit(from)] = jen.Values(inner)
	}
	return outer
}

func intLits(values []int) []jen.Code {
	out := make([]jen.Code, len(values))
	for i, v := range values {
		out[i] = jen.Lit(v)
	}
	return out
}

// runeLits renders labels as rune literals, using the Epsilon constant for
// epsilon transitions.
func runeLits(labels []rune) []jen.Code {
	out := make([]jen.Code, len(labels))
	for i, l := range labels {
		if l == automaton.Epsilon {
			out[i] = jen.Id(EpsilonName)
			continue
		}
		out[i] = jen.LitRune(l)
	}
	return out
}
