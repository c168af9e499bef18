package main

import (
	"fmt"
	"io"

	"github.com/KromDaniel/automat/internal/automaton"
)

// writeDemo prints one automaton per combinator, built directly rather than
// from a pattern.
func writeDemo(w io.Writer) error {
	lit := func(r rune) *automaton.Automaton {
		a, err := automaton.Literal(r)
		if err != nil {
			panic(err)
		}
		return a
	}
	a, b, c := lit('a'), lit('b'), lit('c')

	samples := []struct {
		title string
		nfa   *automaton.Automaton
	}{
		{"0", lit('0')},
		{"a*", automaton.KleeneStar(a)},
		{"b+", automaton.KleenePlus(b)},
		{"c?", automaton.Optional(c)},
		{"a|b", automaton.Union(a, b)},
		{"ab", automaton.Concat(a, b)},
	}

	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", s.title, s.nfa); err != nil {
			return err
		}
	}
	return nil
}
