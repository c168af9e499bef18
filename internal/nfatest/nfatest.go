// Package nfatest simulates automata against input strings. It exists so
// tests can check the language of a constructed automaton without relying on
// any matching logic inside the automaton package itself.
package nfatest

import (
	"testing"

	"github.com/bits-and-blooms/bitset"

	"github.com/KromDaniel/automat/internal/automaton"
)

// Accepts reports whether a accepts input. The simulation tracks the set of
// active states, taking the epsilon closure after every step.
func Accepts(a *automaton.Automaton, input string) bool {
	size := uint(a.MaxState() + 1)
	trans := a.Transitions()

	current := bitset.New(size)
	current.Set(uint(a.Start()))
	closure(trans, current)

	for _, r := range input {
		next := bitset.New(size)
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			for to, labels := range trans[int(s)] {
				for _, l := range labels {
					if l == r {
						next.Set(uint(to))
					}
				}
			}
		}
		closure(trans, next)
		if next.None() {
			return false
		}
		current = next
	}

	for _, f := range a.FinalStates() {
		if current.Test(uint(f)) {
			return true
		}
	}
	return false
}

// closure extends set in place with every state reachable through epsilon
// transitions.
func closure(trans map[int]map[int][]rune, set *bitset.BitSet) {
	var stack []int
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		stack = append(stack, int(s))
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for to, labels := range trans[s] {
			for _, l := range labels {
				if l == automaton.Epsilon && !set.Test(uint(to)) {
					set.Set(uint(to))
					stack = append(stack, to)
				}
			}
		}
	}
}

// AssertAccepts fails t for every input a rejects.
func AssertAccepts(t testing.TB, a *automaton.Automaton, inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		if !Accepts(a, in) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
}

// AssertRejects fails t for every input a accepts.
func AssertRejects(t testing.TB, a *automaton.Automaton, inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		if Accepts(a, in) {
			t.Errorf("expected %q to be rejected", in)
		}
	}
}
