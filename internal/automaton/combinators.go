package automaton

import (
	"maps"
	"slices"
)

// Every combined automaton starts at state 1; operands are renumbered
// from 2 upwards, and the new final state follows the last operand state.
const (
	outerStart      = 1
	firstInnerState = 2
)

// Literal returns the two-state automaton accepting exactly the string
// made of symbol.
func Literal(symbol rune) (*Automaton, error) {
	if !IsSymbol(symbol) {
		return nil, &InvalidSymbolError{Symbol: symbol}
	}

	a := newAutomaton()
	a.setStartState(1)
	a.addFinalState(2)
	a.addTransition(1, 2, symbol)
	return a, nil
}

// Reindex returns a copy of a whose states are renumbered densely from
// start, in ascending order of the original ids. Start and final
// designations and all labels are preserved.
func Reindex(a *Automaton, start int) *Automaton {
	mapping := make(map[int]int, len(a.states))
	next := start
	for _, s := range slices.Sorted(maps.Keys(a.states)) {
		mapping[s] = next
		next++
	}

	out := newAutomaton()
	out.setStartState(mapping[a.start])
	for s := range a.finals {
		out.addFinalState(mapping[s])
	}
	for from, targets := range a.transitions {
		for to, labels := range targets {
			out.addTransition(mapping[from], mapping[to], slices.Collect(maps.Keys(labels))...)
		}
	}
	return out
}

// Concat returns an automaton accepting L(a)·L(b).
func Concat(a, b *Automaton) *Automaton {
	left := Reindex(a, firstInnerState)
	right := Reindex(b, firstInnerState+left.NumStates())
	end := firstInnerState + left.NumStates() + right.NumStates()

	out := newAutomaton()
	out.setStartState(outerStart)
	out.addFinalState(end)

	out.addTransition(outerStart, left.start, Epsilon)
	for f := range left.finals {
		out.addTransition(f, right.start, Epsilon)
	}
	for f := range right.finals {
		out.addTransition(f, end, Epsilon)
	}

	out.copyTransitions(left)
	out.copyTransitions(right)
	return out
}

// Union returns an automaton accepting L(a) ∪ L(b).
func Union(a, b *Automaton) *Automaton {
	left := Reindex(a, firstInnerState)
	right := Reindex(b, firstInnerState+left.NumStates())
	end := firstInnerState + left.NumStates() + right.NumStates()

	out := newAutomaton()
	out.setStartState(outerStart)
	out.addFinalState(end)

	out.addTransition(outerStart, left.start, Epsilon)
	out.addTransition(outerStart, right.start, Epsilon)
	for f := range left.finals {
		out.addTransition(f, end, Epsilon)
	}
	for f := range right.finals {
		out.addTransition(f, end, Epsilon)
	}

	out.copyTransitions(left)
	out.copyTransitions(right)
	return out
}

// repetition describes the epsilon edges a unary combinator adds around
// its single operand.
type repetition struct {
	skip bool // start -> end, accepts the empty string
	loop bool // operand final -> start, allows repeating
}

var (
	star     = repetition{skip: true, loop: true}
	plus     = repetition{skip: false, loop: true}
	optional = repetition{skip: true, loop: false}
)

func (r repetition) wrap(a *Automaton) *Automaton {
	inner := Reindex(a, firstInnerState)
	end := firstInnerState + inner.NumStates()

	out := newAutomaton()
	out.setStartState(outerStart)
	out.addFinalState(end)

	out.addTransition(outerStart, inner.start, Epsilon)
	if r.skip {
		out.addTransition(outerStart, end, Epsilon)
	}
	for f := range inner.finals {
		if r.loop {
			out.addTransition(f, outerStart, Epsilon)
		}
		out.addTransition(f, end, Epsilon)
	}

	out.copyTransitions(inner)
	return out
}

// KleeneStar returns an automaton accepting zero or more repetitions of L(a).
func KleeneStar(a *Automaton) *Automaton {
	return star.wrap(a)
}

// KleenePlus returns an automaton accepting one or more repetitions of L(a).
func KleenePlus(a *Automaton) *Automaton {
	return plus.wrap(a)
}

// Optional returns an automaton accepting L(a) ∪ {ε}.
func Optional(a *Automaton) *Automaton {
	return optional.wrap(a)
}
