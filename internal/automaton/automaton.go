// Package automaton implements epsilon-NFAs and the Thompson combinators
// used to assemble them from smaller automata.
package automaton

import (
	"maps"
	"slices"
)

// Epsilon is the reserved label of transitions that consume no input.
const Epsilon rune = 'ε'

// noState marks an automaton whose start state has not been assigned yet.
const noState = 0

// Automaton is a nondeterministic finite automaton with epsilon transitions.
//
// States are positive integers. Parallel edges between the same pair of
// states collapse into a single label set. An Automaton returned by this
// package is never modified afterwards, so it can be shared freely.
type Automaton struct {
	states      map[int]struct{}
	start       int
	finals      map[int]struct{}
	transitions map[int]map[int]map[rune]struct{}
}

// Edge is a single labeled transition.
type Edge struct {
	From  int
	To    int
	Label rune
}

func newAutomaton() *Automaton {
	return &Automaton{
		states:      make(map[int]struct{}),
		start:       noState,
		finals:      make(map[int]struct{}),
		transitions: make(map[int]map[int]map[rune]struct{}),
	}
}

func (a *Automaton) setStartState(state int) {
	a.start = state
	a.states[state] = struct{}{}
}

func (a *Automaton) addFinalState(state int) {
	a.finals[state] = struct{}{}
	a.states[state] = struct{}{}
}

// addTransition merges labels into the label set of from -> to.
func (a *Automaton) addTransition(from, to int, labels ...rune) {
	a.states[from] = struct{}{}
	a.states[to] = struct{}{}

	targets, ok := a.transitions[from]
	if !ok {
		targets = make(map[int]map[rune]struct{})
		a.transitions[from] = targets
	}
	set, ok := targets[to]
	if !ok {
		set = make(map[rune]struct{}, len(labels))
		targets[to] = set
	}
	for _, l := range labels {
		set[l] = struct{}{}
	}
}

// copyTransitions adds every transition of src to a. State ids are taken
// as-is, so src must already live in a's numbering.
func (a *Automaton) copyTransitions(src *Automaton) {
	for from, targets := range src.transitions {
		for to, labels := range targets {
			a.addTransition(from, to, slices.Collect(maps.Keys(labels))...)
		}
	}
}

// Start returns the start state.
func (a *Automaton) Start() int {
	return a.start
}

// States returns all state ids in ascending order.
func (a *Automaton) States() []int {
	return slices.Sorted(maps.Keys(a.states))
}

// NumStates returns the number of states.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// MaxState returns the largest state id, or 0 for an empty automaton.
func (a *Automaton) MaxState() int {
	highest := 0
	for s := range a.states {
		if s > highest {
			highest = s
		}
	}
	return highest
}

// FinalStates returns the accepting states in ascending order.
func (a *Automaton) FinalStates() []int {
	return slices.Sorted(maps.Keys(a.finals))
}

// IsFinal reports whether state is accepting.
func (a *Automaton) IsFinal(state int) bool {
	_, ok := a.finals[state]
	return ok
}

// Labels returns the sorted labels on the transition from -> to.
func (a *Automaton) Labels(from, to int) []rune {
	return slices.Sorted(maps.Keys(a.transitions[from][to]))
}

// Transitions returns a copy of the transition mapping:
// source -> destination -> sorted labels.
func (a *Automaton) Transitions() map[int]map[int][]rune {
	out := make(map[int]map[int][]rune, len(a.transitions))
	for from, targets := range a.transitions {
		row := make(map[int][]rune, len(targets))
		for to, labels := range targets {
			row[to] = slices.Sorted(maps.Keys(labels))
		}
		out[from] = row
	}
	return out
}

// Edges returns every transition ordered by source, destination and label.
func (a *Automaton) Edges() []Edge {
	var edges []Edge
	for _, from := range a.sortedSources() {
		for _, to := range a.sortedTargets(from) {
			for _, l := range a.Labels(from, to) {
				edges = append(edges, Edge{From: from, To: to, Label: l})
			}
		}
	}
	return edges
}

func (a *Automaton) sortedSources() []int {
	return slices.Sorted(maps.Keys(a.transitions))
}

func (a *Automaton) sortedTargets(from int) []int {
	return slices.Sorted(maps.Keys(a.transitions[from]))
}

// Alphabet returns the sorted set of input symbols used by the automaton.
// Epsilon is never part of the alphabet.
func (a *Automaton) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, targets := range a.transitions {
		for _, labels := range targets {
			for l := range labels {
				if l != Epsilon {
					seen[l] = struct{}{}
				}
			}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
