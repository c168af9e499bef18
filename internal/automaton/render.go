package automaton

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the automaton in a diagnostic text form: alphabet, states,
// start state, final states and one line per transition. Start endpoints are
// prefixed with '>' and final endpoints are wrapped in double parentheses.
func (a *Automaton) String() string {
	var b strings.Builder

	symbols := make([]string, 0)
	for _, r := range a.Alphabet() {
		symbols = append(symbols, string(r))
	}

	fmt.Fprintf(&b, "alphabet: %s\n", setOf(symbols))
	fmt.Fprintf(&b, "states: %s\n", setOf(itoaAll(a.States())))
	fmt.Fprintf(&b, "start state: %d\n", a.start)
	fmt.Fprintf(&b, "final states: %s\n", setOf(itoaAll(a.FinalStates())))
	b.WriteString("transitions:")

	for _, e := range a.Edges() {
		fmt.Fprintf(&b, "\n  %s -- %c --> %s", a.renderState(e.From), e.Label, a.renderState(e.To))
	}
	return b.String()
}

func (a *Automaton) renderState(state int) string {
	marker := " "
	if state == a.start {
		marker = ">"
	}
	if a.IsFinal(state) {
		return fmt.Sprintf("%s(( %d ))", marker, state)
	}
	return fmt.Sprintf("%s ( %d ) ", marker, state)
}

func setOf(items []string) string {
	if len(items) == 0 {
		return "{ }"
	}
	return "{ " + strings.Join(items, ", ") + " }"
}

func itoaAll(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}
