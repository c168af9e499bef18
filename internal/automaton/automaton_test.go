package automaton

import (
	"errors"
	"slices"
	"testing"
)

func mustLiteral(t *testing.T, r rune) *Automaton {
	t.Helper()
	a, err := Literal(r)
	if err != nil {
		t.Fatalf("Literal(%q) failed: %v", r, err)
	}
	return a
}

func TestIsSymbol(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'0', true},
		{'9', true},
		{'A', true},
		{'Z', true},
		{'a', true},
		{'z', true},
		{'/', false},
		{':', false},
		{'@', false},
		{'[', false},
		{'`', false},
		{'{', false},
		{'*', false},
		{Epsilon, false},
		{'é', false},
	}

	for _, tt := range tests {
		if got := IsSymbol(tt.r); got != tt.want {
			t.Errorf("IsSymbol(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	a := mustLiteral(t, 'a')

	if a.Start() != 1 {
		t.Errorf("Start() = %d, want 1", a.Start())
	}
	if got := a.States(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("States() = %v, want [1 2]", got)
	}
	if got := a.FinalStates(); !slices.Equal(got, []int{2}) {
		t.Errorf("FinalStates() = %v, want [2]", got)
	}
	if got := a.Edges(); !slices.Equal(got, []Edge{{1, 2, 'a'}}) {
		t.Errorf("Edges() = %v", got)
	}
}

func TestLiteralInvalidSymbol(t *testing.T) {
	for _, r := range []rune{'#', ' ', '.', '|', '(', Epsilon} {
		a, err := Literal(r)
		if a != nil {
			t.Errorf("Literal(%q) returned an automaton", r)
		}
		var symErr *InvalidSymbolError
		if !errors.As(err, &symErr) {
			t.Fatalf("Literal(%q) error = %v, want InvalidSymbolError", r, err)
		}
		if symErr.Symbol != r {
			t.Errorf("InvalidSymbolError.Symbol = %q, want %q", symErr.Symbol, r)
		}
	}
}

func TestAddTransitionMergesLabels(t *testing.T) {
	a := newAutomaton()
	a.setStartState(1)
	a.addFinalState(2)
	a.addTransition(1, 2, 'a')
	a.addTransition(1, 2, 'b', 'a')

	if got := a.Labels(1, 2); !slices.Equal(got, []rune{'a', 'b'}) {
		t.Errorf("Labels(1, 2) = %q, want [a b]", got)
	}
	if got := len(a.Edges()); got != 2 {
		t.Errorf("len(Edges()) = %d, want 2", got)
	}
}

func TestAlphabetExcludesEpsilon(t *testing.T) {
	a := Union(KleeneStar(mustLiteral(t, 'b')), mustLiteral(t, 'a'))

	if got := a.Alphabet(); !slices.Equal(got, []rune{'a', 'b'}) {
		t.Errorf("Alphabet() = %q, want [a b]", got)
	}
}

func TestReindex(t *testing.T) {
	a := Concat(mustLiteral(t, 'x'), mustLiteral(t, 'y'))
	r := Reindex(a, 10)

	if got := r.States(); !slices.Equal(got, []int{10, 11, 12, 13, 14, 15}) {
		t.Errorf("States() = %v", got)
	}
	if r.Start() != 10 {
		t.Errorf("Start() = %d, want 10", r.Start())
	}
	if got := r.FinalStates(); !slices.Equal(got, []int{15}) {
		t.Errorf("FinalStates() = %v, want [15]", got)
	}
	if got := len(r.Edges()); got != len(a.Edges()) {
		t.Errorf("edge count = %d, want %d", got, len(a.Edges()))
	}
	for _, e := range a.Edges() {
		if got := r.Labels(e.From+9, e.To+9); !slices.Contains(got, e.Label) {
			t.Errorf("edge %v missing after reindex", e)
		}
	}
}

func TestCombinatorStructure(t *testing.T) {
	a := mustLiteral(t, 'a')
	b := mustLiteral(t, 'b')
	eps := Epsilon

	tests := []struct {
		name  string
		got   *Automaton
		final int
		edges []Edge
	}{
		{
			name:  "concat",
			got:   Concat(a, b),
			final: 6,
			edges: []Edge{{1, 2, eps}, {2, 3, 'a'}, {3, 4, eps}, {4, 5, 'b'}, {5, 6, eps}},
		},
		{
			name:  "union",
			got:   Union(a, b),
			final: 6,
			edges: []Edge{{1, 2, eps}, {1, 4, eps}, {2, 3, 'a'}, {3, 6, eps}, {4, 5, 'b'}, {5, 6, eps}},
		},
		{
			name:  "star",
			got:   KleeneStar(a),
			final: 4,
			edges: []Edge{{1, 2, eps}, {1, 4, eps}, {2, 3, 'a'}, {3, 1, eps}, {3, 4, eps}},
		},
		{
			name:  "plus",
			got:   KleenePlus(a),
			final: 4,
			edges: []Edge{{1, 2, eps}, {2, 3, 'a'}, {3, 1, eps}, {3, 4, eps}},
		},
		{
			name:  "optional",
			got:   Optional(a),
			final: 4,
			edges: []Edge{{1, 2, eps}, {1, 4, eps}, {2, 3, 'a'}, {3, 4, eps}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Start() != 1 {
				t.Errorf("Start() = %d, want 1", tt.got.Start())
			}
			if got := tt.got.FinalStates(); !slices.Equal(got, []int{tt.final}) {
				t.Errorf("FinalStates() = %v, want [%d]", got, tt.final)
			}
			if got := tt.got.Edges(); !slices.Equal(got, tt.edges) {
				t.Errorf("Edges() = %v, want %v", got, tt.edges)
			}
			if tt.got.MaxState() != tt.final {
				t.Errorf("MaxState() = %d, want %d", tt.got.MaxState(), tt.final)
			}
		})
	}
}

func TestCombinatorsDoNotMutateInputs(t *testing.T) {
	a := Concat(mustLiteral(t, 'a'), mustLiteral(t, 'b'))
	b := KleeneStar(mustLiteral(t, 'c'))
	before := a.String() + "\n" + b.String()

	_ = Concat(a, b)
	_ = Union(a, b)
	_ = KleeneStar(a)
	_ = KleenePlus(b)
	_ = Optional(a)
	_ = Concat(a, a)

	if after := a.String() + "\n" + b.String(); after != before {
		t.Errorf("inputs changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// Operand ranges of a binary combinator must not overlap each other or the
// two states the combinator allocates.
func TestReindexedOperandsAreDisjoint(t *testing.T) {
	a := Union(mustLiteral(t, 'a'), KleenePlus(mustLiteral(t, 'b')))
	b := Optional(Concat(mustLiteral(t, 'c'), mustLiteral(t, 'd')))

	left := Reindex(a, firstInnerState)
	right := Reindex(b, firstInnerState+left.NumStates())
	end := firstInnerState + left.NumStates() + right.NumStates()

	seen := map[int]string{outerStart: "start", end: "end"}
	for name, part := range map[string]*Automaton{"left": left, "right": right} {
		for _, s := range part.States() {
			if owner, ok := seen[s]; ok {
				t.Fatalf("state %d of %s collides with %s", s, name, owner)
			}
			seen[s] = name
		}
	}

	combined := Concat(a, b)
	if got, want := combined.NumStates(), a.NumStates()+b.NumStates()+2; got != want {
		t.Errorf("NumStates() = %d, want %d", got, want)
	}
	if combined.MaxState() != end {
		t.Errorf("MaxState() = %d, want %d", combined.MaxState(), end)
	}
}

func TestSelfCombination(t *testing.T) {
	a := mustLiteral(t, 'a')
	u := Union(a, a)

	if got := u.NumStates(); got != 6 {
		t.Errorf("NumStates() = %d, want 6", got)
	}
	if got := len(u.FinalStates()); got != 1 {
		t.Errorf("len(FinalStates()) = %d, want 1", got)
	}
}

func TestTransitionsIsACopy(t *testing.T) {
	a := mustLiteral(t, 'a')
	trans := a.Transitions()
	trans[1][2][0] = 'z'
	delete(trans, 1)

	if got := a.Labels(1, 2); !slices.Equal(got, []rune{'a'}) {
		t.Errorf("Labels(1, 2) = %q after mutating the copy", got)
	}
}
