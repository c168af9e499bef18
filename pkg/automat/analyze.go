package automat

// Analysis summarizes the shape of a compiled automaton.
type Analysis struct {
	Pattern            string
	States             int
	Transitions        int // labeled edges, counting each label separately
	EpsilonTransitions int
	Alphabet           string
	FinalStates        []int
}

// Analyze compiles pattern and reports the size of its automaton.
//
// Example:
//
//	result, err := automat.Analyze("10+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.States)   // 8
//	fmt.Println(result.Alphabet) // "01"
func Analyze(pattern string) (*Analysis, error) {
	a, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return Summarize(pattern, a), nil
}

// Summarize reports the size of an already compiled automaton.
func Summarize(pattern string, a *Automaton) *Analysis {
	result := &Analysis{
		Pattern:     pattern,
		States:      a.NumStates(),
		Alphabet:    string(a.Alphabet()),
		FinalStates: a.FinalStates(),
	}
	for _, e := range a.Edges() {
		result.Transitions++
		if e.Label == Epsilon {
			result.EpsilonTransitions++
		}
	}
	return result
}
