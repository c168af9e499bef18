// Package codegen renders automata as Go source.
package codegen

// Identifiers used in generated code
const (
	TypeName         = "NFA"
	EpsilonName      = "Epsilon"
	PatternField     = "Pattern"
	StatesField      = "States"
	StartField       = "Start"
	FinalField       = "Final"
	AlphabetField    = "Alphabet"
	TransitionsField = "Transitions"
	DefaultPackage   = "nfa"
)

// VarName returns the exported variable name for an automaton called name.
func VarName(name string) string {
	return UpperFirst(name)
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
