package compiler

import (
	"errors"
	"fmt"
)

// ErrAmbiguousParse is returned when the operand stack does not reduce to a
// single automaton after the whole pattern has been consumed.
var ErrAmbiguousParse = errors.New("ambiguous parse")

// SyntaxError reports a character in a position the grammar does not allow.
// Pos is the byte offset of Char in the pattern; at end of input Pos equals
// the pattern length and Char is 0.
type SyntaxError struct {
	Pos    int
	Char   rune
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("syntax error at end of pattern: %s", e.Reason)
	}
	return fmt.Sprintf("syntax error at position %d (%q): %s", e.Pos, e.Char, e.Reason)
}

// OperatorError reports an operator applied with fewer operands than it
// takes.
type OperatorError struct {
	Op   rune
	Need int
	Have int
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("operator %q needs %d operand(s), have %d", e.Op, e.Need, e.Have)
}
