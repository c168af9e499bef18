package automaton

import "fmt"

// IsSymbol reports whether r may label a literal transition.
// The alphabet is the ASCII digits and letters.
func IsSymbol(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return false
}

// InvalidSymbolError is returned when a literal is built from a rune
// outside the symbol alphabet.
type InvalidSymbolError struct {
	Symbol rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q: only letters and digits may be used as literals", e.Symbol)
}
