package compiler

import "github.com/KromDaniel/automat/internal/automaton"

// Operator characters of the pattern grammar.
const (
	opConcat   = '.'
	opUnion    = '|'
	opStar     = '*'
	opPlus     = '+'
	opOptional = '?'
	parenOpen  = '('
	parenClose = ')'
)

// tokenClass groups pattern characters by the role they play in parsing.
type tokenClass int

const (
	classStart tokenClass = iota // nothing consumed yet
	classSymbol
	classOpen
	classClose
	classUnary
	classBinary
	classEnd   // end of pattern
	classOther // not part of the grammar
)

var classNames = [...]string{
	classStart:  "start",
	classSymbol: "symbol",
	classOpen:   "open parenthesis",
	classClose:  "close parenthesis",
	classUnary:  "unary operator",
	classBinary: "binary operator",
	classEnd:    "end",
	classOther:  "other",
}

func (c tokenClass) String() string {
	return classNames[c]
}

func classify(r rune) tokenClass {
	switch {
	case automaton.IsSymbol(r):
		return classSymbol
	case r == parenOpen:
		return classOpen
	case r == parenClose:
		return classClose
	case r == opStar, r == opPlus, r == opOptional:
		return classUnary
	case r == opConcat, r == opUnion:
		return classBinary
	}
	return classOther
}

// action is what the parser does with a token given the class of the token
// consumed before it.
type action int

const (
	accept       action = iota
	acceptConcat        // insert an implicit concatenation first
	reject
)

type rule struct {
	action action
	reason string
}

// Rejection reasons reported in SyntaxError.
const (
	reasonNotAllowed       = "symbol not allowed"
	reasonUnbalanced       = "unbalanced parentheses"
	reasonEmptyPattern     = "empty pattern"
	reasonEmptyGroup       = "empty group"
	reasonUnaryNoOperand   = "unary operator without an operand"
	reasonUnaryAfterOp     = "unary operator cannot follow another operator"
	reasonBinaryNoOperand  = "binary operator without a left operand"
	reasonBinaryAfterOp    = "binary operator cannot follow another operator"
	reasonDanglingOperator = "dangling operator"
)

var (
	allow       = rule{action: accept}
	allowConcat = rule{action: acceptConcat}
)

func deny(reason string) rule {
	return rule{action: reject, reason: reason}
}

// rules is indexed by [previous class][incoming class]. Only classes up to
// classEnd appear as incoming; classOther is rejected before lookup.
var rules = [classEnd][classEnd + 1]rule{
	classStart: {
		classSymbol: allow,
		classOpen:   allow,
		classClose:  deny(reasonUnbalanced),
		classUnary:  deny(reasonUnaryNoOperand),
		classBinary: deny(reasonBinaryNoOperand),
		classEnd:    deny(reasonEmptyPattern),
	},
	classSymbol: {
		classSymbol: allowConcat,
		classOpen:   allowConcat,
		classClose:  allow,
		classUnary:  allow,
		classBinary: allow,
		classEnd:    allow,
	},
	classOpen: {
		classSymbol: allow,
		classOpen:   allow,
		classClose:  deny(reasonEmptyGroup),
		classUnary:  deny(reasonUnaryNoOperand),
		classBinary: deny(reasonBinaryNoOperand),
		classEnd:    deny(reasonUnbalanced),
	},
	classClose: {
		classSymbol: allowConcat,
		classOpen:   allowConcat,
		classClose:  allow,
		classUnary:  allow,
		classBinary: allow,
		classEnd:    allow,
	},
	classUnary: {
		classSymbol: allowConcat,
		classOpen:   allowConcat,
		classClose:  allow,
		classUnary:  deny(reasonUnaryAfterOp),
		classBinary: allow,
		classEnd:    allow,
	},
	classBinary: {
		classSymbol: allow,
		classOpen:   allow,
		classClose:  deny(reasonDanglingOperator),
		classUnary:  deny(reasonUnaryAfterOp),
		classBinary: deny(reasonBinaryAfterOp),
		classEnd:    deny(reasonDanglingOperator),
	},
}

func lookup(prev, next tokenClass) rule {
	return rules[prev][next]
}

