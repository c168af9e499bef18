// Package compiler turns a regular expression into a Thompson NFA.
//
// The pattern is scanned once, left to right, with two stacks: one of
// automata built so far and one of pending binary operators and open
// parentheses. Postfix operators are applied as soon as they are read;
// binary operators wait on the stack until an operator of lower or equal
// precedence arrives. Concatenation binds tighter than union and both are
// left-associative. Adjacent operands are joined by an implicit
// concatenation.
package compiler

import (
	"fmt"
	"io"

	"github.com/KromDaniel/automat/internal/automaton"
)

// Config holds compiler settings.
type Config struct {
	Verbose bool      // Trace token handling and operator application
	Output  io.Writer // Trace destination, stderr when nil
}

// Compiler builds automata from patterns. A Compiler keeps no state between
// calls; each Compile works on its own stacks.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose, config.Output),
	}
}

// Compile builds the automaton of pattern with a non-verbose compiler.
func Compile(pattern string) (*automaton.Automaton, error) {
	return New(Config{}).Compile(pattern)
}

// Compile builds the automaton of pattern. The pattern may contain letters,
// digits, the operators . | * + ? and parentheses; anything else, including
// whitespace, is a SyntaxError.
func (c *Compiler) Compile(pattern string) (*automaton.Automaton, error) {
	c.logger.Section("Parse")
	c.logger.Log("Pattern: %s", pattern)

	p := &parser{logger: c.logger, prev: classStart}
	for pos, r := range pattern {
		if err := p.consume(pos, r); err != nil {
			return nil, err
		}
	}

	result, err := p.finish(len(pattern))
	if err != nil {
		return nil, err
	}

	c.logger.Section("Result")
	c.logger.Log("States: %d, final: %v, alphabet: %q", result.NumStates(), result.FinalStates(), string(result.Alphabet()))
	return result, nil
}

// pending is an entry of the operator stack.
type pending struct {
	op  rune
	pos int
}

type parser struct {
	logger    *Logger
	operands  []*automaton.Automaton
	operators []pending
	prev      tokenClass
}

func (p *parser) consume(pos int, r rune) error {
	class := classify(r)
	if class == classOther {
		return &SyntaxError{Pos: pos, Char: r, Reason: reasonNotAllowed}
	}

	decision := lookup(p.prev, class)
	switch decision.action {
	case reject:
		return &SyntaxError{Pos: pos, Char: r, Reason: decision.reason}
	case acceptConcat:
		p.logger.Log("%d %q: implicit concatenation", pos, r)
		if err := p.pushBinary(pos, opConcat); err != nil {
			return err
		}
	}

	var err error
	switch class {
	case classSymbol:
		err = p.pushLiteral(r)
	case classOpen:
		p.operators = append(p.operators, pending{op: parenOpen, pos: pos})
	case classClose:
		err = p.closeGroup(pos, r)
	case classUnary:
		err = p.apply(r)
	case classBinary:
		err = p.pushBinary(pos, r)
	}
	if err != nil {
		return err
	}

	p.logger.Log("%d %q: %s", pos, r, class)
	p.logger.stacks(len(p.operands), p.operators)
	p.prev = class
	return nil
}

func (p *parser) pushLiteral(r rune) error {
	lit, err := automaton.Literal(r)
	if err != nil {
		return err
	}
	p.operands = append(p.operands, lit)
	return nil
}

// pushBinary reduces every pending operator of higher or equal precedence
// than op, then pushes op.
func (p *parser) pushBinary(pos int, op rune) error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top.op == parenOpen || (top.op != opConcat && top.op != op) {
			break
		}
		p.operators = p.operators[:len(p.operators)-1]
		if err := p.apply(top.op); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, pending{op: op, pos: pos})
	return nil
}

// closeGroup reduces operators down to the matching open parenthesis.
func (p *parser) closeGroup(pos int, r rune) error {
	for {
		if len(p.operators) == 0 {
			return &SyntaxError{Pos: pos, Char: r, Reason: reasonUnbalanced}
		}
		top := p.operators[len(p.operators)-1]
		p.operators = p.operators[:len(p.operators)-1]
		if top.op == parenOpen {
			return nil
		}
		if err := p.apply(top.op); err != nil {
			return err
		}
	}
}

// finish drains the operator stack and returns the single remaining operand.
func (p *parser) finish(end int) (*automaton.Automaton, error) {
	if decision := lookup(p.prev, classEnd); decision.action == reject {
		return nil, &SyntaxError{Pos: end, Reason: decision.reason}
	}

	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		p.operators = p.operators[:len(p.operators)-1]
		if top.op == parenOpen {
			return nil, &SyntaxError{Pos: top.pos, Char: top.op, Reason: reasonUnbalanced}
		}
		if err := p.apply(top.op); err != nil {
			return nil, err
		}
	}

	if len(p.operands) != 1 {
		return nil, fmt.Errorf("%w: %d automata left after the last operator", ErrAmbiguousParse, len(p.operands))
	}
	return p.operands[0], nil
}

// apply pops the operands of op, combines them and pushes the result.
func (p *parser) apply(op rune) error {
	switch op {
	case opConcat, opUnion:
		if len(p.operands) < 2 {
			return &OperatorError{Op: op, Need: 2, Have: len(p.operands)}
		}
		n := len(p.operands)
		left, right := p.operands[n-2], p.operands[n-1]
		p.operands = p.operands[:n-2]

		var combined *automaton.Automaton
		if op == opConcat {
			combined = automaton.Concat(left, right)
		} else {
			combined = automaton.Union(left, right)
		}
		p.operands = append(p.operands, combined)

	case opStar, opPlus, opOptional:
		if len(p.operands) < 1 {
			return &OperatorError{Op: op, Need: 1, Have: 0}
		}
		n := len(p.operands)
		operand := p.operands[n-1]

		switch op {
		case opStar:
			p.operands[n-1] = automaton.KleeneStar(operand)
		case opPlus:
			p.operands[n-1] = automaton.KleenePlus(operand)
		default:
			p.operands[n-1] = automaton.Optional(operand)
		}

	default:
		return fmt.Errorf("unknown operator %q", op)
	}

	p.logger.Log("  apply %q -> %d states", op, p.operands[len(p.operands)-1].NumStates())
	return nil
}
