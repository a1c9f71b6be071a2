// Package grammar defines the YACC grammar model.
package grammar

import (
	y2e "github.com/syndiag/yacc2ebnf"
)

// Error codes used by grammar:
const (
	// DuplicateNameError indicates that a name binds more than one production.
	DuplicateNameError = y2e.GrammarErrors + iota

	// EmptyAlternativesError indicates that a production has more than one empty alternative.
	EmptyAlternativesError
)

// Element kinds (closed set):
const (
	// TerminalElement is a literal symbol; its text is kept verbatim, quotes included.
	TerminalElement = iota

	// NonTerminalElement is a reference to a named production.
	NonTerminalElement
)

// Element is a single symbol of a rule.
type Element struct {
	Kind int
	Text string
}

// Terminal creates a literal element.
func Terminal(text string) Element {
	return Element{TerminalElement, text}
}

// NonTerminal creates a named reference element.
func NonTerminal(name string) Element {
	return Element{NonTerminalElement, name}
}

// Rule is an ordered, possibly empty sequence of elements.
type Rule []Element

// Production binds a name to an ordered list of alternative rules.
type Production struct {
	Name  string
	Rules []Rule
}

// EmptyRuleCount returns the number of empty alternatives.
func (p Production) EmptyRuleCount() int {
	cnt := 0
	for _, r := range p.Rules {
		if len(r) == 0 {
			cnt++
		}
	}
	return cnt
}

// Grammar maps unique names to productions, keeping insertion order.
// Invariants are checked before each insertion, never after the fact.
type Grammar struct {
	names []string
	prods map[string]Production
}

// New creates an empty Grammar.
func New() *Grammar {
	return &Grammar{prods: make(map[string]Production)}
}

// Add inserts a production. pos is used for error reporting and may be nil.
func (g *Grammar) Add(p Production, pos y2e.SourcePos) error {
	_, has := g.prods[p.Name]
	if has {
		return formatError(pos, DuplicateNameError, "production %q already defined", p.Name)
	}

	empties := p.EmptyRuleCount()
	if empties > 1 {
		return formatError(pos, EmptyAlternativesError,
			"production %q has %d empty alternatives", p.Name, empties)
	}

	g.names = append(g.names, p.Name)
	g.prods[p.Name] = p
	return nil
}

// Production returns the production bound to name.
func (g *Grammar) Production(name string) (Production, bool) {
	p, has := g.prods[name]
	return p, has
}

// Names returns production names in insertion order.
func (g *Grammar) Names() []string {
	return g.names
}

func (g *Grammar) Len() int {
	return len(g.names)
}

func formatError(pos y2e.SourcePos, code int, msg string, params ...any) *y2e.Error {
	if pos == nil {
		return y2e.FormatError(code, msg, params...)
	}
	return y2e.FormatErrorPos(pos, code, msg, params...)
}
