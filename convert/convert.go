// Package convert turns YACC productions into EBNF definitions.
//
// Productions are processed in dependency order (strongly-connected
// components, least-depended-upon first), so every reference to an
// already-converted trivial definition can be inlined. A definition is
// trivial iff it is non-recursive and its normalized body stays within the
// Options thresholds. Inlining substitutes the definition body by value at
// every reference, re-normalizes, and re-scans to a fixpoint; a YACC-derived
// trivial definition is dropped from the result once inlined at every
// reference. Supplementary definitions seed the lookup but are never dropped
// and never inlined into each other.
package convert

import (
	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/depgraph"
	"github.com/syndiag/yacc2ebnf/ebnf"
	"github.com/syndiag/yacc2ebnf/grammar"
)

// Triviality thresholds are empirical readability heuristics, not derived
// from a formal criterion.
const (
	// DefaultMaxInlineAlternatives bounds the alternative count of a trivial
	// alternation.
	DefaultMaxInlineAlternatives = 4

	// DefaultMaxInlineSequence bounds the element count of a trivial sequence
	// consisting of terminals and non-terminals only.
	DefaultMaxInlineSequence = 3
)

// Options control inline eligibility. The zero value means defaults.
type Options struct {
	MaxInlineAlternatives int
	MaxInlineSequence     int
}

func (o Options) withDefaults() Options {
	if o.MaxInlineAlternatives == 0 {
		o.MaxInlineAlternatives = DefaultMaxInlineAlternatives
	}
	if o.MaxInlineSequence == 0 {
		o.MaxInlineSequence = DefaultMaxInlineSequence
	}
	return o
}

type converter struct {
	opts     Options
	graph    *depgraph.Graph
	defs     map[string]ebnf.Expr // normalized bodies, inlining lookups
	trivial  map[string]bool
	inlined  map[string]bool // names substituted at least once
	retained map[string]bool // names with a reference left in an emitted body
}

// Convert converts every production of g to a normalized EBNF definition,
// in dependency order. supp definitions (already normalized) seed the
// inlining lookup. Returns nil and *yacc2ebnf.Error on error.
func Convert(g *grammar.Grammar, supp []ebnf.Definition, opts Options) ([]ebnf.Definition, error) {
	c := &converter{
		opts:     opts.withDefaults(),
		graph:    buildGraph(g, supp),
		defs:     make(map[string]ebnf.Expr),
		trivial:  make(map[string]bool),
		inlined:  make(map[string]bool),
		retained: make(map[string]bool),
	}

	for _, d := range supp {
		if _, defined := g.Production(d.Name); defined {
			return nil, y2e.FormatError(grammar.DuplicateNameError,
				"name %q defined by both the grammar and the supplementary definitions", d.Name)
		}

		c.defs[d.Name] = d.Expr
		c.trivial[d.Name] = c.isTrivial(d.Name, d.Expr)

		// supplementary bodies are emitted as-is, their references stay
		ebnf.Refs(d.Expr, func(ref string) {
			c.retained[ref] = true
		})
	}

	order := make([]string, 0, g.Len())
	for _, component := range c.graph.SCC() {
		for _, name := range component {
			p, isProduction := g.Production(name)
			if !isProduction {
				continue
			}

			expr, e := c.convert(p)
			if e != nil {
				return nil, e
			}

			c.defs[name] = expr
			c.trivial[name] = c.isTrivial(name, expr)
			order = append(order, name)
		}
	}

	// drop a trivial definition only when it was substituted at every
	// reference; one surviving reference keeps it in the output
	result := make([]ebnf.Definition, 0, len(order))
	for _, name := range order {
		if c.trivial[name] && c.inlined[name] && !c.retained[name] {
			continue
		}
		result = append(result, ebnf.Definition{Name: name, Expr: c.defs[name]})
	}
	return result, nil
}

// buildGraph links every definition to the non-terminals it references:
// YACC productions through their rule elements, supplementary definitions
// through their normalized bodies.
func buildGraph(g *grammar.Grammar, supp []ebnf.Definition) *depgraph.Graph {
	graph := depgraph.New()
	for _, name := range g.Names() {
		graph.Node(name)
		p, _ := g.Production(name)
		for _, r := range p.Rules {
			for _, el := range r {
				if el.Kind == grammar.NonTerminalElement {
					graph.AddEdge(name, el.Text)
				}
			}
		}
	}

	for _, d := range supp {
		graph.Node(d.Name)
		ebnf.Refs(d.Expr, func(ref string) {
			graph.AddEdge(d.Name, ref)
		})
	}
	return graph
}

// convert builds the definition body for one production: an alternation of
// sequences of atoms, normalized, with trivial references inlined until no
// substitution applies.
func (c *converter) convert(p grammar.Production) (ebnf.Expr, error) {
	variants := make([]ebnf.Expr, 0, len(p.Rules))
	for _, r := range p.Rules {
		items := make([]ebnf.Expr, 0, len(r))
		for _, el := range r {
			if el.Kind == grammar.TerminalElement {
				items = append(items, ebnf.Term{Text: el.Text})
			} else {
				items = append(items, ebnf.Ref{Name: el.Text})
			}
		}
		variants = append(variants, ebnf.Seq{Items: items})
	}

	expr, e := ebnf.Normalize(ebnf.Alt{Variants: variants})
	if e != nil {
		return nil, e
	}

	for {
		substituted, changed := c.substitute(expr, false)
		if !changed {
			return expr, nil
		}

		expr, e = ebnf.Normalize(substituted)
		if e != nil {
			return nil, e
		}
	}
}

func (c *converter) isTrivial(name string, expr ebnf.Expr) bool {
	return !c.graph.Recursive(name) && c.trivialShape(expr)
}

// trivialShape checks the body thresholds: an alternation of at most
// MaxInlineAlternatives atomic alternatives (a nested alternation is never
// trivial), a sequence of atomic-or-trivial elements with at most
// MaxInlineSequence elements when they are all atomic, a quantifier over an
// atomic expression, or an atom.
func (c *converter) trivialShape(e ebnf.Expr) bool {
	switch x := e.(type) {
	case ebnf.Ref, ebnf.Term:
		return true

	case ebnf.Seq:
		allAtomic := true
		for _, item := range x.Items {
			if ebnf.IsAtom(item) {
				continue
			}
			allAtomic = false
			if !c.trivialShape(item) {
				return false
			}
		}
		return !allAtomic || len(x.Items) <= c.opts.MaxInlineSequence

	case ebnf.Alt:
		if len(x.Variants) > c.opts.MaxInlineAlternatives {
			return false
		}
		for _, v := range x.Variants {
			if !ebnf.IsAtom(v) {
				return false
			}
		}
		return true

	case ebnf.Rep:
		return ebnf.IsAtom(x.Expr)
	}

	return false
}

// substitute replaces references to trivial definitions with a copy of their
// bodies. A quantified body is not substituted directly under a quantifier:
// that would fabricate an illegal double quantification out of well-formed
// input.
func (c *converter) substitute(e ebnf.Expr, underRep bool) (ebnf.Expr, bool) {
	switch x := e.(type) {
	case ebnf.Alt:
		variants, changed := c.substituteAll(x.Variants, false)
		return ebnf.Alt{Variants: variants}, changed

	case ebnf.Seq:
		items, changed := c.substituteAll(x.Items, false)
		return ebnf.Seq{Items: items}, changed

	case ebnf.Rep:
		inner, changed := c.substitute(x.Expr, true)
		return ebnf.Rep{Op: x.Op, Expr: inner}, changed

	case ebnf.Ref:
		if !c.trivial[x.Name] {
			return e, false
		}
		body := c.defs[x.Name]
		if underRep {
			if _, isRep := body.(ebnf.Rep); isRep {
				c.retained[x.Name] = true
				return e, false
			}
		}
		c.inlined[x.Name] = true
		return copyExpr(body), true
	}

	return e, false
}

func (c *converter) substituteAll(es []ebnf.Expr, underRep bool) ([]ebnf.Expr, bool) {
	result := make([]ebnf.Expr, len(es))
	changed := false
	for i, e := range es {
		sub, ch := c.substitute(e, underRep)
		result[i] = sub
		changed = changed || ch
	}
	return result, changed
}

// copyExpr clones a tree so an inlined body is substituted by value,
// never shared.
func copyExpr(e ebnf.Expr) ebnf.Expr {
	switch x := e.(type) {
	case ebnf.Alt:
		return ebnf.Alt{Variants: copyAll(x.Variants)}
	case ebnf.Seq:
		return ebnf.Seq{Items: copyAll(x.Items)}
	case ebnf.Rep:
		return ebnf.Rep{Op: x.Op, Expr: copyExpr(x.Expr)}
	}
	return e
}

func copyAll(es []ebnf.Expr) []ebnf.Expr {
	result := make([]ebnf.Expr, len(es))
	for i, e := range es {
		result[i] = copyExpr(e)
	}
	return result
}
