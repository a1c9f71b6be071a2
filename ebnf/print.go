package ebnf

import (
	"io"
	"strings"
)

// String renders e using display precedence: a child is parenthesized iff
// its precedence is lower than its parent context requires. Alternatives are
// joined by "|", sequence items by a single space, a Rep appends its
// quantifier to the (possibly parenthesized) inner text.
func String(e Expr) string {
	var sb strings.Builder
	render(&sb, e, precAlt)
	return sb.String()
}

func render(sb *strings.Builder, e Expr, min int) {
	if e.prec() < min {
		sb.WriteByte('(')
		render(sb, e, precAlt)
		sb.WriteByte(')')
		return
	}

	switch x := e.(type) {
	case Alt:
		for i, v := range x.Variants {
			if i > 0 {
				sb.WriteByte('|')
			}
			render(sb, v, precSeq)
		}
	case Seq:
		for i, v := range x.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			render(sb, v, precRep)
		}
	case Rep:
		render(sb, x.Expr, precAtom)
		sb.WriteString(x.Op.String())
	case Ref:
		sb.WriteString(x.Name)
	case Term:
		sb.WriteString(x.Text)
	}
}

// String renders the definition as a single "name ::= expression" line.
// An empty body renders as "name ::=" with no trailing whitespace.
func (d Definition) String() string {
	if IsEmpty(d.Expr) {
		return d.Name + " ::="
	}
	return d.Name + " ::= " + String(d.Expr)
}

// WriteDefinitions writes one line per definition.
func WriteDefinitions(w io.Writer, defs []Definition) error {
	for _, d := range defs {
		_, e := io.WriteString(w, d.String()+"\n")
		if e != nil {
			return e
		}
	}
	return nil
}
