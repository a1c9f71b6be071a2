// Package ebnf defines the EBNF expression model, its normalization,
// and its text rendering.
//
// An expression is one of five closed variants: Alt, Seq, Rep, Ref, and Term.
// The empty Seq is the canonical "nothing". A Rep never wraps another Rep;
// trees violating this are rejected by Normalize, never silently fixed.
// All values are immutable; every transformation builds a new tree.
package ebnf

// RepOp is the quantifier of a Rep node.
type RepOp int

const (
	ZeroOrOne RepOp = iota
	ZeroOrMany
	OneOrMany
)

func (op RepOp) String() string {
	switch op {
	case ZeroOrOne:
		return "?"
	case ZeroOrMany:
		return "*"
	default:
		return "+"
	}
}

// Display precedence values, used only for parenthesization on output.
const (
	precAlt = iota
	precSeq
	precRep
	precAtom
)

// Expr is an EBNF expression node. The variant set is closed; consumers
// match exhaustively on Alt, Seq, Rep, Ref, and Term.
type Expr interface {
	prec() int
}

// Alt is an ordered list of alternatives.
type Alt struct {
	Variants []Expr
}

// Seq is an ordered, possibly empty list of expressions.
// Seq{} is the canonical empty expression.
type Seq struct {
	Items []Expr
}

// Rep is a quantified expression. Its child is never itself a Rep.
type Rep struct {
	Op   RepOp
	Expr Expr
}

// Ref is a reference to a named definition.
type Ref struct {
	Name string
}

// Term is opaque terminal text, kept verbatim (quotes and brackets included).
type Term struct {
	Text string
}

func (Alt) prec() int  { return precAlt }
func (Seq) prec() int  { return precSeq }
func (Rep) prec() int  { return precRep }
func (Ref) prec() int  { return precAtom }
func (Term) prec() int { return precAtom }

// IsEmpty reports whether e is the canonical empty Seq.
func IsEmpty(e Expr) bool {
	s, isSeq := e.(Seq)
	return isSeq && len(s.Items) == 0
}

// IsAtom reports whether e is a Ref or a Term.
func IsAtom(e Expr) bool {
	switch e.(type) {
	case Ref, Term:
		return true
	}
	return false
}

// Equal reports structural equality of two expressions.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Alt:
		y, ok := b.(Alt)
		return ok && equalSlices(x.Variants, y.Variants)
	case Seq:
		y, ok := b.(Seq)
		return ok && equalSlices(x.Items, y.Items)
	case Rep:
		y, ok := b.(Rep)
		return ok && x.Op == y.Op && Equal(x.Expr, y.Expr)
	case Ref:
		y, ok := b.(Ref)
		return ok && x.Name == y.Name
	case Term:
		y, ok := b.(Term)
		return ok && x.Text == y.Text
	}
	return false
}

func equalSlices(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(x, ys[i]) {
			return false
		}
	}
	return true
}

// Refs calls visit for every non-terminal reference inside e, in order.
func Refs(e Expr, visit func(name string)) {
	switch x := e.(type) {
	case Alt:
		for _, v := range x.Variants {
			Refs(v, visit)
		}
	case Seq:
		for _, v := range x.Items {
			Refs(v, visit)
		}
	case Rep:
		Refs(x.Expr, visit)
	case Ref:
		visit(x.Name)
	case Term:
	}
}

// Definition binds a name to exactly one expression.
type Definition struct {
	Name string
	Expr Expr
}
