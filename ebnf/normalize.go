package ebnf

import (
	y2e "github.com/syndiag/yacc2ebnf"
)

// Error codes used by ebnf:
const (
	// DoubleQuantifierError indicates a Rep directly wrapping another Rep.
	// Such trees are ill-formed and never silently disambiguated.
	DoubleQuantifierError = y2e.GrammarErrors + 10 + iota
)

func doubleQuantifierError(original, normalized Expr) *y2e.Error {
	return y2e.FormatError(DoubleQuantifierError,
		"illegal double quantification: %s (normalized from %s)",
		String(normalized), String(original))
}

// Normalize rewrites e into its canonical form. Children are normalized
// before parents, so a single bottom-up pass reaches a fixpoint and the
// result is idempotent under Normalize.
//
// Nested alternations and sequences are spliced into their parents. An
// alternation holding the empty Seq drops every empty variant and wraps the
// rest in a zero-or-one Rep. Zero variants or items reduce to the empty Seq,
// a single one is unwrapped. A Rep over a Rep fails, reporting both the
// original and the partially normalized form.
func Normalize(e Expr) (Expr, error) {
	switch x := e.(type) {
	case Alt:
		return normalizeAlt(x)
	case Seq:
		return normalizeSeq(x)
	case Rep:
		inner, err := Normalize(x.Expr)
		if err != nil {
			return nil, err
		}
		if _, isRep := inner.(Rep); isRep {
			return nil, doubleQuantifierError(e, Rep{x.Op, inner})
		}
		return Rep{x.Op, inner}, nil
	default:
		return e, nil
	}
}

func normalizeAlt(a Alt) (Expr, error) {
	variants := make([]Expr, 0, len(a.Variants))
	hasEmpty := false
	for _, v := range a.Variants {
		nv, err := Normalize(v)
		if err != nil {
			return nil, err
		}

		// a normalized child is flat already, one splice level is enough
		flat, isAlt := nv.(Alt)
		if !isAlt {
			flat = Alt{[]Expr{nv}}
		}
		for _, fv := range flat.Variants {
			if IsEmpty(fv) {
				hasEmpty = true
			} else {
				variants = append(variants, fv)
			}
		}
	}

	rest := reduceAlt(variants)
	if !hasEmpty {
		return rest, nil
	}

	if IsEmpty(rest) {
		return Seq{}, nil
	}
	if _, isRep := rest.(Rep); isRep {
		return nil, doubleQuantifierError(a, Rep{ZeroOrOne, rest})
	}
	return Rep{ZeroOrOne, rest}, nil
}

func reduceAlt(variants []Expr) Expr {
	switch len(variants) {
	case 0:
		return Seq{}
	case 1:
		return variants[0]
	default:
		return Alt{variants}
	}
}

func normalizeSeq(s Seq) (Expr, error) {
	items := make([]Expr, 0, len(s.Items))
	for _, v := range s.Items {
		nv, err := Normalize(v)
		if err != nil {
			return nil, err
		}

		// splicing a nested empty Seq contributes nothing
		if nested, isSeq := nv.(Seq); isSeq {
			items = append(items, nested.Items...)
		} else {
			items = append(items, nv)
		}
	}

	switch len(items) {
	case 0:
		return Seq{}, nil
	case 1:
		return items[0], nil
	default:
		return Seq{items}, nil
	}
}
