// Package yaccdef parses the YACC-like grammar notation.
//
// Only the rules section between the two marker lines is considered. A
// production is "name separator rule (| rule)* ;" where the separator is
// "::=", ":", or "=". A rule is a possibly empty sequence of quoted literals
// and bare names; a brace-delimited action block after a rule is skipped.
package yaccdef

import (
	"github.com/syndiag/yacc2ebnf/comb"
	"github.com/syndiag/yacc2ebnf/grammar"
	"github.com/syndiag/yacc2ebnf/lexer"
	"github.com/syndiag/yacc2ebnf/source"
)

type production struct {
	name  lexer.Token
	rules []grammar.Rule
}

var productionsParser comb.Parser[[]production]

func init() {
	element := comb.Or(
		comb.Map(comb.Kind(literalKind, "literal"), func(t lexer.Token) grammar.Element {
			return grammar.Terminal(t.Text())
		}),
		comb.Map(comb.Kind(nameKind, "name"), func(t lexer.Token) grammar.Element {
			return grammar.NonTerminal(t.Text())
		}),
	)

	rule := comb.Map(comb.Many(element), func(es []grammar.Element) grammar.Rule {
		return grammar.Rule(es)
	})

	rules := comb.SepBy1(rule, comb.Kind(pipeKind, "\"|\""))

	prod := func(s *comb.Stream) (production, error) {
		name, e := comb.Kind(nameKind, "production name")(s)
		if e != nil {
			return production{}, e
		}

		_, e = comb.Expect(comb.Kind(sepKind, ""), "\"::=\", \":\", or \"=\"")(s)
		if e != nil {
			return production{}, e
		}

		rs, e := comb.Left(rules, comb.Kind(semicolonKind, "\";\""))(s)
		if e != nil {
			return production{}, e
		}

		return production{name, rs}, nil
	}

	productionsParser = comb.Left(comb.Many(comb.Parser[production](prod)), comb.End())
}

// ParseString parses a YACC-like grammar description.
// Returns nil and *yacc2ebnf.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// Parse parses a YACC-like grammar description.
// Returns nil and *yacc2ebnf.Error on error.
func Parse(src *source.Source) (*grammar.Grammar, error) {
	start, end, e := sectionBounds(src)
	if e != nil {
		return nil, e
	}

	tokens, e := scanSection(src, start, end)
	if e != nil {
		return nil, e
	}

	prods, pe := comb.Run(productionsParser, tokens)
	if pe != nil {
		return nil, pe
	}

	g := grammar.New()
	for _, p := range prods {
		pe = g.Add(grammar.Production{Name: p.name.Text(), Rules: p.rules}, p.name)
		if pe != nil {
			return nil, pe
		}
	}

	return g, nil
}
