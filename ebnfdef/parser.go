// Package ebnfdef parses the supplementary EBNF notation: a flat list of
// "name ::= body ;" definitions with no section markers. Bodies are
// alternations of sequences of quantified atoms; parenthesized
// sub-expressions recurse. Quoted characters, quoted strings, and bracketed
// character classes are opaque terminal text, kept verbatim.
// Every parsed definition is normalized immediately.
package ebnfdef

import (
	"regexp"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/comb"
	"github.com/syndiag/yacc2ebnf/ebnf"
	"github.com/syndiag/yacc2ebnf/lexer"
	"github.com/syndiag/yacc2ebnf/source"
)

// Error codes used by ebnfdef:
const (
	// DuplicateDefinitionError indicates that a name is defined twice.
	DuplicateDefinitionError = y2e.GrammarErrors + 20 + iota
)

// Token kinds of the supplementary notation:
const (
	nameKind = iota
	terminalKind
	defineKind
	semicolonKind
	pipeKind
	lparenKind
	rparenKind
	quantKind
)

var ebnfLexer *lexer.Lexer

func init() {
	kinds := []lexer.TokenKind{
		{Kind: nameKind, Name: "name"},
		{Kind: terminalKind, Name: "terminal"},
		{Kind: defineKind, Name: "\"::=\""},
		{Kind: semicolonKind, Name: "\";\""},
		{Kind: pipeKind, Name: "\"|\""},
		{Kind: lparenKind, Name: "\"(\""},
		{Kind: rparenKind, Name: "\")\""},
		{Kind: quantKind, Name: "quantifier"},
		{Kind: lexer.ErrorKind, Name: lexer.ErrorKindName},
	}

	re := regexp.MustCompile(
		`^(?:\s+|` +
			`([a-zA-Z_][a-zA-Z_0-9.]*)|` +
			`('(?:[^\\'\n]|\\.)+'|"(?:[^\\"\n]|\\.)+"|\[(?:[^\\\]\n]|\\.)+\])|` +
			`(::=)|` +
			`(;)|` +
			`(\|)|` +
			`(\()|` +
			`(\))|` +
			`([?*+])|` +
			`(['"\[:].{0,10}))`)

	ebnfLexer = lexer.New(re, kinds)
}

var quantOps = map[string]ebnf.RepOp{
	"?": ebnf.ZeroOrOne,
	"*": ebnf.ZeroOrMany,
	"+": ebnf.OneOrMany,
}

var definitionsParser comb.Parser[[]definition]

type definition struct {
	name lexer.Token
	expr ebnf.Expr
}

func init() {
	var alternation func() comb.Parser[ebnf.Expr]

	atom := comb.Or(
		comb.Map(comb.Kind(terminalKind, "terminal"), func(t lexer.Token) ebnf.Expr {
			return ebnf.Term{Text: t.Text()}
		}),
		comb.Map(comb.Kind(nameKind, "name"), func(t lexer.Token) ebnf.Expr {
			return ebnf.Ref{Name: t.Text()}
		}),
		comb.Right(comb.Kind(lparenKind, "\"(\""),
			comb.Left(comb.Lazy(func() comb.Parser[ebnf.Expr] { return alternation() }),
				comb.Kind(rparenKind, "\")\""))),
	)

	quantified := func(s *comb.Stream) (ebnf.Expr, error) {
		e, err := atom(s)
		if err != nil {
			return nil, err
		}

		q, err := comb.Option(comb.Kind(quantKind, "quantifier"), lexer.Token{})(s)
		if err != nil {
			return nil, err
		}
		if q.Text() == "" {
			return e, nil
		}
		return ebnf.Rep{Op: quantOps[q.Text()], Expr: e}, nil
	}

	sequence := comb.Map(comb.Many(comb.Parser[ebnf.Expr](quantified)), func(items []ebnf.Expr) ebnf.Expr {
		return ebnf.Seq{Items: items}
	})

	alternation = func() comb.Parser[ebnf.Expr] {
		return comb.Map(comb.SepBy1(sequence, comb.Kind(pipeKind, "\"|\"")), func(vs []ebnf.Expr) ebnf.Expr {
			return ebnf.Alt{Variants: vs}
		})
	}

	def := func(s *comb.Stream) (definition, error) {
		name, e := comb.Kind(nameKind, "definition name")(s)
		if e != nil {
			return definition{}, e
		}

		body, e := comb.Right(comb.Kind(defineKind, "\"::=\""),
			comb.Left(alternation(), comb.Kind(semicolonKind, "\";\"")))(s)
		if e != nil {
			return definition{}, e
		}

		return definition{name, body}, nil
	}

	definitionsParser = comb.Left(comb.Many(comb.Parser[definition](def)), comb.End())
}

// ParseString parses supplementary EBNF definitions.
// Returns nil and *yacc2ebnf.Error on error.
func ParseString(name, content string) ([]ebnf.Definition, error) {
	return Parse(source.New(name, []byte(content)))
}

// Parse parses supplementary EBNF definitions, normalizing each one.
// Returns nil and *yacc2ebnf.Error on error.
func Parse(src *source.Source) ([]ebnf.Definition, error) {
	tokens := ebnfLexer.Scan(src, 0, src.Len())
	if last := tokens[len(tokens)-1]; last.IsError() {
		return nil, lexer.FaultError(last)
	}

	parsed, e := comb.Run(definitionsParser, tokens)
	if e != nil {
		return nil, e
	}

	result := make([]ebnf.Definition, 0, len(parsed))
	seen := make(map[string]bool)
	for _, d := range parsed {
		name := d.name.Text()
		if seen[name] {
			return nil, y2e.FormatErrorPos(d.name, DuplicateDefinitionError,
				"definition %q already defined", name)
		}
		seen[name] = true

		expr, ne := ebnf.Normalize(d.expr)
		if ne != nil {
			return nil, ne
		}

		result = append(result, ebnf.Definition{Name: name, Expr: expr})
	}

	return result, nil
}
