package ebnfdef

import (
	"testing"

	"github.com/stretchr/testify/require"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/ebnf"
)

func parse(t *testing.T, text string) []ebnf.Definition {
	t.Helper()
	defs, e := ParseString("extra.ebnf", text)
	require.NoError(t, e)
	return defs
}

func parseOne(t *testing.T, text string) ebnf.Definition {
	t.Helper()
	defs := parse(t, text)
	require.Len(t, defs, 1)
	return defs[0]
}

func TestDefinitions(t *testing.T) {
	samples := []struct {
		src  string
		expr ebnf.Expr
	}{
		{"d ::= 'a' ;", ebnf.Term{Text: "'a'"}},
		{"d ::= \"abc\" ;", ebnf.Term{Text: "\"abc\""}},
		{"d ::= [a-zA-Z] ;", ebnf.Term{Text: "[a-zA-Z]"}},
		{"d ::= other ;", ebnf.Ref{Name: "other"}},
		{"d ::= 'a' b ;", ebnf.Seq{Items: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Ref{Name: "b"}}}},
		{"d ::= 'a' | 'b' ;", ebnf.Alt{Variants: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Term{Text: "'b'"}}}},
		{"d ::= x? ;", ebnf.Rep{Op: ebnf.ZeroOrOne, Expr: ebnf.Ref{Name: "x"}}},
		{"d ::= x* ;", ebnf.Rep{Op: ebnf.ZeroOrMany, Expr: ebnf.Ref{Name: "x"}}},
		{"d ::= x+ ;", ebnf.Rep{Op: ebnf.OneOrMany, Expr: ebnf.Ref{Name: "x"}}},
		{"d ::= ('a' b)* ;", ebnf.Rep{
			Op:   ebnf.ZeroOrMany,
			Expr: ebnf.Seq{Items: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Ref{Name: "b"}}},
		}},
		// parsed bodies are normalized immediately
		{"d ::= ('a') ;", ebnf.Term{Text: "'a'"}},
		{"d ::= 'a' | ;", ebnf.Rep{Op: ebnf.ZeroOrOne, Expr: ebnf.Term{Text: "'a'"}}},
	}

	for _, s := range samples {
		d := parseOne(t, s.src)
		require.Equal(t, "d", d.Name)
		require.True(t, ebnf.Equal(s.expr, d.Expr), "%s: expecting %s, got %s",
			s.src, ebnf.String(s.expr), ebnf.String(d.Expr))
	}
}

func TestSeveralDefinitions(t *testing.T) {
	defs := parse(t, `
		sep ::= ',' | ';' ;
		list ::= item (sep item)* ;
	`)

	require.Len(t, defs, 2)
	require.Equal(t, "sep", defs[0].Name)
	require.Equal(t, "list", defs[1].Name)
	require.Equal(t, "list ::= item (sep item)*", defs[1].String())
}

func TestDoubleQuantification(t *testing.T) {
	_, e := ParseString("extra.ebnf", "d ::= (x?)? ;")
	require.Error(t, e)
	require.Equal(t, ebnf.DoubleQuantifierError, e.(*y2e.Error).Code)
}

func TestDuplicateDefinition(t *testing.T) {
	_, e := ParseString("extra.ebnf", "d ::= 'a' ; d ::= 'b' ;")
	require.Error(t, e)
	require.Equal(t, DuplicateDefinitionError, e.(*y2e.Error).Code)
	require.Contains(t, e.Error(), `"d"`)
}

func TestSyntaxError(t *testing.T) {
	_, e := ParseString("extra.ebnf", "d 'a' ;")
	require.Error(t, e)
	require.Contains(t, e.Error(), "expecting \"::=\"")

	_, e = ParseString("extra.ebnf", "d ::= ('a' ;")
	require.Error(t, e)

	_, e = ParseString("extra.ebnf", "d ::= 'a'")
	require.Error(t, e)
	require.Contains(t, e.Error(), "end of input")
}

func TestLexicalFault(t *testing.T) {
	_, e := ParseString("extra.ebnf", "d ::= 'a ;\n")
	require.Error(t, e)
	require.Equal(t, "extra.ebnf", e.(*y2e.Error).SourceName)
}

func TestEmptyInput(t *testing.T) {
	require.Empty(t, parse(t, ""))
	require.Empty(t, parse(t, "  \n\t"))
}

// serializing a normalized tree and re-parsing it yields a structurally
// equal tree, for constructs expressible in the notation
func TestRoundTrip(t *testing.T) {
	samples := []ebnf.Expr{
		ebnf.Term{Text: "'a'"},
		ebnf.Ref{Name: "x"},
		ebnf.Seq{Items: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Ref{Name: "x"}}},
		ebnf.Alt{Variants: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Term{Text: "'b'"}, ebnf.Ref{Name: "x"}}},
		ebnf.Rep{Op: ebnf.ZeroOrOne, Expr: ebnf.Seq{Items: []ebnf.Expr{ebnf.Term{Text: "'a'"}, ebnf.Ref{Name: "start"}}}},
		ebnf.Rep{Op: ebnf.ZeroOrMany, Expr: ebnf.Alt{Variants: []ebnf.Expr{ebnf.Ref{Name: "a"}, ebnf.Ref{Name: "b"}}}},
		ebnf.Seq{Items: []ebnf.Expr{
			ebnf.Ref{Name: "item"},
			ebnf.Alt{Variants: []ebnf.Expr{ebnf.Term{Text: "','"}, ebnf.Term{Text: "';'"}}},
			ebnf.Rep{Op: ebnf.OneOrMany, Expr: ebnf.Term{Text: "[0-9]"}},
		}},
	}

	for i, expr := range samples {
		normalized, e := ebnf.Normalize(expr)
		require.NoError(t, e, "sample #%d", i)

		d := parseOne(t, "d ::= "+ebnf.String(normalized)+" ;")
		require.True(t, ebnf.Equal(normalized, d.Expr),
			"sample #%d: %s reparsed as %s", i, ebnf.String(normalized), ebnf.String(d.Expr))
	}
}
