package yaccdef

import (
	"testing"

	"github.com/stretchr/testify/require"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/comb"
	"github.com/syndiag/yacc2ebnf/grammar"
)

const header = "%token FOO\n%%\n"

func parse(t *testing.T, text string) *grammar.Grammar {
	t.Helper()
	g, e := ParseString("test.y", text)
	require.NoError(t, e)
	return g
}

func errCode(t *testing.T, text string) int {
	t.Helper()
	_, e := ParseString("test.y", text)
	require.Error(t, e)
	return e.(*y2e.Error).Code
}

func TestSectionBounds(t *testing.T) {
	g := parse(t, "ignored : junk\n%%\nfoo : 'a' ;\n%%\ntrailer : junk ;\n")
	require.Equal(t, []string{"foo"}, g.Names())

	// second marker is optional
	g = parse(t, header+"foo : 'a' ;\n")
	require.Equal(t, []string{"foo"}, g.Names())

	require.Equal(t, NoMarkerError, errCode(t, "foo : 'a' ;\n"))
}

func TestProductions(t *testing.T) {
	g := parse(t, header+`
		list : item | list ',' item ;
		item ::= NAME
			| /* empty */
			;
		pair = item item ;
	`)

	require.Equal(t, []string{"list", "item", "pair"}, g.Names())

	list, _ := g.Production("list")
	require.Equal(t, []grammar.Rule{
		{grammar.NonTerminal("item")},
		{grammar.NonTerminal("list"), grammar.Terminal("','"), grammar.NonTerminal("item")},
	}, list.Rules)

	item, _ := g.Production("item")
	require.Len(t, item.Rules, 2)
	require.Empty(t, item.Rules[1])
	require.Equal(t, 1, item.EmptyRuleCount())
}

func TestActionBlocks(t *testing.T) {
	g := parse(t, header+`
		expr : expr '+' expr { $$ = add($1, $3); /* a } in comment */ }
			| NUM { $$ = atoi(yytext); if (*s == '{') { nest(); } }
			;
	`)

	expr, _ := g.Production("expr")
	require.Len(t, expr.Rules, 2)
	require.Equal(t, grammar.Rule{grammar.NonTerminal("NUM")}, expr.Rules[1])
}

func TestLineCommentsInActions(t *testing.T) {
	g := parse(t, header+`
		s : 'a' { x(); // a } here does not close the block
			y(); }
			| 'b' { // neither does this one: } } }
				z(); }
			;
	`)

	s, _ := g.Production("s")
	require.Equal(t, []grammar.Rule{
		{grammar.Terminal("'a'")},
		{grammar.Terminal("'b'")},
	}, s.Rules)
}

func TestBracesInActionLiterals(t *testing.T) {
	g := parse(t, header+"s : 'x' { puts(\"}{\"); c = '}'; } ;\n")
	s, _ := g.Production("s")
	require.Equal(t, []grammar.Rule{{grammar.Terminal("'x'")}}, s.Rules)
}

func TestUnmatchedBrace(t *testing.T) {
	require.Equal(t, UnmatchedBraceError, errCode(t, header+"s : 'x' { if (a) { b(); ;\n"))
}

func TestInvariantViolations(t *testing.T) {
	require.Equal(t, grammar.DuplicateNameError,
		errCode(t, header+"expr : 'a' ;\nexpr : 'b' ;\n"))

	require.Equal(t, grammar.EmptyAlternativesError,
		errCode(t, header+"opt : | 'a' | ;\n"))

	_, e := ParseString("test.y", header+"expr : 'a' ;\nexpr : 'b' ;\n")
	require.Contains(t, e.Error(), `"expr"`)
	require.Contains(t, e.Error(), "test.y")
}

func TestSyntaxErrors(t *testing.T) {
	_, e := ParseString("test.y", header+"foo 'a' ;\n")
	require.Error(t, e)
	require.Contains(t, e.Error(), "expecting \"::=\", \":\", or \"=\"")

	_, e = ParseString("test.y", header+"foo : 'a'\n")
	require.Error(t, e)
	require.Contains(t, e.Error(), "end of input")

	require.Equal(t, comb.UnexpectedTokenError, errCode(t, header+"foo : 'a' ; | ;\n"))
}

func TestLexicalFault(t *testing.T) {
	_, e := ParseString("test.y", header+"foo : 'a ;\n")
	require.Error(t, e)
	ye := e.(*y2e.Error)
	require.Equal(t, "test.y", ye.SourceName)
	require.Equal(t, 3, ye.Line)
}

func TestEmptySection(t *testing.T) {
	g := parse(t, "%%\n%%\n")
	require.Equal(t, 0, g.Len())
}
