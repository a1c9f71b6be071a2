package lexer

import (
	"regexp"
	"testing"

	"github.com/syndiag/yacc2ebnf/source"
)

const (
	nameKind = iota
	literalKind
	punctKind
)

var testLexer = New(
	regexp.MustCompile(`^(?:\s+|#[^\n]*|([a-zA-Z_][a-zA-Z_0-9]*)|('(?:[^\\'\n]|\\.)+')|([:;|])|('[^']{0,4}))`),
	[]TokenKind{
		{nameKind, "name"},
		{literalKind, "literal"},
		{punctKind, "punct"},
		{ErrorKind, ErrorKindName},
	})

func scan(text string) []Token {
	src := source.New("test", []byte(text))
	return testLexer.Scan(src, 0, src.Len())
}

func TestScan(t *testing.T) {
	samples := []struct {
		src   string
		kinds []int
		texts []string
	}{
		{"", []int{EndKind}, []string{""}},
		{"  # comment\n", []int{EndKind}, []string{""}},
		{
			"foo : 'b' ;",
			[]int{nameKind, punctKind, literalKind, punctKind, EndKind},
			[]string{"foo", ":", "'b'", ";", ""},
		},
		{"foo % bar", []int{nameKind, ErrorKind}, []string{"foo", "% bar"}},
		{"'broken", []int{ErrorKind}, []string{"'brok"}},
	}

	for i, s := range samples {
		tokens := scan(s.src)
		if len(tokens) != len(s.kinds) {
			t.Errorf("sample #%d: expecting %d tokens, got %d: %v", i, len(s.kinds), len(tokens), tokens)
			continue
		}

		for j, tok := range tokens {
			if tok.Kind() != s.kinds[j] || tok.Text() != s.texts[j] {
				t.Errorf("sample #%d token #%d: expecting %d %q, got %d %q",
					i, j, s.kinds[j], s.texts[j], tok.Kind(), tok.Text())
			}
		}
	}
}

func TestErrorTokenIsLast(t *testing.T) {
	tokens := scan("a % b % c")
	last := tokens[len(tokens)-1]
	if !last.IsError() {
		t.Fatalf("expecting error token, got %v", last)
	}

	for _, tok := range tokens[:len(tokens)-1] {
		if tok.IsError() {
			t.Errorf("error token before the last one: %v", tokens)
		}
	}
}

func TestTokenPos(t *testing.T) {
	tokens := scan("foo\n  bar")
	if len(tokens) != 3 {
		t.Fatalf("expecting 3 tokens, got %v", tokens)
	}

	bar := tokens[1]
	if bar.Offset() != 6 || bar.Line() != 2 || bar.Col() != 3 {
		t.Errorf("expecting offset 6 at 2:3, got %d at %d:%d", bar.Offset(), bar.Line(), bar.Col())
	}
	if bar.SourceName() != "test" {
		t.Errorf("unexpected source name %q", bar.SourceName())
	}
}

func TestExcerpt(t *testing.T) {
	if e := Excerpt("0123456789abc"); e != "0123456789" {
		t.Errorf("got %q", e)
	}
	if e := Excerpt("ab\ncd"); e != "ab" {
		t.Errorf("got %q", e)
	}
}
