package yaccdef

import (
	"bytes"
	"regexp"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/lexer"
	"github.com/syndiag/yacc2ebnf/source"
)

// sectionMarker separates declarations, rules, and trailer in a YACC file.
const sectionMarker = "%%"

// Token kinds of the YACC-like notation:
const (
	nameKind = iota
	literalKind
	sepKind
	pipeKind
	semicolonKind
)

var yaccLexer *lexer.Lexer

func init() {
	kinds := []lexer.TokenKind{
		{Kind: nameKind, Name: "name"},
		{Kind: literalKind, Name: "literal"},
		{Kind: sepKind, Name: "separator"},
		{Kind: pipeKind, Name: "\"|\""},
		{Kind: semicolonKind, Name: "\";\""},
		{Kind: lexer.ErrorKind, Name: lexer.ErrorKindName},
	}

	re := regexp.MustCompile(
		`^(?:\s+|/\*(?s:.*?)\*/|` +
			`([a-zA-Z_][a-zA-Z_0-9.]*)|` +
			`('(?:[^\\'\n]|\\.)+'|"(?:[^\\"\n]|\\.)+")|` +
			`(::=|[:=])|` +
			`(\|)|` +
			`(;)|` +
			`(['"].{0,10}))`)

	yaccLexer = lexer.New(re, kinds)
}

// sectionBounds locates the rules section: strictly between the first and
// second marker lines. The second marker is optional, the section then runs
// to the end of input. Declarations before and trailer after are ignored.
func sectionBounds(src *source.Source) (int, int, *y2e.Error) {
	content := src.Content()
	start := -1
	end := len(content)

	offset := 0
	for offset <= len(content) {
		lineEnd := bytes.IndexByte(content[offset:], '\n')
		next := len(content) + 1
		if lineEnd >= 0 {
			next = offset + lineEnd + 1
		}

		line := content[offset:min(next-1, len(content))]
		if string(bytes.TrimSpace(line)) == sectionMarker {
			if start < 0 {
				start = min(next, len(content))
			} else {
				end = offset
				break
			}
		}
		offset = next
	}

	if start < 0 {
		return 0, 0, noMarkerError(src.Name())
	}
	return start, end, nil
}

// scanSection tokenizes the rules section. Action blocks and comments are
// skipped; the result ends with an End token. On the first lexical fault
// scanning stops and a non-nil error is returned together with the tokens
// collected so far, terminated by the fault token.
func scanSection(src *source.Source, pos, limit int) ([]lexer.Token, *y2e.Error) {
	content := src.Content()
	tokens := make([]lexer.Token, 0)

	for pos < limit {
		t, advance := yaccLexer.Match(src, pos, limit)
		if t != nil {
			if t.IsError() {
				tokens = append(tokens, *t)
				return tokens, lexer.FaultError(*t)
			}

			tokens = append(tokens, *t)
			pos += advance
			continue
		}

		if advance > 0 {
			pos += advance
			continue
		}

		if content[pos] == '{' {
			next, e := skipActionBlock(src, pos, limit)
			if e != nil {
				tokens = append(tokens, lexer.ErrorToken(src, pos, lexer.Excerpt(string(content[pos:limit]))))
				return tokens, e
			}
			pos = next
			continue
		}

		fault := lexer.ErrorToken(src, pos, lexer.Excerpt(string(content[pos:limit])))
		tokens = append(tokens, fault)
		return tokens, lexer.FaultError(fault)
	}

	return append(tokens, lexer.EndToken(src, pos)), nil
}

// skipActionBlock scans a balanced-brace action block starting at pos and
// returns the offset just past its closing brace. Braces inside quoted
// literals and comments do not count; nesting is recognized.
func skipActionBlock(src *source.Source, pos, limit int) (int, *y2e.Error) {
	content := src.Content()
	depth := 0
	i := pos

	for i < limit {
		switch content[i] {
		case '{':
			depth++

		case '}':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
			if depth < 0 {
				return 0, unmatchedBraceError(source.NewPos(src, i))
			}

		case '\'', '"':
			end, closed := skipQuoted(content, i, limit)
			if !closed {
				return 0, unterminatedLiteralError(source.NewPos(src, i))
			}
			i = end

		case '/':
			if i+1 >= limit {
				break
			}
			switch content[i+1] {
			case '*':
				closing := bytes.Index(content[i+2:limit], []byte("*/"))
				if closing < 0 {
					i = limit
					continue
				}
				i += closing + 3
			case '/':
				nl := bytes.IndexByte(content[i+2:limit], '\n')
				if nl < 0 {
					i = limit
					continue
				}
				i += nl + 2
			}
		}
		i++
	}

	return 0, unmatchedBraceError(source.NewPos(src, pos))
}

// skipQuoted returns the offset of the closing quote of the literal at pos.
func skipQuoted(content []byte, pos, limit int) (int, bool) {
	quote := content[pos]
	for i := pos + 1; i < limit; i++ {
		switch content[i] {
		case '\\':
			i++
		case quote:
			return i, true
		}
	}
	return limit, false
}
