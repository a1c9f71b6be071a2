// Package lexer defines the tokenizer core shared by both input notations.
package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at some position.
	WrongCharError = y2e.LexicalErrors + iota

	// BadTokenError indicates a malformed lexeme (e.g. an unterminated literal).
	BadTokenError
)

// excerptLen limits the offending text carried by an error token.
const excerptLen = 10

// TokenKind describes the token kind produced by a specific capturing group
// of the lexer regexp.
type TokenKind struct {
	Kind int
	Name string
}

// Lexer fetches tokens using a single regexp with capturing groups.
// Each n-th element of kinds describes the token kind for the (n+1)-th
// capturing group; a match with no captured group is an insignificant lexeme
// (whitespace, comment) and is skipped. A group mapped to ErrorKind captures
// broken lexemes and stops the scan. Lexer is immutable and stateless.
type Lexer struct {
	re    *regexp.Regexp
	kinds []TokenKind
}

// New creates new Lexer. re must be anchored at the start of input.
func New(re *regexp.Regexp, kinds []TokenKind) *Lexer {
	ks := make([]TokenKind, len(kinds))
	copy(ks, kinds)
	return &Lexer{re: re, kinds: ks}
}

// Match fetches a single token at pos. Returned advance is the matched lexeme
// length; a nil token with positive advance is an insignificant lexeme,
// a nil token with zero advance means nothing matched at pos.
func (l *Lexer) Match(src *source.Source, pos, limit int) (*Token, int) {
	content := src.Content()[pos:limit]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		kind, kindName := ErrorKind, ErrorKindName
		if len(l.kinds) >= i>>1 {
			k := l.kinds[i>>1-1]
			kind, kindName = k.Kind, k.Name
		}
		text := string(content[match[i]:match[i+1]])
		if kind == ErrorKind {
			t := ErrorToken(src, pos+match[i], Excerpt(text))
			return &t, 0
		}

		t := NewToken(kind, kindName, text, src, pos+match[i])
		return &t, match[1]
	}

	return nil, match[1]
}

// Scan tokenizes content of src between pos and limit.
// The returned sequence always ends with an End token, or with an Error token
// if scanning stopped at a lexical fault; there is no resynchronization.
func (l *Lexer) Scan(src *source.Source, pos, limit int) []Token {
	result := make([]Token, 0)
	for pos < limit {
		t, advance := l.Match(src, pos, limit)
		if t != nil {
			result = append(result, *t)
			if t.IsError() {
				return result
			}
		}
		if advance == 0 && t == nil {
			result = append(result, errorTokenAt(src, pos, limit))
			return result
		}
		pos += advance
	}

	return append(result, EndToken(src, pos))
}

func errorTokenAt(src *source.Source, pos, limit int) Token {
	return ErrorToken(src, pos, Excerpt(string(src.Content()[pos:limit])))
}

// Excerpt shortens offending text for an error token or message.
func Excerpt(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if utf8.RuneCountInString(text) > excerptLen {
		runes := []rune(text)
		text = string(runes[:excerptLen])
	}
	return text
}

// FaultError converts the trailing error token of a scan to *yacc2ebnf.Error.
func FaultError(t Token) *y2e.Error {
	return y2e.FormatErrorPos(t, WrongCharError, "unrecognized text %q", t.Text())
}
