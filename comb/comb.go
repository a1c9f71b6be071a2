// Package comb defines backtracking parser combinators over a token sequence.
// Both input notations are parsed with this runtime.
//
// A combinator failure is a value carrying an expectation label and the token
// it failed at, not a thrown fault. Ordered alternation tries the next variant
// only if the previous one failed without consuming input; a failure after
// consuming is committed and propagates. When all variants fail the failure
// that reached the furthest position is kept, so the reported expectation is
// the most specific one.
package comb

import (
	"fmt"

	y2e "github.com/syndiag/yacc2ebnf"
	"github.com/syndiag/yacc2ebnf/lexer"
)

// Error codes used by comb:
const (
	// UnexpectedTokenError indicates that no grammar rule matched the current token.
	UnexpectedTokenError = y2e.SyntaxErrors + iota

	// UnexpectedEndError indicates that input ended where a token was expected.
	UnexpectedEndError
)

// Stream is a position cursor over an immutable token sequence.
// The sequence must be terminated by an End token.
type Stream struct {
	tokens []lexer.Token
	pos    int
}

// NewStream creates new Stream. tokens must not be empty.
func NewStream(tokens []lexer.Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) peek() lexer.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[s.pos]
}

// Failure is the combinator failure value: what was expected and where.
type Failure struct {
	Expected string
	Token    lexer.Token
}

func (f *Failure) Error() string {
	return fmt.Sprintf("expecting %s, got %s", f.Expected, describe(f.Token))
}

func describe(t lexer.Token) string {
	if t.IsEnd() {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.KindName(), t.Text())
}

func fail[T any](expected string, t lexer.Token) (T, error) {
	var zero T
	return zero, &Failure{expected, t}
}

// Parser consumes tokens from a stream and produces a value of type T.
type Parser[T any] func(s *Stream) (T, error)

// Satisfy consumes a single token matching pred.
func Satisfy(expected string, pred func(lexer.Token) bool) Parser[lexer.Token] {
	return func(s *Stream) (lexer.Token, error) {
		t := s.peek()
		if t.IsEnd() || !pred(t) {
			return fail[lexer.Token](expected, t)
		}

		s.pos++
		return t, nil
	}
}

// Kind consumes a single token of given kind.
func Kind(kind int, expected string) Parser[lexer.Token] {
	return Satisfy(expected, func(t lexer.Token) bool { return t.Kind() == kind })
}

// Text consumes a single token with given literal text.
func Text(text string) Parser[lexer.Token] {
	return Satisfy("\""+text+"\"", func(t lexer.Token) bool { return t.Text() == text })
}

// Map applies f to the result of p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s *Stream) (B, error) {
		a, e := p(s)
		if e != nil {
			var zero B
			return zero, e
		}
		return f(a), nil
	}
}

// Left runs both parsers in sequence and keeps the left result.
func Left[A, B any](pa Parser[A], pb Parser[B]) Parser[A] {
	return func(s *Stream) (A, error) {
		a, e := pa(s)
		if e == nil {
			_, e = pb(s)
		}
		if e != nil {
			var zero A
			return zero, e
		}
		return a, nil
	}
}

// Right runs both parsers in sequence and keeps the right result.
func Right[A, B any](pa Parser[A], pb Parser[B]) Parser[B] {
	return func(s *Stream) (B, error) {
		_, e := pa(s)
		if e != nil {
			var zero B
			return zero, e
		}
		return pb(s)
	}
}

// Or tries each variant in order. A variant that failed without consuming
// input passes control to the next one; a failure after consuming input is
// committed and propagates. When every variant fails the furthest failure
// is returned.
func Or[T any](variants ...Parser[T]) Parser[T] {
	return func(s *Stream) (T, error) {
		var furthest *Failure
		start := s.pos
		for _, p := range variants {
			v, e := p(s)
			if e == nil {
				return v, nil
			}

			if s.pos != start {
				var zero T
				return zero, e
			}

			f := e.(*Failure)
			if furthest == nil || f.Token.Offset() > furthest.Token.Offset() {
				furthest = f
			}
		}

		var zero T
		return zero, furthest
	}
}

// Many applies p zero or more times, until it fails without consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(s *Stream) ([]T, error) {
		result := make([]T, 0)
		for {
			start := s.pos
			v, e := p(s)
			if e != nil {
				if s.pos != start {
					return nil, e
				}
				return result, nil
			}

			result = append(result, v)
		}
	}
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(s *Stream) ([]T, error) {
		first, e := p(s)
		if e != nil {
			return nil, e
		}

		rest, e := Many(p)(s)
		if e != nil {
			return nil, e
		}

		return append([]T{first}, rest...), nil
	}
}

// Option applies p and falls back to def if it failed without consuming input.
func Option[T any](p Parser[T], def T) Parser[T] {
	return func(s *Stream) (T, error) {
		start := s.pos
		v, e := p(s)
		if e == nil {
			return v, nil
		}
		if s.pos != start {
			var zero T
			return zero, e
		}
		return def, nil
	}
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s *Stream) ([]T, error) {
		first, e := p(s)
		if e != nil {
			return nil, e
		}

		result := []T{first}
		for {
			start := s.pos
			_, e = sep(s)
			if e != nil {
				if s.pos != start {
					return nil, e
				}
				return result, nil
			}

			v, e := p(s)
			if e != nil {
				return nil, e
			}

			result = append(result, v)
		}
	}
}

// End asserts that the whole section was consumed.
func End() Parser[lexer.Token] {
	return func(s *Stream) (lexer.Token, error) {
		t := s.peek()
		if !t.IsEnd() {
			return fail[lexer.Token]("end of input", t)
		}
		return t, nil
	}
}

// Expect replaces the expectation label of p when it failed without
// consuming input.
func Expect[T any](p Parser[T], expected string) Parser[T] {
	return func(s *Stream) (T, error) {
		start := s.pos
		v, e := p(s)
		if e != nil && s.pos == start {
			var zero T
			return zero, &Failure{expected, e.(*Failure).Token}
		}
		return v, e
	}
}

// Lazy defers construction of p, allowing recursive grammars.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return func(s *Stream) (T, error) {
		return f()(s)
	}
}

// Run applies p to the token sequence and converts a Failure to *yacc2ebnf.Error.
func Run[T any](p Parser[T], tokens []lexer.Token) (T, error) {
	v, e := p(NewStream(tokens))
	if e == nil {
		return v, nil
	}

	var zero T
	f, isFailure := e.(*Failure)
	if !isFailure {
		return zero, e
	}

	code := UnexpectedTokenError
	if f.Token.IsEnd() {
		code = UnexpectedEndError
	}
	return zero, y2e.FormatErrorPos(f.Token, code, "%s", f.Error())
}
