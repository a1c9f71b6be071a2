package lexer

import (
	"github.com/syndiag/yacc2ebnf/source"
)

// Token kinds reserved by the lexer itself. Notation-specific kinds are
// non-negative and defined by the package owning the notation.
const (
	// EndKind marks the end of the scanned section; a token of this kind
	// always terminates a fault-free scan.
	EndKind = -1

	// ErrorKind marks a lexical fault; it carries the offset and an excerpt
	// of the offending text and is always the last token of a scan.
	ErrorKind = -2
)

const (
	EndKindName   = "-end-"
	ErrorKindName = "-error-"
)

// Token is an immutable lexical unit.
type Token struct {
	kind     int
	kindName string
	text     string
	src      *source.Source
	offset   int
}

// NewToken creates new Token at given byte offset of src.
func NewToken(kind int, kindName, text string, src *source.Source, offset int) Token {
	return Token{kind, kindName, text, src, offset}
}

func (t Token) Kind() int {
	return t.kind
}

func (t Token) KindName() string {
	return t.kindName
}

func (t Token) Text() string {
	return t.text
}

func (t Token) Offset() int {
	return t.offset
}

func (t Token) IsEnd() bool {
	return t.kind == EndKind
}

func (t Token) IsError() bool {
	return t.kind == ErrorKind
}

func (t Token) SourceName() string {
	if t.src == nil {
		return ""
	}
	return t.src.Name()
}

func (t Token) Line() int {
	line, _ := t.lineCol()
	return line
}

func (t Token) Col() int {
	_, col := t.lineCol()
	return col
}

func (t Token) lineCol() (int, int) {
	if t.src == nil {
		return 0, 0
	}
	return t.src.LineCol(t.offset)
}

// EndToken creates the section terminator token at given offset.
func EndToken(src *source.Source, offset int) Token {
	return Token{kind: EndKind, kindName: EndKindName, src: src, offset: offset}
}

// ErrorToken creates the fault token for the text starting at given offset.
func ErrorToken(src *source.Source, offset int, excerpt string) Token {
	return Token{kind: ErrorKind, kindName: ErrorKindName, text: excerpt, src: src, offset: offset}
}
