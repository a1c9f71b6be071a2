// Package source defines a named text resource used by lexers and error reporting.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source is an immutable named chunk of input text.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source with given name and content.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol maps a byte offset to 1-based line and column numbers.
// Columns count runes, not bytes.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	left, right := 0, len(s.lineStarts)-1
	for left < right {
		mid := (left + right + 1) >> 1
		if s.lineStarts[mid] <= pos {
			left = mid
		} else {
			right = mid - 1
		}
	}

	lineStart := s.lineStarts[left]
	return left + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos is a resolved position inside a Source.
// It implements yacc2ebnf.SourcePos.
type Pos struct {
	src       *Source
	line, col int
}

// NewPos creates Pos for given byte offset.
func NewPos(src *Source, pos int) Pos {
	line, col := 0, 0
	if src != nil {
		line, col = src.LineCol(pos)
	}
	return Pos{src, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
