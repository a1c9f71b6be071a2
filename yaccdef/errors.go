package yaccdef

import (
	"fmt"

	y2e "github.com/syndiag/yacc2ebnf"
)

// Error codes used by yaccdef:
const (
	// NoMarkerError indicates that the rules section marker line is missing.
	NoMarkerError = y2e.SyntaxErrors + 10 + iota

	// UnmatchedBraceError indicates an action block whose braces do not balance.
	UnmatchedBraceError

	// UnterminatedLiteralError indicates a quoted literal with no closing quote
	// inside an action block.
	UnterminatedLiteralError
)

func noMarkerError(sourceName string) *y2e.Error {
	msg := fmt.Sprintf("no %q section marker line in %s", sectionMarker, sourceName)
	return y2e.NewError(NoMarkerError, msg, sourceName, 0, 0)
}

func unmatchedBraceError(pos y2e.SourcePos) *y2e.Error {
	return y2e.FormatErrorPos(pos, UnmatchedBraceError, "unmatched \"{\" in action block")
}

func unterminatedLiteralError(pos y2e.SourcePos) *y2e.Error {
	return y2e.FormatErrorPos(pos, UnterminatedLiteralError, "unterminated literal in action block")
}
