/*
Package yacc2ebnf derives a simplified EBNF description from a YACC-like
grammar, suitable for rendering as syntax diagrams.

Consists of subpackages:
  - cmd/yacc2ebnf: console utility converting a grammar file (plus an optional
    supplementary EBNF file) to a list of EBNF definitions;
  - source: defines a named text resource with position mapping;
  - lexer: tokenizers for both input notations;
  - comb: backtracking parser combinators used by both notation parsers;
  - grammar: YACC grammar model;
  - ebnf: EBNF expression model, normalization, and rendering;
  - yaccdef: parser for the YACC-like notation;
  - ebnfdef: parser for the supplementary EBNF notation;
  - depgraph: non-terminal dependency graph and component ordering;
  - convert: conversion of YACC productions to EBNF definitions with
    trivial-definition inlining;
  - pipeline: reads input resources, runs all stages, writes definition lines.

The core is purely functional: every transformation builds new values, and
every failure is reported as *Error, never as a panic escaping a public
operation.
*/
package yacc2ebnf

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // grammar invariant violations (grammar, ebnf, ebnfdef)
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by comb, yaccdef, ebnfdef
)

// Error is the error type used by yacc2ebnf subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
