package syntax

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// ErrNone is the zero ErrorKind; a ParseError returned by the parser never has it.
	ErrNone ErrorKind = iota

	// ErrExpectedCharFoundChar: a terminator was required, another byte was found.
	ErrExpectedCharFoundChar

	// ErrExpectedCharFoundEOF: a terminator was required, the input ended.
	ErrExpectedCharFoundEOF

	// ErrEOFInEscape: the pattern ends with a lone '\'.
	ErrEOFInEscape

	// ErrUnbalancedCloseParen: a ')' was found where an atom was expected.
	ErrUnbalancedCloseParen

	// ErrUnexpectedCharacter: the pattern was not consumed completely.
	ErrUnexpectedCharacter

	// ErrNestingTooDeep: groups are nested deeper than ParserOptions.MaxDepth.
	ErrNestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "None"
	case ErrExpectedCharFoundChar:
		return "ExpectedCharFoundChar"
	case ErrExpectedCharFoundEOF:
		return "ExpectedCharFoundEOF"
	case ErrEOFInEscape:
		return "EOFInEscape"
	case ErrUnbalancedCloseParen:
		return "UnbalancedCloseParen"
	case ErrUnexpectedCharacter:
		return "UnexpectedCharacter"
	case ErrNestingTooDeep:
		return "NestingTooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError describes why a pattern could not be parsed.
type ParseError struct {
	Kind ErrorKind

	// Pos is a byte offset inside the pattern.
	Pos int

	// Expected is set for ErrExpectedCharFoundChar and ErrExpectedCharFoundEOF.
	Expected byte

	// Found is set for ErrExpectedCharFoundChar and ErrUnexpectedCharacter.
	Found byte

	// Limit is set for ErrNestingTooDeep.
	Limit int
}

var _ error = &ParseError{}
var _ fmt.Formatter = &ParseError{}
var _ errors.SafeFormatter = &ParseError{}

// Error renders the error as "at position {Pos}, {Message}".
func (e *ParseError) Error() string {
	return fmt.Sprintf("at position %d, %s", e.Pos, e.Message())
}

// Message returns the error description without the position prefix.
func (e *ParseError) Message() string {
	switch e.Kind {
	case ErrExpectedCharFoundChar:
		return fmt.Sprintf("expected '%c', found '%c'", e.Expected, e.Found)
	case ErrExpectedCharFoundEOF:
		return fmt.Sprintf("expected '%c', found EOF", e.Expected)
	case ErrEOFInEscape:
		return "EOF in escape"
	case ErrUnbalancedCloseParen:
		return "Unbalanced close paren"
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("unexpected character '%c'", e.Found)
	case ErrNestingTooDeep:
		return fmt.Sprintf("nesting depth exceeds limit of %d", e.Limit)
	default:
		return e.Kind.String()
	}
}

// Format is part of the fmt.Formatter interface.
func (e *ParseError) Format(s fmt.State, verb rune) {
	errors.FormatError(e, s, verb)
}

// SafeFormatError is part of the errors.SafeFormatter interface.
//
// Positions and grammar bytes are safe to report; bytes that come
// from the pattern itself are not.
func (e *ParseError) SafeFormatError(p errors.Printer) (next error) {
	p.Printf("at position %d, ", redact.Safe(e.Pos))
	switch e.Kind {
	case ErrExpectedCharFoundChar:
		p.Printf("expected '%c', found '%c'", redact.Safe(rune(e.Expected)), rune(e.Found))
	case ErrExpectedCharFoundEOF:
		p.Printf("expected '%c', found EOF", redact.Safe(rune(e.Expected)))
	case ErrUnexpectedCharacter:
		p.Printf("unexpected character '%c'", rune(e.Found))
	case ErrNestingTooDeep:
		p.Printf("nesting depth exceeds limit of %d", redact.Safe(e.Limit))
	default:
		p.Print(redact.SafeString(e.Message()))
	}
	return nil
}

func newParseError(kind ErrorKind, pos int) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}
