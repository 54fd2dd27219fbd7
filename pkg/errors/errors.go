package errors

import (
	"fmt"
	"io"
	"strings"
)

// ScriptError is the interface implemented by all front-end errors.
type ScriptError interface {
	error // Embed the standard error interface
	Pos() Position
	Kind() string // e.g., "Lexical", "GrammarState", "Index"
	// Message returns the specific error message without position info.
	// Useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// LexicalError represents a malformed token at a specific position:
// unterminated string/regex literals, invalid numeric separator placement,
// or a character that matches no punctuator at any window length.
type LexicalError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *LexicalError) Pos() Position   { return e.Position }
func (e *LexicalError) Kind() string    { return "Lexical" }
func (e *LexicalError) Message() string { return e.Msg }
func (e *LexicalError) Unwrap() error   { return e.Cause }
func (e *LexicalError) CausedBy(cause error) *LexicalError {
	e.Cause = cause
	return e
}

// GrammarStateError represents a token encountered in a position the
// shared parsing context forbids (e.g. a non-name token immediately after
// the `function` keyword).
type GrammarStateError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *GrammarStateError) Error() string {
	return fmt.Sprintf("Grammar Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *GrammarStateError) Pos() Position   { return e.Position }
func (e *GrammarStateError) Kind() string    { return "GrammarState" }
func (e *GrammarStateError) Message() string { return e.Msg }
func (e *GrammarStateError) Unwrap() error   { return e.Cause }
func (e *GrammarStateError) CausedBy(cause error) *GrammarStateError {
	e.Cause = cause
	return e
}

// IndexError represents invalid slice bounds requested of the source
// buffer. Defensive; correct scanning logic never triggers it, so it
// usually carries a zero Position.
type IndexError struct {
	Position
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Index Error: %s", e.Msg)
}
func (e *IndexError) Pos() Position   { return e.Position }
func (e *IndexError) Kind() string    { return "Index" }
func (e *IndexError) Message() string { return e.Msg }
func (e *IndexError) Unwrap() error   { return e.Cause }
func (e *IndexError) CausedBy(cause error) *IndexError {
	e.Cause = cause
	return e
}

// --- Error Reporting ---

// DisplayErrors prints front-end errors to w in a user-friendly format,
// including the offending source line and a position marker.
func DisplayErrors(w io.Writer, source string, errs []ScriptError) {
	if len(errs) == 0 {
		return
	}

	lines := strings.Split(source, "\n")

	for _, err := range errs {
		pos := err.Pos()
		kind := err.Kind()
		msg := err.Message()

		// Ensure line numbers are within bounds (1-based index)
		lineIdx := pos.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			// Print a generic error if line info is invalid
			fmt.Fprintf(w, "%s Error: %s\n", kind, msg)
			continue
		}

		sourceLine := lines[lineIdx]
		trimmedLine := strings.TrimRight(sourceLine, "\r\n\t ")

		// Format: <Kind> Error at <Line>:<Column>: <Message>
		fmt.Fprintf(w, "%s Error at %d:%d: %s\n", kind, pos.Line, pos.Column, msg)

		// Print the source line and the marker line (^). Column is 0-based.
		fmt.Fprintf(w, "  %s\n", trimmedLine)
		marker := strings.Repeat(" ", pos.Column) + "^"
		fmt.Fprintf(w, "  %s\n", marker)
		fmt.Fprintln(w)
	}
}
