package errors

// Position represents a specific location in the source code.
// Line is 1-based and counts physical line breaks consumed so far; Column
// is 0-based and counts codepoints since the last line break.
type Position struct {
	Line   int    // 1-based line number
	Column int    // 0-based column number (codepoint index within the line)
	Source string // Display name of the originating source, if known
}
