package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"escript/pkg/errors"
)

// SourceFile represents a source file with its content and metadata.
// The content is additionally exposed as a read-only, codepoint-addressable
// buffer: every index the lexer uses is a rune offset, never a byte offset,
// so multi-byte characters inside identifiers and strings slice correctly.
type SourceFile struct {
	Name    string // Display name (e.g., "script.js", "<stdin>", "<eval>")
	Path    string // Full file path (empty for REPL/eval)
	Content string // The source code content

	runes []rune   // Cached codepoint view of Content
	lines []string // Cached split lines (lazy initialization)
}

// NewSourceFile creates a new source file and caches its codepoint view.
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{
		Name:    name,
		Path:    path,
		Content: content,
		runes:   []rune(content),
	}
}

// NewEvalSource creates a source file for eval/REPL input.
func NewEvalSource(content string) *SourceFile {
	return NewSourceFile("<eval>", "", content)
}

// NewStdinSource creates a source file for stdin input.
func NewStdinSource(content string) *SourceFile {
	return NewSourceFile("<stdin>", "", content)
}

// FromFile creates a SourceFile from a file path and content.
func FromFile(filePath, content string) *SourceFile {
	name := filepath.Base(filePath)
	return NewSourceFile(name, filePath, content)
}

// Length returns the number of codepoints in the source.
func (sf *SourceFile) Length() int {
	return len(sf.runes)
}

// Slice returns the codepoints in [begin, end). Both bounds are clamped to
// [0, Length]; the only invalid request is begin > end, which yields an
// IndexError.
func (sf *SourceFile) Slice(begin, end int) (string, error) {
	if begin > end {
		return "", &errors.IndexError{
			Msg: fmt.Sprintf("slice bounds out of order: begin %d > end %d", begin, end),
		}
	}
	if begin < 0 {
		begin = 0
	}
	if end > len(sf.runes) {
		end = len(sf.runes)
	}
	if begin >= end {
		return "", nil
	}
	return string(sf.runes[begin:end]), nil
}

// At returns the codepoint at the given offset, or 0 when the offset is
// outside the buffer.
func (sf *SourceFile) At(offset int) rune {
	if offset < 0 || offset >= len(sf.runes) {
		return 0
	}
	return sf.runes[offset]
}

// Lines returns the source split into lines (cached).
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name).
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile returns true if this represents an actual file (has a path).
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}
