package driver

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"escript/pkg/ast"
	"escript/pkg/errors"
	"escript/pkg/lexer"
	"escript/pkg/parser"
	"escript/pkg/source"
)

// Options controls what a run prints besides diagnostics.
type Options struct {
	ShowTokens bool
	ShowAST    bool
}

// RunCode scans source text, writing any diagnostics to stderr and the
// requested dumps to stdout. Returns false when scanning failed.
func RunCode(src string, opts Options) bool {
	return runSource(source.NewEvalSource(src), opts, os.Stdout, os.Stderr)
}

// RunFile reads and scans a script file. The file content is decoded with
// a BOM-override transform so UTF-8 and UTF-16 sources with byte-order
// marks lex identically.
func RunFile(filename string, opts Options) bool {
	raw, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file '%s': %s\n", filename, err.Error())
		return false
	}
	content, err := decodeSource(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode file '%s': %s\n", filename, err.Error())
		return false
	}
	return runSource(source.FromFile(filename, content), opts, os.Stdout, os.Stderr)
}

func runSource(sf *source.SourceFile, opts Options, out, errOut io.Writer) bool {
	result, err := parser.ParseSource(sf)
	if err != nil {
		if scriptErr, ok := err.(errors.ScriptError); ok {
			errors.DisplayErrors(errOut, sf.Content, []errors.ScriptError{scriptErr})
		} else {
			fmt.Fprintf(errOut, "Error: %s\n", err.Error())
		}
		return false
	}

	if opts.ShowTokens {
		DisplayTokens(out, result.Tokens)
	}
	if opts.ShowAST {
		DisplayProgram(out, result.Program)
	}
	return true
}

// decodeSource strips a UTF-8 BOM and transcodes UTF-16 input, defaulting
// to UTF-8 when no byte-order mark is present.
func decodeSource(raw []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// DisplayTokens prints one token per line with its position and payload.
func DisplayTokens(w io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%d:%d\t%-14s %q", tok.Line, tok.Column, tok.Type, tok.Literal)
		switch tok.Type {
		case lexer.NUMBER:
			fmt.Fprintf(w, "\t%s %v", tok.Radix, tok.Number)
		case lexer.BIGINT:
			fmt.Fprintf(w, "\t%s %sn", tok.Radix, tok.BigInt.String())
		case lexer.REGEXP:
			fmt.Fprintf(w, "\t/%s/%s", tok.Pattern, tok.Flag)
		case lexer.STRING, lexer.PRIVATE_NAME:
			fmt.Fprintf(w, "\t%q", tok.Content)
		}
		fmt.Fprintln(w)
	}
}

// DisplayProgram prints the program's statement list.
func DisplayProgram(w io.Writer, program *ast.Program) {
	fmt.Fprintf(w, "Program (%d statements)\n", len(program.Body))
	for _, stmt := range program.Body {
		fmt.Fprintf(w, "  %s %s\n", stmt.Kind(), stmt.String())
	}
}
