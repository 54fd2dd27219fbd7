package parser

import (
	"escript/pkg/ast"
	"escript/pkg/lexer"
	"escript/pkg/source"
)

// Result is the output of a scan: the Program under construction and the
// full token stream, which is the contract any future grammar driver
// consumes positionally.
type Result struct {
	Program *ast.Program
	Tokens  []lexer.Token
}

// Parse scans source text into a Program. Callers either get a complete
// Program or a single terminating error; there is no partial result.
func Parse(src string) (*ast.Program, error) {
	result, err := ParseSource(source.NewEvalSource(src))
	if err != nil {
		return nil, err
	}
	return result.Program, nil
}

// ParseSource scans a SourceFile, threading a fresh Context bound to the
// program body through the lexer. Each call owns its own buffer, context,
// and outputs, so independent sources can be parsed concurrently.
func ParseSource(sf *source.SourceFile) (*Result, error) {
	program := ast.NewProgram(1, 0)
	program.Location.Source = sf.Name

	ctx := lexer.NewContext(&program.Body)
	lx := lexer.New(sf, ctx)

	tokens, err := lx.ScanAll()
	if err != nil {
		return nil, err
	}

	end := lx.Position()
	program.Location.Close(end.Line, end.Column)
	return &Result{Program: program, Tokens: tokens}, nil
}
