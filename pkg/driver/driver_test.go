package driver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escript/pkg/parser"
	"escript/pkg/source"
)

func TestRunSourceTokens(t *testing.T) {
	var out, errOut bytes.Buffer
	sf := source.NewEvalSource(`x = 0x17 + "hi"`)

	ok := runSource(sf, Options{ShowTokens: true}, &out, &errOut)
	assert.True(t, ok)
	assert.Zero(t, errOut.Len())

	dump := out.String()
	assert.Contains(t, dump, `"x"`)
	assert.Contains(t, dump, "hex 17", "radix is tagged, digits decode base-10")
	assert.Contains(t, dump, `"hi"`)
}

func TestRunSourceAST(t *testing.T) {
	var out, errOut bytes.Buffer
	sf := source.NewEvalSource("foo bar")

	ok := runSource(sf, Options{ShowAST: true}, &out, &errOut)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Program (2 statements)")
	assert.Contains(t, out.String(), "FunctionDeclaration")
}

func TestRunSourceDiagnostics(t *testing.T) {
	var out, errOut bytes.Buffer
	sf := source.NewEvalSource("x = @")

	ok := runSource(sf, Options{ShowTokens: true}, &out, &errOut)
	assert.False(t, ok)
	assert.Zero(t, out.Len(), "no dumps on a failed scan")

	diag := errOut.String()
	assert.Contains(t, diag, "Lexical Error at 1:4")
	assert.Contains(t, diag, "x = @")
	assert.Contains(t, diag, "    ^", "marker under the offending column")
}

func TestDecodeSource(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"plain utf-8", []byte("x = 1")},
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'x', ' ', '=', ' ', '1'}},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'x', 0, ' ', 0, '=', 0, ' ', 0, '1', 0}},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'x', 0, ' ', 0, '=', 0, ' ', 0, '1'}},
	}

	for _, tt := range tests {
		content, err := decodeSource(tt.raw)
		require.NoError(t, err, tt.name)
		assert.Equal(t, "x = 1", content, tt.name)
	}
}

func TestDisplayTokens(t *testing.T) {
	result, err := parser.ParseSource(source.NewEvalSource("/ab/i 123n #p"))
	require.NoError(t, err)

	var buf bytes.Buffer
	DisplayTokens(&buf, result.Tokens)

	dump := buf.String()
	assert.Contains(t, dump, "/ab/i")
	assert.Contains(t, dump, "decimal 123n")
	assert.Contains(t, dump, `"p"`)
}
