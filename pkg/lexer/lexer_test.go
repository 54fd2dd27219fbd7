package lexer

import (
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escript/pkg/ast"
	"escript/pkg/errors"
	"escript/pkg/source"
)

func newTestLexer(input string) (*Lexer, *Context) {
	statements := []ast.Statement{}
	ctx := NewContext(&statements)
	return New(source.NewEvalSource(input), ctx), ctx
}

func scan(t *testing.T, input string) []Token {
	t.Helper()
	l, _ := newTestLexer(input)
	tokens, err := l.ScanAll()
	require.NoError(t, err)
	return tokens
}

func scanErr(t *testing.T, input string) error {
	t.Helper()
	l, _ := newTestLexer(input)
	_, err := l.ScanAll()
	require.Error(t, err)
	return err
}

func TestNextToken(t *testing.T) {
	input := "function plus(a, b) {\n  return a + b\n}\n"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
		expectedLine    int
		expectedColumn  int
	}{
		{FUNCTION, "function", 1, 0},
		{NAME, "plus", 1, 9},
		{LPAREN, "(", 1, 13},
		{NAME, "a", 1, 14},
		{COMMA, ",", 1, 15},
		{NAME, "b", 1, 17},
		{RPAREN, ")", 1, 18},
		{LBRACE, "{", 1, 20},
		{RETURN, "return", 2, 2},
		{NAME, "a", 2, 9},
		{PLUS, "+", 2, 11},
		{NAME, "b", 2, 13},
		{RBRACE, "}", 3, 0},
	}

	l, _ := newTestLexer(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		require.NoError(t, err, "tests[%d]", i)
		assert.Equal(t, tt.expectedType, tok.Type, "tests[%d] - tokentype", i)
		assert.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal", i)
		assert.Equal(t, tt.expectedLine, tok.Line, "tests[%d] - line", i)
		assert.Equal(t, tt.expectedColumn, tok.Column, "tests[%d] - column", i)
	}

	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Type)
}

func TestPunctuatorLongestMatch(t *testing.T) {
	input := `=== !== == != <= >= ?? ??= ?. => ++ -- || && ~ | & ! ? . ; , :`

	expected := []TokenType{
		STRICT_EQ, STRICT_NOT_EQ, EQ, NOT_EQ, LE, GE,
		COALESCE, COALESCE_ASSIGN, QUESTION_DOT, ARROW, INC, DEC,
		LOGICAL_OR, LOGICAL_AND, TILDE, PIPE, AMPERSAND, BANG,
		QUESTION, DOT, SEMICOLON, COMMA, COLON,
	}

	tokens := scan(t, input)
	require.Len(t, tokens, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, tokens[i].Type, "tokens[%d]", i)
		assert.Equal(t, string(want), tokens[i].Literal, "tokens[%d]", i)
	}
}

func TestUnknownCharacter(t *testing.T) {
	err := scanErr(t, "@")
	var lexErr *errors.LexicalError
	require.True(t, stderrors.As(err, &lexErr))
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 0, lexErr.Column)
	assert.Contains(t, lexErr.Msg, "@")
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		literal  string
		radix    Radix
		expected float64
	}{
		{"5", "5", RadixDecimal, 5},
		{"1230", "1230", RadixDecimal, 1230},
		{"1_000", "1_000", RadixDecimal, 1000},
		{"0b101", "0b101", RadixBinary, 101},
		{"0x17", "0x17", RadixHex, 17},
		{"017", "017", RadixOctal, 17},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		require.Len(t, tokens, 1, "input %q", tt.input)
		tok := tokens[0]
		assert.Equal(t, NUMBER, tok.Type, "input %q", tt.input)
		assert.Equal(t, tt.literal, tok.Literal, "input %q", tt.input)
		assert.Equal(t, tt.radix, tok.Radix, "input %q", tt.input)
		assert.Equal(t, tt.expected, tok.Number, "input %q", tt.input)
	}
}

func TestNumericSeparatorErrors(t *testing.T) {
	tests := []struct {
		input  string
		column int
	}{
		{"_1", 0},   // separator opens the literal
		{"1__0", 2}, // second consecutive separator
		{"0x_1", 2}, // separator right after the radix prefix
		{"0b_1", 2},
	}

	for _, tt := range tests {
		err := scanErr(t, tt.input)
		var lexErr *errors.LexicalError
		require.True(t, stderrors.As(err, &lexErr), "input %q", tt.input)
		assert.Equal(t, 1, lexErr.Line, "input %q", tt.input)
		assert.Equal(t, tt.column, lexErr.Column, "input %q", tt.input)
	}
}

func TestBigIntLiteral(t *testing.T) {
	tokens := scan(t, "123n")
	require.Len(t, tokens, 1, "the n suffix must not produce a separate token")
	tok := tokens[0]
	assert.Equal(t, BIGINT, tok.Type)
	assert.Equal(t, "123n", tok.Literal)
	assert.Equal(t, RadixDecimal, tok.Radix)
	require.NotNil(t, tok.BigInt)
	assert.Equal(t, 0, tok.BigInt.Cmp(big.NewInt(123)))
}

func TestBigIntOverflow(t *testing.T) {
	// 2^127 does not fit a 128-bit signed integer.
	err := scanErr(t, "170141183460469231731687303715884105728n")
	var lexErr *errors.LexicalError
	require.True(t, stderrors.As(err, &lexErr))
	assert.Contains(t, lexErr.Msg, "overflows")
}

func TestStrings(t *testing.T) {
	tokens := scan(t, `"a\"b"`)
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, `"a\"b"`, tok.Literal, "raw text includes the quotes")
	assert.Equal(t, `a\"b`, tok.Content, "escapes are not decoded at this layer")

	tokens = scan(t, `'single'`)
	require.Len(t, tokens, 1)
	assert.Equal(t, "single", tokens[0].Content)
}

func TestStringErrors(t *testing.T) {
	for _, input := range []string{`"unterminated`, "\"line\nbreak\"", `"esc at end\`} {
		err := scanErr(t, input)
		var lexErr *errors.LexicalError
		require.True(t, stderrors.As(err, &lexErr), "input %q", input)
		assert.Contains(t, lexErr.Msg, "unterminated string", "input %q", input)
	}
}

func TestRegExpLiteral(t *testing.T) {
	tests := []struct {
		input   string
		pattern string
		flag    RegExpFlag
	}{
		{"/ab/i", "ab", FlagIgnoreCase},
		{"/ab/g", "ab", FlagGlobal},
		{"/ab/", "ab", FlagNone},
		{`/a\/b/`, `a\/b`, FlagNone},
	}

	for _, tt := range tests {
		tokens := scan(t, tt.input)
		require.Len(t, tokens, 1, "input %q", tt.input)
		tok := tokens[0]
		assert.Equal(t, REGEXP, tok.Type, "input %q", tt.input)
		assert.Equal(t, tt.input, tok.Literal, "input %q", tt.input)
		assert.Equal(t, tt.pattern, tok.Pattern, "input %q", tt.input)
		assert.Equal(t, tt.flag, tok.Flag, "input %q", tt.input)
	}
}

func TestRegExpUnterminated(t *testing.T) {
	for _, input := range []string{"/ab", "/ab\n/"} {
		err := scanErr(t, input)
		var lexErr *errors.LexicalError
		require.True(t, stderrors.As(err, &lexErr), "input %q", input)
		assert.Contains(t, lexErr.Msg, "unterminated regular expression", "input %q", input)
	}
}

func TestRegexDivideAmbiguity(t *testing.T) {
	// After an identifier-class character the slash is a division operator.
	// The lookback is purely syntactic, so a keyword's last letter counts
	// the same as an identifier's.
	tokens := scan(t, "a / b")
	require.Len(t, tokens, 3)
	assert.Equal(t, NAME, tokens[0].Type)
	assert.Equal(t, SLASH, tokens[1].Type)
	assert.Equal(t, NAME, tokens[2].Type)

	// Same after a closing parenthesis or bracket.
	tokens = scan(t, "(a) / b")
	assert.Equal(t, SLASH, tokens[3].Type)
	tokens = scan(t, "a[0] / b")
	assert.Equal(t, SLASH, tokens[4].Type)

	// Compound assignment wins by longest match in operator position.
	tokens = scan(t, "a /= b")
	assert.Equal(t, SLASH_ASSIGN, tokens[1].Type)

	// At start of input the slash opens a regular expression.
	tokens = scan(t, "/ab/i")
	require.Len(t, tokens, 1)
	assert.Equal(t, REGEXP, tokens[0].Type)

	// Likewise after an operator or an opening bracket.
	tokens = scan(t, "a = /ab/i")
	require.Len(t, tokens, 3)
	assert.Equal(t, REGEXP, tokens[2].Type)
	assert.Equal(t, "ab", tokens[2].Pattern)

	tokens = scan(t, "[/ab/g]")
	require.Len(t, tokens, 3)
	assert.Equal(t, REGEXP, tokens[1].Type)
	assert.Equal(t, FlagGlobal, tokens[1].Flag)
}

func TestSlashAfterCommentTrivia(t *testing.T) {
	// Comments between a token and a slash are trivia: the lookback sees
	// the token, not the comment text.
	tokens := scan(t, "a /*x*/ / b")
	require.Len(t, tokens, 3)
	assert.Equal(t, SLASH, tokens[1].Type)

	tokens = scan(t, "a // trailing\n/ b")
	require.Len(t, tokens, 3)
	assert.Equal(t, SLASH, tokens[1].Type)

	tokens = scan(t, "x = /*pattern next*/ /ab/i")
	require.Len(t, tokens, 3)
	assert.Equal(t, REGEXP, tokens[2].Type)
	assert.Equal(t, "ab", tokens[2].Pattern)
}

func TestPrivateNames(t *testing.T) {
	tokens := scan(t, "#foo123")
	require.Len(t, tokens, 1)
	assert.Equal(t, PRIVATE_NAME, tokens[0].Type)
	assert.Equal(t, "#foo123", tokens[0].Literal)
	assert.Equal(t, "foo123", tokens[0].Content)

	// A bare '#' yields a private name with empty content.
	tokens = scan(t, "# !")
	require.Len(t, tokens, 2)
	assert.Equal(t, PRIVATE_NAME, tokens[0].Type)
	assert.Equal(t, "", tokens[0].Content)
	assert.Equal(t, BANG, tokens[1].Type)
}

func TestKeywordsAndNames(t *testing.T) {
	tokens := scan(t, "var x in typeof instanceof undefined")
	expected := []TokenType{VAR, NAME, IN, TYPEOF, INSTANCEOF, UNDEFINED}
	require.Len(t, tokens, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, tokens[i].Type, "tokens[%d]", i)
	}
}

func TestFunctionIdentifierFlag(t *testing.T) {
	l, ctx := newTestLexer("function plus")

	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, FUNCTION, tok.Type)
	assert.True(t, ctx.IsFunctionIdentifier, "flag set after consuming `function`")

	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, NAME, tok.Type)
	assert.False(t, ctx.IsFunctionIdentifier, "flag cleared by the following name")
}

func TestFunctionIdentifierViolations(t *testing.T) {
	inputs := []string{
		"function return",
		"function (",
		"function 1",
		"function /ab/",
		`function "s"`,
		"function #p",
	}
	for _, input := range inputs {
		err := scanErr(t, input)
		var gramErr *errors.GrammarStateError
		require.True(t, stderrors.As(err, &gramErr), "input %q", input)
	}
}

func TestNameTokenPushesStubDeclaration(t *testing.T) {
	statements := []ast.Statement{}
	ctx := NewContext(&statements)
	l := New(source.NewEvalSource("foo bar"), ctx)
	_, err := l.ScanAll()
	require.NoError(t, err)

	require.Len(t, statements, 2)
	decl, ok := statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "foo", decl.ID.Name)
	decl, ok = statements[1].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "bar", decl.ID.Name)
}

func TestFunctionKeywordPushesExpressionStub(t *testing.T) {
	statements := []ast.Statement{}
	expressions := []ast.Expression{}
	ctx := NewContext(&statements)
	ctx.Expressions = &expressions
	l := New(source.NewEvalSource("function f"), ctx)
	_, err := l.ScanAll()
	require.NoError(t, err)

	require.Len(t, expressions, 1)
	_, ok := expressions[0].(*ast.FunctionExpression)
	assert.True(t, ok)
}

func TestComments(t *testing.T) {
	tokens := scan(t, "// leading comment\nfoo")
	require.Len(t, tokens, 1)
	assert.Equal(t, NAME, tokens[0].Type)
	assert.Equal(t, 2, tokens[0].Line)

	tokens = scan(t, "/* block\ncomment */ 5")
	require.Len(t, tokens, 1)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 2, tokens[0].Line)

	// Comments are trivia even between `function` and its name.
	tokens = scan(t, "function /* name below */ f")
	require.Len(t, tokens, 2)
	assert.Equal(t, NAME, tokens[1].Type)

	err := scanErr(t, "/* unterminated")
	var lexErr *errors.LexicalError
	require.True(t, stderrors.As(err, &lexErr))
	assert.Contains(t, lexErr.Msg, "unterminated block comment")
}

func TestMultibyteColumns(t *testing.T) {
	// Columns count codepoints, not bytes.
	tokens := scan(t, `"héllo" x`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "héllo", tokens[0].Content)
	assert.Equal(t, 8, tokens[1].Column)
}

func TestRescanIsIdempotent(t *testing.T) {
	input := "function plus(a, b) {\n  return a + 0x17 / 2\n}\n"
	sf := source.NewEvalSource(input)

	first := []ast.Statement{}
	l1 := New(sf, NewContext(&first))
	tokens1, err := l1.ScanAll()
	require.NoError(t, err)

	second := []ast.Statement{}
	l2 := New(sf, NewContext(&second))
	tokens2, err := l2.ScanAll()
	require.NoError(t, err)

	assert.Equal(t, tokens1, tokens2)
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, FUNCTION, LookupIdent("function"))
	assert.Equal(t, IN, LookupIdent("in"))
	assert.Equal(t, NAME, LookupIdent("plus"))
	assert.Equal(t, NAME, LookupIdent("Function"), "keywords are case-sensitive")
}
