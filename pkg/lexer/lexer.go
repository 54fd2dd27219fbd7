package lexer

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"escript/pkg/ast"
	"escript/pkg/errors"
	"escript/pkg/source"
)

// Lexer holds the state of the scanner. It advances a single codepoint
// cursor over the source buffer in one left-to-right pass, consulting the
// shared Context to resolve grammar-position-dependent ambiguities.
type Lexer struct {
	src *source.SourceFile
	ctx *Context

	pos    int // current codepoint offset into the source
	line   int // current 1-based line number
	column int // 0-based codepoint count since the last line break

	prev rune // last codepoint of the most recent token, 0 at start
}

// New creates a Lexer over src bound to the given context.
func New(src *source.SourceFile, ctx *Context) *Lexer {
	return &Lexer{src: src, ctx: ctx, line: 1, column: 0}
}

// ScanAll drains the lexer into an ordered token sequence, stopping before
// the EOF sentinel. The first structural problem halts scanning.
func (l *Lexer) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// char returns the codepoint under the cursor, or 0 at end of input.
func (l *Lexer) char() rune {
	return l.src.At(l.pos)
}

// peek returns the codepoint at the given lookahead distance.
func (l *Lexer) peek(n int) rune {
	return l.src.At(l.pos + n)
}

// advance consumes one codepoint that is not a line break.
func (l *Lexer) advance() {
	l.pos++
	l.column++
}

// advanceLine consumes one line-break codepoint.
func (l *Lexer) advanceLine() {
	l.pos++
	l.line++
	l.column = 0
}

// slice returns the codepoints in [begin, end), clamped.
func (l *Lexer) slice(begin, end int) string {
	s, err := l.src.Slice(begin, end)
	if err != nil {
		// Only reachable with begin > end, which scanning never produces.
		return ""
	}
	return s
}

func (l *Lexer) position(line, column int) errors.Position {
	return errors.Position{Line: line, Column: column, Source: l.src.Name}
}

// Position reports the cursor's current line and column.
func (l *Lexer) Position() errors.Position {
	return l.position(l.line, l.column)
}

// NextToken scans the input and returns the next token. Malformed input
// yields a typed error carrying the offending lexeme and position; there
// is no recovery.
func (l *Lexer) NextToken() (Token, error) {
	tok, err := l.scanToken()
	if err == nil && tok.Type != EOF {
		// Remember the token's final codepoint for the regex/divide
		// decision. Trivia never updates it, so comments between tokens do
		// not disturb the lookback.
		l.prev = l.src.At(l.pos - 1)
	}
	return tok, err
}

func (l *Lexer) scanToken() (Token, error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}

	startLine := l.line
	startCol := l.column

	if l.pos >= l.src.Length() {
		return Token{Type: EOF, Line: startLine, Column: startCol}, nil
	}

	ch := l.char()
	switch {
	case ch == '/':
		if err := l.validate(ch, startLine, startCol); err != nil {
			return Token{}, err
		}
		// The regex/divide ambiguity: look back past trivia to the last
		// consumed significant codepoint. After an identifier-class
		// character, ')' or ']' a slash is a division operator; everywhere
		// else it opens a regular-expression literal.
		if isIdentifierChar(l.prev) || l.prev == ')' || l.prev == ']' {
			return l.readOperator(startLine, startCol)
		}
		return l.readRegExp(startLine, startCol)
	case ch == '\'' || ch == '"':
		if err := l.validate(ch, startLine, startCol); err != nil {
			return Token{}, err
		}
		return l.readString(startLine, startCol)
	case ch == '#':
		if err := l.validate(ch, startLine, startCol); err != nil {
			return Token{}, err
		}
		return l.readPrivateName(startLine, startCol)
	case isDigit(ch), ch == '_' && isDigit(l.peek(1)):
		// A '_' directly followed by a digit is a numeric literal opened
		// by a separator, which readNumber rejects.
		if err := l.validate(ch, startLine, startCol); err != nil {
			return Token{}, err
		}
		return l.readNumber(startLine, startCol)
	case isIdentifierChar(ch):
		return l.readKeywordOrName(startLine, startCol)
	default:
		if err := l.validate(ch, startLine, startCol); err != nil {
			return Token{}, err
		}
		return l.readOperator(startLine, startCol)
	}
}

// skipTrivia consumes whitespace and comments, maintaining line/column
// bookkeeping: a line break increments line and resets column, any other
// codepoint advances column.
func (l *Lexer) skipTrivia() error {
	for l.pos < l.src.Length() {
		ch := l.char()
		switch {
		case isLineBreak(ch):
			l.advanceLine()
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '/' && l.peek(1) == '/':
			l.skipLineComment()
		case ch == '/' && l.peek(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipLineComment reads until the end of the line, leaving the line break
// for skipTrivia.
func (l *Lexer) skipLineComment() {
	for l.pos < l.src.Length() && !isLineBreak(l.char()) {
		l.advance()
	}
}

// skipBlockComment consumes `/*` through `*/`. Reaching end of input first
// is a lexical error.
func (l *Lexer) skipBlockComment() error {
	startLine := l.line
	startCol := l.column
	l.advance() // '/'
	l.advance() // '*'
	for l.pos < l.src.Length() {
		if l.char() == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			return nil
		}
		if isLineBreak(l.char()) {
			l.advanceLine()
		} else {
			l.advance()
		}
	}
	return &errors.LexicalError{
		Position: l.position(startLine, startCol),
		Msg:      "unterminated block comment",
	}
}

// validate rejects any token started while the context expects the name
// following the `function` keyword.
func (l *Lexer) validate(ch rune, line, column int) error {
	if l.ctx.IsFunctionIdentifier {
		return &errors.GrammarStateError{
			Position: l.position(line, column),
			Msg:      fmt.Sprintf("unexpected character %q", string(ch)),
		}
	}
	return nil
}

// readString scans a string literal. A backslash suppresses quote and
// line-break termination for exactly the next codepoint. The emitted token
// carries the raw text (quotes included) and the content (quotes stripped);
// escape sequences are not decoded at this layer.
func (l *Lexer) readString(startLine, startCol int) (Token, error) {
	start := l.pos
	boundary := l.char()
	l.advance() // opening quote

	esc := false
	for l.pos < l.src.Length() && (l.char() != boundary || esc) && !isLineBreak(l.char()) {
		if esc {
			esc = false
		} else if l.char() == '\\' {
			esc = true
		}
		l.advance()
	}

	if l.pos >= l.src.Length() || l.char() != boundary {
		return Token{}, &errors.LexicalError{
			Position: l.position(l.line, l.column),
			Msg:      fmt.Sprintf("unterminated string literal: unexpected %s", describeChar(l.char())),
		}
	}
	l.advance() // closing quote

	raw := l.slice(start, l.pos)
	content := l.slice(start+1, l.pos-1)
	return Token{
		Type:    STRING,
		Literal: raw,
		Line:    startLine,
		Column:  startCol,
		Content: content,
	}, nil
}

// readNumber scans a numeric literal. The radix is determined by the
// 2-codepoint prefix (0b binary, 0x hex, 0<digit> legacy octal, else
// decimal). Digits and single, non-repeated '_' separators are consumed;
// an immediately following 'n' turns the literal into a bigint.
//
// Note the radix is tagged only: the digit run is always consumed with the
// decimal digit class and decoded base-10, also for non-decimal literals.
func (l *Lexer) readNumber(startLine, startCol int) (Token, error) {
	start := l.pos
	radix := RadixDecimal

	if l.char() == '0' {
		switch {
		case l.peek(1) == 'b':
			radix = RadixBinary
			l.advance()
			l.advance()
		case l.peek(1) == 'x':
			radix = RadixHex
			l.advance()
			l.advance()
		case isDigit(l.peek(1)):
			radix = RadixOctal
			l.advance()
		}
	}

	// A separator may not open the numeric content.
	if l.char() == '_' {
		return Token{}, &errors.LexicalError{
			Position: l.position(l.line, l.column),
			Msg:      "numeric separators are not allowed at the first of numeric literals",
		}
	}

	contentStart := l.pos
	separate := false
	for l.pos < l.src.Length() && (isDigit(l.char()) || l.char() == '_') {
		if l.char() == '_' {
			if separate {
				return Token{}, &errors.LexicalError{
					Position: l.position(l.line, l.column),
					Msg:      "only one underscore is allowed as numeric separator",
				}
			}
			separate = true
		} else {
			separate = false
		}
		l.advance()
	}

	content := l.slice(contentStart, l.pos)
	digits := strings.ReplaceAll(content, "_", "")

	if l.char() == 'n' {
		l.advance() // bigint suffix
		raw := l.slice(start, l.pos)
		value, ok := new(big.Int).SetString(digits, 10)
		if !ok {
			return Token{}, &errors.LexicalError{
				Position: l.position(startLine, startCol),
				Msg:      fmt.Sprintf("invalid bigint literal %q", raw),
			}
		}
		// The payload contract is a 128-bit signed integer.
		if value.BitLen() > 127 {
			return Token{}, &errors.LexicalError{
				Position: l.position(startLine, startCol),
				Msg:      fmt.Sprintf("bigint literal %q overflows 128 bits", raw),
			}
		}
		return Token{
			Type:    BIGINT,
			Literal: raw,
			Line:    startLine,
			Column:  startCol,
			BigInt:  value,
			Radix:   radix,
		}, nil
	}

	raw := l.slice(start, l.pos)
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		lexErr := &errors.LexicalError{
			Position: l.position(startLine, startCol),
			Msg:      fmt.Sprintf("invalid numeric literal %q", raw),
		}
		return Token{}, lexErr.CausedBy(err)
	}
	return Token{
		Type:    NUMBER,
		Literal: raw,
		Line:    startLine,
		Column:  startCol,
		Number:  value,
		Radix:   radix,
	}, nil
}

// readRegExp scans a regular-expression literal from the opening '/' to
// the next unescaped '/', with the same escape discipline as strings.
// After the closing '/' at most one modifier codepoint (i or g) is
// consumed.
func (l *Lexer) readRegExp(startLine, startCol int) (Token, error) {
	start := l.pos
	l.advance() // opening '/'

	esc := false
	for l.pos < l.src.Length() && (l.char() != '/' || esc) && !isLineBreak(l.char()) {
		if esc {
			esc = false
		} else if l.char() == '\\' {
			esc = true
		}
		l.advance()
	}

	if l.pos >= l.src.Length() || l.char() != '/' {
		return Token{}, &errors.LexicalError{
			Position: l.position(l.line, l.column),
			Msg:      fmt.Sprintf("unterminated regular expression: unexpected %s", describeChar(l.char())),
		}
	}
	bodyEnd := l.pos
	l.advance() // closing '/'

	flag := FlagNone
	switch l.char() {
	case 'i':
		flag = FlagIgnoreCase
		l.advance()
	case 'g':
		flag = FlagGlobal
		l.advance()
	}

	raw := l.slice(start, l.pos)
	body := l.slice(start+1, bodyEnd)
	return Token{
		Type:    REGEXP,
		Literal: raw,
		Line:    startLine,
		Column:  startCol,
		Pattern: body,
		Flag:    flag,
	}, nil
}

// readPrivateName scans `#` followed by zero or more identifier-class
// codepoints. A bare `#` yields a private name with empty content.
func (l *Lexer) readPrivateName(startLine, startCol int) (Token, error) {
	start := l.pos
	l.advance() // '#'
	for l.pos < l.src.Length() && isIdentifierChar(l.char()) {
		l.advance()
	}
	raw := l.slice(start, l.pos)
	content := l.slice(start+1, l.pos)
	return Token{
		Type:    PRIVATE_NAME,
		Literal: raw,
		Line:    startLine,
		Column:  startCol,
		Content: content,
	}, nil
}

// readKeywordOrName scans an identifier-class run, classifies it against
// the keyword table, and updates the context: `function` arms the
// function-identifier flag (and pushes a stub function expression onto an
// open expression sink); a bare name clears the flag and logs a
// placeholder declaration keyed by that name; any other keyword seen while
// the flag is armed is a grammar-state error.
func (l *Lexer) readKeywordOrName(startLine, startCol int) (Token, error) {
	start := l.pos
	for l.pos < l.src.Length() && isIdentifierChar(l.char()) {
		l.advance()
	}
	ident := l.slice(start, l.pos)
	tokType := LookupIdent(ident)

	switch tokType {
	case NAME:
		l.ctx.IsFunctionIdentifier = false
		if l.ctx.Statements != nil {
			id := ast.NewIdentifier(ident,
				ast.NewPosition(startLine, startCol),
				ast.NewPosition(l.line, l.column))
			*l.ctx.Statements = append(*l.ctx.Statements, ast.NewFunctionDeclaration(id))
		}
	case FUNCTION:
		if l.ctx.Expressions != nil {
			*l.ctx.Expressions = append(*l.ctx.Expressions, ast.NewFunctionExpression())
		}
		l.ctx.IsFunctionIdentifier = true
	default:
		if l.ctx.IsFunctionIdentifier {
			return Token{}, &errors.GrammarStateError{
				Position: l.position(startLine, startCol),
				Msg:      fmt.Sprintf("unexpected token %q", ident),
			}
		}
	}

	return Token{
		Type:    tokType,
		Literal: ident,
		Line:    startLine,
		Column:  startCol,
		Content: ident,
	}, nil
}

// readOperator scans a punctuator by longest-match: the 3-codepoint window
// is tried first, then 2, then 1. Failing all three windows is a lexical
// error.
func (l *Lexer) readOperator(startLine, startCol int) (Token, error) {
	for n := 3; n >= 1; n-- {
		window := l.slice(l.pos, l.pos+n)
		if window == "" {
			continue
		}
		if tokType, ok := punctuators[window]; ok {
			for range window {
				l.advance()
			}
			return Token{
				Type:    tokType,
				Literal: window,
				Line:    startLine,
				Column:  startCol,
			}, nil
		}
	}
	return Token{}, &errors.LexicalError{
		Position: l.position(startLine, startCol),
		Msg:      fmt.Sprintf("unexpected character %q", string(l.char())),
	}
}

// --- character classes ---

// isIdentifierChar reports whether ch belongs to the identifier class
// [0-9A-Za-z$_].
func isIdentifierChar(ch rune) bool {
	return ch == '$' || ch == '_' ||
		('0' <= ch && ch <= '9') ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z')
}

// isDigit checks if the character is a decimal digit.
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isLineBreak checks if the character terminates a physical line.
func isLineBreak(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

// describeChar renders a codepoint for error messages, making line breaks
// and end of input visible.
func describeChar(ch rune) string {
	switch ch {
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case 0:
		return "end of input"
	default:
		return fmt.Sprintf("%q", string(ch))
	}
}
