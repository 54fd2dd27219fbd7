package lexer

import (
	"math/big"

	"escript/pkg/errors"
)

// TokenType represents the type of a token.
type TokenType string

// --- Token Types ---
const (
	// Special
	EOF TokenType = "EOF" // End Of File

	// Identifiers + Literals
	NAME         TokenType = "NAME"         // plus, variableName
	NUMBER       TokenType = "NUMBER"       // 123, 0x1f, 1_000
	BIGINT       TokenType = "BIGINT"       // 123n
	STRING       TokenType = "STRING"       // "hello world"
	REGEXP       TokenType = "REGEXP"       // /ab+c/i
	PRIVATE_NAME TokenType = "PRIVATE_NAME" // #name

	// Keywords
	VAR        TokenType = "VAR"
	LET        TokenType = "LET"
	CONST      TokenType = "CONST"
	FUNCTION   TokenType = "FUNCTION"
	RETURN     TokenType = "RETURN"
	FOR        TokenType = "FOR"
	OF         TokenType = "OF"
	DO         TokenType = "DO"
	WHILE      TokenType = "WHILE"
	BREAK      TokenType = "BREAK"
	CONTINUE   TokenType = "CONTINUE"
	SWITCH     TokenType = "SWITCH"
	CASE       TokenType = "CASE"
	THROW      TokenType = "THROW"
	TRY        TokenType = "TRY"
	CATCH      TokenType = "CATCH"
	FINALLY    TokenType = "FINALLY"
	IF         TokenType = "IF"
	ELSE       TokenType = "ELSE"
	NEW        TokenType = "NEW"
	THIS       TokenType = "THIS"
	SUPER      TokenType = "SUPER"
	DELETE     TokenType = "DELETE"
	CLASS      TokenType = "CLASS"
	EXTENDS    TokenType = "EXTENDS"
	INSTANCEOF TokenType = "INSTANCEOF"
	TYPEOF     TokenType = "TYPEOF"
	IMPORT     TokenType = "IMPORT"
	EXPORT     TokenType = "EXPORT"
	DEFAULT    TokenType = "DEFAULT"
	NULL       TokenType = "NULL"
	UNDEFINED  TokenType = "UNDEFINED"
	TRUE       TokenType = "TRUE"
	FALSE      TokenType = "FALSE"
	VOID       TokenType = "VOID"
	IN         TokenType = "IN"

	// Comparison Operators
	EQ            TokenType = "=="
	STRICT_EQ     TokenType = "==="
	NOT_EQ        TokenType = "!="
	STRICT_NOT_EQ TokenType = "!=="
	LT            TokenType = "<"
	LE            TokenType = "<="
	GT            TokenType = ">"
	GE            TokenType = ">="

	// Arithmetic Operators
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"

	// Assignment Operators
	ASSIGN          TokenType = "="
	PLUS_ASSIGN     TokenType = "+="
	MINUS_ASSIGN    TokenType = "-="
	ASTERISK_ASSIGN TokenType = "*="
	SLASH_ASSIGN    TokenType = "/="
	COALESCE_ASSIGN TokenType = "??="

	// Brackets
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"

	// Misc Punctuators
	DOT          TokenType = "."
	QUESTION_DOT TokenType = "?."
	SEMICOLON    TokenType = ";"
	COMMA        TokenType = ","
	COLON        TokenType = ":"
	QUESTION     TokenType = "?"
	COALESCE     TokenType = "??"
	BANG         TokenType = "!"
	TILDE        TokenType = "~"
	LOGICAL_OR   TokenType = "||"
	PIPE         TokenType = "|"
	LOGICAL_AND  TokenType = "&&"
	AMPERSAND    TokenType = "&"
	INC          TokenType = "++"
	DEC          TokenType = "--"
	ARROW        TokenType = "=>"
)

var keywords = map[string]TokenType{
	"var":        VAR,
	"let":        LET,
	"const":      CONST,
	"function":   FUNCTION,
	"return":     RETURN,
	"for":        FOR,
	"of":         OF,
	"do":         DO,
	"while":      WHILE,
	"break":      BREAK,
	"continue":   CONTINUE,
	"switch":     SWITCH,
	"case":       CASE,
	"throw":      THROW,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"if":         IF,
	"else":       ELSE,
	"new":        NEW,
	"this":       THIS,
	"super":      SUPER,
	"delete":     DELETE,
	"class":      CLASS,
	"extends":    EXTENDS,
	"instanceof": INSTANCEOF,
	"typeof":     TYPEOF,
	"import":     IMPORT,
	"export":     EXPORT,
	"default":    DEFAULT,
	"null":       NULL,
	"undefined":  UNDEFINED,
	"true":       TRUE,
	"false":      FALSE,
	"void":       VOID,
	"in":         IN,
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return NAME
}

// punctuators is the fixed operator/punctuator table. Scanning tries the
// 3-codepoint window first, then 2, then 1; the first match wins.
var punctuators = map[string]TokenType{
	"==":  EQ,
	"===": STRICT_EQ,
	"!=":  NOT_EQ,
	"!==": STRICT_NOT_EQ,
	"<":   LT,
	"<=":  LE,
	">":   GT,
	">=":  GE,

	"+": PLUS,
	"-": MINUS,
	"*": ASTERISK,
	"/": SLASH,
	"%": PERCENT,

	"=":   ASSIGN,
	"+=":  PLUS_ASSIGN,
	"-=":  MINUS_ASSIGN,
	"*=":  ASTERISK_ASSIGN,
	"/=":  SLASH_ASSIGN,
	"??=": COALESCE_ASSIGN,

	"(": LPAREN,
	")": RPAREN,
	"[": LBRACKET,
	"]": RBRACKET,
	"{": LBRACE,
	"}": RBRACE,

	".":  DOT,
	"?.": QUESTION_DOT,
	";":  SEMICOLON,
	",":  COMMA,
	":":  COLON,
	"?":  QUESTION,
	"??": COALESCE,
	"!":  BANG,
	"~":  TILDE,
	"||": LOGICAL_OR,
	"|":  PIPE,
	"&&": LOGICAL_AND,
	"&":  AMPERSAND,
	"++": INC,
	"--": DEC,
	"=>": ARROW,
}

// Radix is the numeric base a literal was written in, determined by its
// prefix. The tag is independent of decoding (see the notes on numeric
// decoding in the lexer).
type Radix int

const (
	RadixBinary  Radix = 2
	RadixOctal   Radix = 8
	RadixDecimal Radix = 10
	RadixHex     Radix = 16
)

func (r Radix) String() string {
	switch r {
	case RadixBinary:
		return "binary"
	case RadixOctal:
		return "octal"
	case RadixHex:
		return "hex"
	default:
		return "decimal"
	}
}

// RegExpFlag is the optional single modifier of a regular-expression
// literal.
type RegExpFlag string

const (
	FlagNone       RegExpFlag = ""
	FlagIgnoreCase RegExpFlag = "i"
	FlagGlobal     RegExpFlag = "g"
)

// Token represents a lexical token. Exactly one payload group is
// meaningful, selected by Type; Literal always holds the raw source text
// and Line/Column the token's start position.
type Token struct {
	Type    TokenType
	Literal string // The actual text of the token (lexeme)
	Line    int    // 1-based line number where the token starts
	Column  int    // 0-based column (codepoint index) where the token starts

	Number  float64    // NUMBER: decoded 64-bit float
	BigInt  *big.Int   // BIGINT: decoded integer, range-checked to 128-bit signed
	Radix   Radix      // NUMBER, BIGINT
	Pattern string     // REGEXP: body without delimiters or modifier
	Flag    RegExpFlag // REGEXP: optional single modifier
	Content string     // STRING (quotes stripped), NAME, PRIVATE_NAME (# stripped)
}

// Pos returns the token's start position for diagnostics.
func (t Token) Pos() errors.Position {
	return errors.Position{Line: t.Line, Column: t.Column}
}
