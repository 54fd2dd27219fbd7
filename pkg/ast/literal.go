package ast

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/dlclark/regexp2"
)

// LiteralValue is the closed set of payloads a Literal can carry:
// string, boolean, null, number, bigint, or a compiled regular expression.
type LiteralValue interface {
	literalValue()
	String() string
}

// StringValue is a string literal payload. The content is the raw text
// between the quotes; escape sequences are not decoded at this layer.
type StringValue struct {
	Value string
}

func (v StringValue) literalValue()  {}
func (v StringValue) String() string { return strconv.Quote(v.Value) }

// BooleanValue is a true/false payload.
type BooleanValue struct {
	Value bool
}

func (v BooleanValue) literalValue()  {}
func (v BooleanValue) String() string { return strconv.FormatBool(v.Value) }

// NullValue is the null payload.
type NullValue struct{}

func (v NullValue) literalValue()  {}
func (v NullValue) String() string { return "null" }

// NumberValue is a 64-bit float payload.
type NumberValue struct {
	Value float64
}

func (v NumberValue) literalValue()  {}
func (v NumberValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// BigIntValue is a big-integer payload, range-checked to 128-bit signed
// at construction time by the lexer.
type BigIntValue struct {
	Value *big.Int
}

func (v BigIntValue) literalValue() {}
func (v BigIntValue) String() string {
	if v.Value == nil {
		return "0n"
	}
	return v.Value.String() + "n"
}

// RegExpValue is a regular-expression payload compiled in ECMAScript mode.
type RegExpValue struct {
	Pattern string
	Flags   string
	RegExp  *regexp2.Regexp
}

func (v RegExpValue) literalValue()  {}
func (v RegExpValue) String() string { return "/" + v.Pattern + "/" + v.Flags }

// NewRegExpValue compiles pattern under ECMAScript semantics. Supported
// flags are "i" (case-insensitive) and "g" (global); "g" affects matching
// iteration, not compilation, so it is carried but adds no option.
func NewRegExpValue(pattern, flags string) (RegExpValue, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'g':
			// carried on the value only
		default:
			return RegExpValue{}, fmt.Errorf("unsupported regexp flag %q", string(f))
		}
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return RegExpValue{}, err
	}
	return RegExpValue{Pattern: pattern, Flags: flags, RegExp: re}, nil
}

// Literal is a literal expression node.
type Literal struct {
	Location SourceLocation
	Value    LiteralValue
}

func (l *Literal) Kind() NodeKind       { return KindLiteral }
func (l *Literal) Loc() *SourceLocation { return &l.Location }
func (l *Literal) String() string {
	if l.Value == nil {
		return "<nil literal>"
	}
	return l.Value.String()
}
func (l *Literal) expressionNode()  {}
func (l *Literal) propertyKeyNode() {}
