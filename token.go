package boolfn

import (
	"fmt"
	"strings"
)

// --- Token alphabet --------------------------------------------------------

// Kind is a category type for a Token.
type Kind int8

// Token kinds. Binary connectives come first, followed by negation, constants,
// grouping markers and named variables.
const (
	And       Kind = iota // ∧
	Or                    // ∨
	Xor                   // ⊕
	Eq                    // ≡
	ImpliesAB             // →
	ImpliesBA             // ←
	Nand                  // ⊼
	Nor                   // ⊽
	Not                   // !
	One                   // 1
	Zero                  // 0
	Open                  // (
	Close                 // )
	Var                   // a
)

var kindSymbols = [...]string{"∧", "∨", "⊕", "≡", "→", "←", "⊼", "⊽", "!", "1", "0", "(", ")", "var"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindSymbols) {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindSymbols[k]
}

// Token is an element of a boolean expression. Tokens are values: two tokens
// are equal if they have equal kinds and, for variables, equal names.
//
// Name is only meaningful for tokens of kind Var.
type Token struct {
	Kind Kind
	Name string
}

// Pre-defined tokens for all kinds except Var.
var (
	AND  = Token{Kind: And}
	OR   = Token{Kind: Or}
	XOR  = Token{Kind: Xor}
	EQ   = Token{Kind: Eq}
	IMPL = Token{Kind: ImpliesAB}
	RIMP = Token{Kind: ImpliesBA}
	NAND = Token{Kind: Nand}
	NOR  = Token{Kind: Nor}
	NOT  = Token{Kind: Not}
	ONE  = Token{Kind: One}
	ZERO = Token{Kind: Zero}
	OPEN = Token{Kind: Open}
	CLOS = Token{Kind: Close}
)

// V creates a variable token.
func V(name string) Token {
	return Token{Kind: Var, Name: name}
}

// IsBinary is a predicate: is t one of the arity-two connectives?
func (t Token) IsBinary() bool {
	return t.Kind <= Nor
}

// IsOperand is a predicate: is t a variable or a constant?
func (t Token) IsOperand() bool {
	return t.Kind == Var || t.Kind == One || t.Kind == Zero
}

func (t Token) String() string {
	if t.Kind == Var {
		return t.Name
	}
	return t.Kind.String()
}

// Tokens is a sequence of tokens, i.e. an expression in infix notation.
type Tokens []Token

// String renders an expression with connectives separated by blanks.
//
//    ¬a ∧ (b ∨ c)  =>  "!a ∧ (b ∨ c)"
//
func (ts Tokens) String() string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 && t.Kind != Close && ts[i-1].Kind != Open && ts[i-1].Kind != Not {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Equal compares two token sequences element by element.
func (ts Tokens) Equal(other Tokens) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}
	return true
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the position of a token in an input text.
// A span denotes a start position and the position just behind the end, both
// as byte offsets.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
