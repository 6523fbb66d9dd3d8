package token

import (
	"fmt"
)

// Kind classifies lexemes and parse tree nodes.
type Kind uint8

// Terminal kinds come first, followed by the grammar nonterminals.
const (
	Invalid Kind = iota

	Whitespace
	Identifier
	Integer
	Real
	String
	Literal // a single "(" or ")"

	Program
	SExpr
	List
	Seq
	Atom
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	Whitespace: "Whitespace",
	Identifier: "Identifier",
	Integer:    "Integer",
	Real:       "Real",
	String:     "String",
	Literal:    "Literal",
	Program:    "Program",
	SExpr:      "SExpr",
	List:       "List",
	Seq:        "Seq",
	Atom:       "Atom",
}

func (k Kind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[Invalid]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsTerminal returns true for kinds produced by the lexer.
func (k Kind) IsTerminal() bool {
	return k >= Whitespace && k <= Literal
}

// KindOf looks a kind up by name.
func KindOf(name string) (Kind, bool) {
	for k, v := range kindNames {
		if v == name && k != Invalid {
			return k, true
		}
	}
	return Invalid, false
}

// Token is a classified lexeme. Text is the exact matched input; string
// tokens keep their quotes and escapes.
type Token struct {
	Kind Kind
	Text string
}

// Is returns true if the token is of the given kind
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsOpen reports whether t is the "(" literal.
func (t Token) IsOpen() bool {
	return t.Kind == Literal && t.Text == "("
}

// IsClose reports whether t is the ")" literal.
func (t Token) IsClose() bool {
	return t.Kind == Literal && t.Text == ")"
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.Kind, t.Text)
}
