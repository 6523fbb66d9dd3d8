// Package grammar describes the S-expression language declaratively with
// participle. It shares the lexer definition with lib/lexer and is used to
// print the EBNF and to validate input with positioned diagnostics; the
// parse tree itself comes from lib/parser.
package grammar

import (
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/lexer"
)

type Atom struct {
	Real       *string `parser:"  @Real"`
	Integer    *string `parser:"| @Integer"`
	String     *string `parser:"| @String"`
	Identifier *string `parser:"| @Identifier"`
}

// Value returns whichever alternative matched.
func (a *Atom) Value() string {
	switch {
	case a.Real != nil:
		return *a.Real
	case a.Integer != nil:
		return *a.Integer
	case a.String != nil:
		return *a.String
	case a.Identifier != nil:
		return *a.Identifier
	}
	return ""
}

type List struct {
	Items []*SExpr `parser:"'(' @@* ')'"`
}

type SExpr struct {
	List *List `parser:"  @@"`
	Atom *Atom `parser:"| @@"`
}

type Program struct {
	Exprs []*SExpr `parser:"@@*"`
}

var parser = participle.MustBuild[Program](
	participle.Lexer(lexer.Definition),
	participle.Elide("Whitespace"),
)

// Parser returns the participle parser for the language.
func Parser() *participle.Parser[Program] {
	return parser
}

// EBNF renders the grammar.
func EBNF() string {
	return parser.String()
}

// CheckString validates src. Errors carry the filename, line and column of
// the offending input.
func CheckString(filename, src string) (*Program, error) {
	return parser.ParseString(filename, src)
}

// CheckFile validates the named file.
func CheckFile(filename string) (*Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parser.ParseBytes(filename, src)
}
