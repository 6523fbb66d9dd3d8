package lexer

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

// Lexical patterns, in matching priority order.
const (
	WhitespacePattern = `\s+`
	RealPattern       = `[+-]?[0-9]*\.[0-9]+`
	IntegerPattern    = `[+-]?[0-9]+`
	StringPattern     = `"(?:\\"|[^"\n])*"`
	IdentifierPattern = `[^\s"()]+`
	LiteralPattern    = `[()]`
)

// Definition is the lexer definition shared by Tokenize and the declarative
// grammar. Rules are tried in order and the first one matching at the
// current position wins, even if a later rule would match more input.
var Definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: token.Whitespace.String(), Pattern: WhitespacePattern},
	{Name: token.Real.String(), Pattern: RealPattern},
	{Name: token.Integer.String(), Pattern: IntegerPattern},
	{Name: token.String.String(), Pattern: StringPattern},
	{Name: token.Identifier.String(), Pattern: IdentifierPattern},
	{Name: token.Literal.String(), Pattern: LiteralPattern},
})

var kinds = func() map[plexer.TokenType]token.Kind {
	m := map[plexer.TokenType]token.Kind{}
	for name, tt := range Definition.Symbols() {
		if k, ok := token.KindOf(name); ok {
			m[tt] = k
		}
	}
	return m
}()

// ErrBadToken is matched by every LexError.
var ErrBadToken = errors.New("bad token")

// LexError reports input that none of the lexical patterns accept.
type LexError struct {
	Pos plexer.Position
	Msg string
}

func (e *LexError) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%v: %s", ErrBadToken, e.Msg)
	}
	return fmt.Sprintf("%v at %d:%d: %s", ErrBadToken, e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *LexError) Unwrap() error {
	return ErrBadToken
}

func lexError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &LexError{Pos: perr.Position(), Msg: perr.Message()}
	}
	return &LexError{Msg: err.Error()}
}

// Tokenize splits src into tokens, skipping whitespace. It returns either
// every token of the input or an error and no tokens at all.
func Tokenize(src string) ([]token.Token, error) {
	lx, err := Definition.LexString("", src)
	if err != nil {
		return nil, lexError(err)
	}

	tokens := []token.Token{}
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, lexError(err)
		}
		if tok.EOF() {
			break
		}

		kind, ok := kinds[tok.Type]
		if !ok {
			return nil, &LexError{Pos: tok.Pos, Msg: fmt.Sprintf("unknown token %q", tok.Value)}
		}
		if kind == token.Whitespace {
			continue
		}

		tokens = append(tokens, token.Token{Kind: kind, Text: tok.Value})
	}

	return tokens, nil
}

// TokenizeBytes is like Tokenize over a byte slice.
func TokenizeBytes(in []byte) ([]token.Token, error) {
	return Tokenize(string(in))
}
