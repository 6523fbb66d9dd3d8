package parser

import (
	"errors"
	"fmt"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTooDeep         = errors.New("nesting too deep")
)

// ParseError is a grammar violation at token index Pos. Token is the zero
// value when the input ended early.
type ParseError struct {
	Pos   int
	Token token.Token
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token.Kind == token.Invalid {
		return fmt.Sprintf("%v at token %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v %q at token %d", e.Err, e.Token.Text, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
