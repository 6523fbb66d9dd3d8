package parser

import (
	"os"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/lexer"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

// DefaultMaxDepth bounds list nesting unless MaxDepth says otherwise.
const DefaultMaxDepth = 10000

// Options tune the parser. The zero value is permissive with no depth
// limit; use the Option helpers to get the defaults.
type Options struct {
	Strict   bool
	MaxDepth int
}

type Option func(*Options)

// Strict makes the parser reject parentheses in atom position and
// mismatched list terminators instead of building a tree from them.
func Strict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// MaxDepth limits list nesting. Zero or less disables the limit.
func MaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// Parser walks a token sequence with a single forward cursor.
type Parser struct {
	Tokens []token.Token
	Pos    int

	opts  Options
	depth int
}

func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{
		Tokens: tokens,
		opts:   Options{MaxDepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Parse builds the Program node for tokens.
func Parse(tokens []token.Token, opts ...Option) (*ast.Node, error) {
	return New(tokens, opts...).Parse()
}

// ParseString tokenizes and parses src. Lexical failures match
// lexer.ErrBadToken, grammar failures are *ParseError values.
func ParseString(src string, opts ...Option) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts...)
}

// ParseFile reads and parses the named file.
func ParseFile(filename string, opts ...Option) (*ast.Node, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseString(string(src), opts...)
}

// Parse consumes every remaining token and returns the Program node.
func (p *Parser) Parse() (*ast.Node, error) {
	return p.parseProgram()
}

func (p *Parser) errorf(err error) error {
	pe := &ParseError{Pos: p.Pos, Err: err}
	if p.Pos < len(p.Tokens) {
		pe.Token = p.Tokens[p.Pos]
	}
	return pe
}

// peek returns the token i positions past the cursor.
func (p *Parser) peek(i int) (token.Token, error) {
	if p.Pos+i >= len(p.Tokens) {
		return token.Token{}, &ParseError{Pos: p.Pos + i, Err: ErrUnexpectedEOF}
	}
	return p.Tokens[p.Pos+i], nil
}

// next consumes the token under the cursor as a leaf.
func (p *Parser) next() (*ast.Node, error) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	p.Pos++
	return ast.NewLeaf(tok), nil
}

// Program ::= { SExpr }
func (p *Parser) parseProgram() (*ast.Node, error) {
	children := []*ast.Node{}
	for p.Pos < len(p.Tokens) {
		expr, err := p.parseSExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, expr)
	}
	return ast.New(token.Program, children...), nil
}

// SExpr ::= Atom | List
func (p *Parser) parseSExpr() (*ast.Node, error) {
	tok, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	var child *ast.Node
	if tok.IsOpen() {
		child, err = p.parseList()
	} else {
		child, err = p.parseAtom()
	}
	if err != nil {
		return nil, err
	}
	return ast.New(token.SExpr, child), nil
}

// List ::= "(" ")" | "(" Seq ")"
func (p *Parser) parseList() (*ast.Node, error) {
	if p.opts.MaxDepth > 0 && p.depth >= p.opts.MaxDepth {
		return nil, p.errorf(ErrTooDeep)
	}
	p.depth++
	defer func() { p.depth-- }()

	second, err := p.peek(1)
	if err != nil {
		return nil, err
	}

	open, _ := p.next() // "("
	if second.IsClose() {
		closing, _ := p.next() // ")"
		return ast.New(token.List, open, closing), nil
	}

	seq, err := p.parseSeq()
	if err != nil {
		return nil, err
	}

	if p.opts.Strict {
		if tok, err := p.peek(0); err == nil && !tok.IsClose() {
			return nil, p.errorf(ErrUnexpectedToken)
		}
	}
	closing, err := p.next() // ")"
	if err != nil {
		return nil, err
	}
	return ast.New(token.List, open, seq, closing), nil
}

// Seq ::= SExpr Seq | SExpr
//
// Elements are read in a loop and folded from the right, which yields the
// same right-nested tree as the recursive rule.
func (p *Parser) parseSeq() (*ast.Node, error) {
	exprs := []*ast.Node{}
	for {
		expr, err := p.parseSExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)

		tok, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		if tok.IsClose() {
			break
		}
	}

	seq := ast.New(token.Seq, exprs[len(exprs)-1])
	for i := len(exprs) - 2; i >= 0; i-- {
		seq = ast.New(token.Seq, exprs[i], seq)
	}
	return seq, nil
}

// Atom ::= Identifier | Integer | Real | String
func (p *Parser) parseAtom() (*ast.Node, error) {
	if p.opts.Strict {
		if tok, err := p.peek(0); err == nil && tok.Is(token.Literal) {
			return nil, p.errorf(ErrUnexpectedToken)
		}
	}

	value, err := p.next()
	if err != nil {
		return nil, err
	}
	return ast.New(token.Atom, value), nil
}
