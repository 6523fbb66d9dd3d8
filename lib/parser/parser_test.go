package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/lexer"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

func mustParse(t *testing.T, src string, opts ...Option) *ast.Node {
	t.Helper()
	tree, err := ParseString(src, opts...)
	require.NoError(t, err, src)
	require.NotNil(t, tree)
	return tree
}

// seqItems flattens a right-nested Seq into its SExpr elements.
func seqItems(t *testing.T, seq *ast.Node) []*ast.Node {
	t.Helper()
	items := []*ast.Node{}
	for seq != nil {
		require.Equal(t, token.Seq, seq.Kind)
		items = append(items, seq.Child(0))
		seq = seq.Child(1)
	}
	return items
}

func atomValue(t *testing.T, sexpr *ast.Node) string {
	t.Helper()
	require.Equal(t, token.SExpr, sexpr.Kind)
	atom := sexpr.Child(0)
	require.Equal(t, token.Atom, atom.Kind)
	require.Equal(t, 1, atom.Len())
	return atom.Child(0).Value
}

func TestParseEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   \n"} {
		tree := mustParse(t, src)
		assert.Equal(t, token.Program, tree.Kind)
		assert.Equal(t, 0, tree.Len())
	}

	tree, err := Parse(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, tree.Len())
}

func TestParseEmptyList(t *testing.T) {
	tree := mustParse(t, "()")
	require.Equal(t, 1, tree.Len())

	sexpr := tree.Child(0)
	assert.Equal(t, token.SExpr, sexpr.Kind)
	require.Equal(t, 1, sexpr.Len())

	list := sexpr.Child(0)
	assert.Equal(t, token.List, list.Kind)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, token.Token{Kind: token.Literal, Text: "("}, list.Child(0).Token())
	assert.Equal(t, token.Token{Kind: token.Literal, Text: ")"}, list.Child(1).Token())
}

func TestParseNestedList(t *testing.T) {
	tree := mustParse(t, "(+ 3 (* 4 7))")
	require.Equal(t, 1, tree.Len())

	list := tree.Child(0).Child(0)
	require.Equal(t, token.List, list.Kind)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, "(", list.Child(0).Value)
	assert.Equal(t, ")", list.Child(2).Value)

	items := seqItems(t, list.Child(1))
	require.Len(t, items, 3)
	assert.Equal(t, "+", atomValue(t, items[0]))
	assert.Equal(t, token.Identifier, items[0].Child(0).Child(0).Kind)
	assert.Equal(t, "3", atomValue(t, items[1]))
	assert.Equal(t, token.Integer, items[1].Child(0).Child(0).Kind)

	nested := items[2].Child(0)
	require.Equal(t, token.List, nested.Kind)
	assert.Equal(t, "( * 4 7 )", nested.String())

	inner := seqItems(t, nested.Child(1))
	require.Len(t, inner, 3)
	assert.Equal(t, "*", atomValue(t, inner[0]))
	assert.Equal(t, "4", atomValue(t, inner[1]))
	assert.Equal(t, "7", atomValue(t, inner[2]))
}

func TestParseSeqShape(t *testing.T) {
	list := mustParse(t, "(a)").Child(0).Child(0)
	seq := list.Child(1)
	assert.Equal(t, token.Seq, seq.Kind)
	assert.Equal(t, 1, seq.Len())

	list = mustParse(t, "(a b)").Child(0).Child(0)
	seq = list.Child(1)
	require.Equal(t, 2, seq.Len())
	assert.Equal(t, token.SExpr, seq.Child(0).Kind)
	assert.Equal(t, token.Seq, seq.Child(1).Kind)
	assert.Equal(t, 1, seq.Child(1).Len())
}

func TestParseTopLevelExpressions(t *testing.T) {
	tree := mustParse(t, "1 2 3")
	require.Equal(t, 3, tree.Len())
	for i, want := range []string{"1", "2", "3"} {
		assert.Equal(t, want, atomValue(t, tree.Child(i)))
	}

	tree = mustParse(t, `() (define x "y") 3.5`)
	assert.Equal(t, 3, tree.Len())
}

func TestParseRoundTrip(t *testing.T) {
	testCases := []string{
		``,
		`( )`,
		`foo`,
		`1 2 3`,
		`( + 3 ( * 4 7 ) )`,
		`( define foo "bananas" )`,
		`( define foo "Say \"Cheese!\" " )`,
		`( + 3.14 ( * 4 7 ) ) ( ) ( ( ( a ) ) ) -7 .5`,
		`( lambda ( x y ) ( if ( < x y ) x y ) )`,
	}

	for _, src := range testCases {
		tree := mustParse(t, src)
		assert.Equal(t, src, tree.String())
	}
}

func TestParseUnterminated(t *testing.T) {
	testCases := []string{
		`(`,
		`(+ 3 4`,
		`(+ 3.14 (* 4 7)`,
		`((a) (b)`,
		`() (`,
	}

	for _, src := range testCases {
		tree, err := ParseString(src)
		assert.Nil(t, tree, src)
		assert.ErrorIs(t, err, ErrUnexpectedEOF, src)

		var perr *ParseError
		assert.ErrorAs(t, err, &perr, src)
	}
}

func TestParseLexicalFailure(t *testing.T) {
	tree, err := ParseString(`(define foo "bar)`)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, lexer.ErrBadToken)

	var perr *ParseError
	assert.False(t, errors.As(err, &perr))
}

func TestParseStrayCloseParen(t *testing.T) {
	// permissive: the stray literal becomes an atom payload
	tree := mustParse(t, "a )")
	require.Equal(t, 2, tree.Len())
	assert.Equal(t, ")", atomValue(t, tree.Child(1)))
	assert.Equal(t, token.Literal, tree.Child(1).Child(0).Child(0).Kind)

	tree = mustParse(t, "())")
	require.Equal(t, 2, tree.Len())

	for _, src := range []string{"a )", "())", ")"} {
		tree, err := ParseString(src, Strict(true))
		assert.Nil(t, tree, src)
		assert.ErrorIs(t, err, ErrUnexpectedToken, src)

		var perr *ParseError
		require.ErrorAs(t, err, &perr, src)
		assert.Equal(t, ")", perr.Token.Text)
	}

	_, err := ParseString("(a (b) c)", Strict(true))
	assert.NoError(t, err)
}

func TestParseMaxDepth(t *testing.T) {
	_, err := ParseString("(())", MaxDepth(2))
	assert.NoError(t, err)

	_, err = ParseString("((()))", MaxDepth(2))
	assert.ErrorIs(t, err, ErrTooDeep)

	deep := strings.Repeat("(", 50) + strings.Repeat(")", 50)
	_, err = ParseString(deep, MaxDepth(0))
	assert.NoError(t, err)

	deep = strings.Repeat("(", DefaultMaxDepth+1) + strings.Repeat(")", DefaultMaxDepth+1)
	_, err = ParseString(deep)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestParseLongList(t *testing.T) {
	items := make([]string, 10000)
	for i := range items {
		items[i] = "x"
	}
	tree := mustParse(t, "("+strings.Join(items, " ")+")")
	assert.Len(t, tree.Leaves(), len(items)+2)
}

func TestParseCursor(t *testing.T) {
	tokens, err := lexer.Tokenize("(a b) c")
	require.NoError(t, err)

	p := New(tokens)
	tree, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, len(tokens), p.Pos)
	assert.Equal(t, 2, tree.Len())
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("(a")
	assert.EqualError(t, err, "unexpected end of input at token 2")

	_, err = ParseString(")", Strict(true))
	assert.EqualError(t, err, `unexpected token ")" at token 0`)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "prog.lisp")
	require.NoError(t, os.WriteFile(filename, []byte("(define foo 3)\n(+ foo 4)\n"), 0644))

	tree, err := ParseFile(filename)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())

	_, err = ParseFile(filepath.Join(dir, "missing.lisp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func BenchmarkParseString(b *testing.B) {
	src := strings.Repeat(`(define (fact n) (if (< n 2) 1 (* n (fact (- n 1))))) "str" 3.14 `, 50)
	for i := 0; i < b.N; i++ {
		if _, err := ParseString(src); err != nil {
			b.Fatal(err)
		}
	}
}
