package ast

import (
	"fmt"
	"strings"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

// Node is a parse tree node. Leaves carry a terminal kind and the token
// text; interior nodes carry a nonterminal kind and their children in
// grammar order.
type Node struct {
	Kind     token.Kind `json:"kind"`
	Value    string     `json:"value,omitempty"`
	Children []*Node    `json:"children,omitempty"`
}

// NewLeaf wraps a token as a leaf node.
func NewLeaf(tok token.Token) *Node {
	if !tok.Kind.IsTerminal() {
		panic(fmt.Sprintf("ast: %v is not a terminal kind", tok.Kind))
	}
	return &Node{
		Kind:  tok.Kind,
		Value: tok.Text,
	}
}

// New creates an interior node. Only a Program may be built without
// children.
func New(kind token.Kind, children ...*Node) *Node {
	if kind.IsTerminal() || kind == token.Invalid {
		panic(fmt.Sprintf("ast: %v is not a nonterminal kind", kind))
	}
	if len(children) == 0 && kind != token.Program {
		panic(fmt.Sprintf("ast: %v node needs children", kind))
	}
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		Kind:     kind,
		Children: children,
	}
}

// IsLeaf returns true for nodes created from a token.
func (n *Node) IsLeaf() bool {
	return n.Kind.IsTerminal()
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.Children)
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Token returns the token a leaf was built from.
func (n *Node) Token() token.Token {
	return token.Token{Kind: n.Kind, Text: n.Value}
}

// Walk visits n and its descendants depth-first, left to right. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Leaves returns the leaves under n in source order.
func (n *Node) Leaves() []*Node {
	leaves := []*Node{}
	n.Walk(func(c *Node, _ int) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// String joins the leaf values under n with single spaces.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	leaves := n.Leaves()
	values := make([]string, 0, len(leaves))
	for _, l := range leaves {
		values = append(values, l.Value)
	}
	return strings.Join(values, " ")
}
