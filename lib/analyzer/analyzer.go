package analyzer

import (
	"errors"
	"fmt"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

var ErrNotProgram = errors.New("tree root is not a Program")

// Stats summarizes a parse tree.
type Stats struct {
	Expressions int            `yaml:"expressions" json:"expressions"`
	Lists       int            `yaml:"lists" json:"lists"`
	Atoms       int            `yaml:"atoms" json:"atoms"`
	MaxDepth    int            `yaml:"maxDepth" json:"maxDepth"`
	Kinds       map[string]int `yaml:"kinds" json:"kinds"`
	Identifiers map[string]int `yaml:"identifiers" json:"identifiers"`
}

// Analyze walks a Program tree. MaxDepth counts list nesting; a program of
// bare atoms has depth zero.
func Analyze(tree *ast.Node) (*Stats, error) {
	if tree == nil {
		return nil, ErrNotProgram
	}
	if tree.Kind != token.Program {
		return nil, fmt.Errorf("%w: got %v", ErrNotProgram, tree.Kind)
	}

	stats := &Stats{
		Expressions: tree.Len(),
		Kinds:       map[string]int{},
		Identifiers: map[string]int{},
	}
	analyzeNode(tree, 0, stats)
	return stats, nil
}

func analyzeNode(n *ast.Node, lists int, stats *Stats) {
	switch n.Kind {
	case token.List:
		lists++
		stats.Lists++
		if lists > stats.MaxDepth {
			stats.MaxDepth = lists
		}
	case token.Atom:
		stats.Atoms++
		leaf := n.Child(0)
		stats.Kinds[leaf.Kind.String()]++
		if leaf.Kind == token.Identifier {
			stats.Identifiers[leaf.Value]++
		}
	}

	for _, c := range n.Children {
		analyzeNode(c, lists, stats)
	}
}
