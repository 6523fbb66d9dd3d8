package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/token"
)

var (
	interiorColor = color.New(color.FgCyan)
	leafColor     = color.New(color.FgGreen)
)

// Print writes an indented dump of the tree to w.
func Print(w io.Writer, n *Node) error {
	return printLevel(w, n, "")
}

func printLevel(w io.Writer, n *Node, prefix string) error {
	if n == nil {
		_, err := fmt.Fprintln(w, prefix+":nil")
		return err
	}

	label := fmt.Sprintf("%-40s", prefix+n.Kind.String())
	if n.IsLeaf() {
		_, err := fmt.Fprintf(w, "%s %s\n", leafColor.Sprint(label), n.Value)
		return err
	}

	if _, err := fmt.Fprintln(w, interiorColor.Sprint(strings.TrimRight(label, " "))); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := printLevel(w, c, prefix+"  "); err != nil {
			return err
		}
	}
	return nil
}

// PrintTokens writes one line per token: its kind, padded, then its text.
func PrintTokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		label := fmt.Sprintf("%-20s", tok.Kind.String())
		if _, err := fmt.Fprintf(w, "%s : %s\n", leafColor.Sprint(label), tok.Text); err != nil {
			return err
		}
	}
	return nil
}
