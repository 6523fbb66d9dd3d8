package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/analyzer"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/luatree"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/parser"
)

func init() {
	commands = append(commands, func() *cli.Command {
		return &cli.Command{
			Name:      "stats",
			Usage:     "Print statistics about a program as YAML",
			Category:  "analyze",
			ArgsUsage: "[file]",
			Flags:     parserFlags(),
			Action:    stats,
		}
	}, func() *cli.Command {
		return &cli.Command{
			Name:  "lua",
			Usage: "Run a Lua script against the parse tree",
			Description: "The script sees the tree as the global 'tree'. Leaves are" +
				"\n{kind=..., value=...} tables, other nodes {kind=..., children={...}}.",
			Category:  "analyze",
			ArgsUsage: "[file]",
			Flags: append(parserFlags(),
				&cli.StringFlag{
					Name:    "script",
					Aliases: []string{"f"},
					Usage:   "Lua file to run",
				},
				&cli.StringFlag{
					Name:    "eval",
					Aliases: []string{"e"},
					Usage:   "Lua source to run",
				},
			),
			Action: runLua,
		}
	})
}

func parseSource(c *cli.Context) (*ast.Node, error) {
	_, src, err := readSource(c)
	if err != nil {
		return nil, cli.Exit(color.RedString("Error reading input: %s", err), 1)
	}

	tree, err := parser.ParseString(src, parserOptions(c)...)
	if err != nil {
		return nil, invalidInput(c, err)
	}
	debug.Printf("parsed %d top-level expressions", tree.Len())
	return tree, nil
}

func stats(c *cli.Context) error {
	tree, err := parseSource(c)
	if err != nil {
		return err
	}

	s, err := analyzer.Analyze(tree)
	if err != nil {
		return cli.Exit(color.RedString("Error analyzing tree: %s", err), 1)
	}

	encoder := yaml.NewEncoder(c.App.Writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return cli.Exit(color.RedString("Error encoding stats: %s", err), 1)
	}
	return encoder.Close()
}

func runLua(c *cli.Context) error {
	var name, script string
	switch {
	case c.IsSet("eval"):
		name, script = "<eval>", c.String("eval")
	case c.IsSet("script"):
		name = c.String("script")
		src, err := os.ReadFile(name)
		if err != nil {
			return cli.Exit(color.RedString("Error reading script: %s", err), 1)
		}
		script = string(src)
	default:
		return cli.Exit(color.RedString("Error: one of --script or --eval is required"), 1)
	}

	tree, err := parseSource(c)
	if err != nil {
		return err
	}

	if err := luatree.Run(tree, name, script, c.App.Writer); err != nil {
		return cli.Exit(color.RedString("Error running script: %s", err), 1)
	}
	return nil
}
