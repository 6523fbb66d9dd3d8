package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/grammar"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/lexer"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/parser"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/project"
)

func init() {
	commands = append(commands, func() *cli.Command {
		return &cli.Command{
			Name:      "parse",
			Usage:     "Print the tokens and parse tree of a program",
			Category:  "parse",
			ArgsUsage: "[file]",
			Flags: append(parserFlags(),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Output format: tree or json",
				},
				&cli.BoolFlag{
					Name:    "quiet",
					Aliases: []string{"q"},
					Usage:   "Only print the parse tree",
				},
			),
			Action: parse,
		}
	}, func() *cli.Command {
		return &cli.Command{
			Name:      "tokens",
			Usage:     "Print the tokens of a program",
			Category:  "parse",
			ArgsUsage: "[file]",
			Flags:     parserFlags()[:1],
			Action:    tokens,
		}
	}, func() *cli.Command {
		return &cli.Command{
			Name:      "check",
			Usage:     "Validate a program against the grammar, reporting line and column",
			Category:  "parse",
			ArgsUsage: "[file]",
			Flags:     parserFlags()[:1],
			Action:    check,
		}
	}, func() *cli.Command {
		return &cli.Command{
			Name:     "grammar",
			Usage:    "Print the EBNF grammar",
			Category: "parse",
			Action: func(c *cli.Context) error {
				fmt.Fprintln(c.App.Writer, grammar.EBNF())
				return nil
			},
		}
	})
}

func invalidInput(c *cli.Context, err error) error {
	fmt.Fprintln(c.App.Writer, "Threw an exception on invalid input.")
	return cli.Exit(color.RedString("Error: %s", err), 1)
}

func parse(c *cli.Context) error {
	_, src, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error reading input: %s", err), 1)
	}

	output := config(c).Output
	if c.IsSet("output") {
		output = c.String("output")
	}

	switch output {
	case project.OutputJSON:
		tree, err := parser.ParseString(src, parserOptions(c)...)
		if err != nil {
			return invalidInput(c, err)
		}
		debug.Printf("parsed %d top-level expressions", tree.Len())

		encoder := json.NewEncoder(c.App.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(tree); err != nil {
			return cli.Exit(color.RedString("Error encoding tree: %s", err), 1)
		}
		return nil

	case project.OutputTree:
		return printPipeline(c, src)
	}

	return cli.Exit(color.RedString("Error: unknown output format %q", output), 1)
}

// printPipeline prints the input, its tokens and its parse tree.
func printPipeline(c *cli.Context, src string) error {
	w := c.App.Writer
	quiet := c.Bool("quiet")
	rule := strings.Repeat("-", 50)

	if !quiet {
		fmt.Fprintln(w, strings.Repeat("=", 50))
		fmt.Fprintf(w, "Input: %s\n", src)
		fmt.Fprintln(w, rule)
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return invalidInput(c, err)
	}
	debug.Printf("lexed %d tokens", len(toks))

	if !quiet {
		fmt.Fprintln(w, color.New(color.Bold).Sprint("Tokens"))
		fmt.Fprintln(w, rule)
		if err := ast.PrintTokens(w, toks); err != nil {
			return err
		}
		fmt.Fprintln(w, rule)
	}

	tree, err := parser.Parse(toks, parserOptions(c)...)
	if err != nil {
		return invalidInput(c, err)
	}
	debug.Printf("parsed %d top-level expressions", tree.Len())

	if !quiet {
		fmt.Fprintln(w, color.New(color.Bold).Sprint("Parse Tree"))
		fmt.Fprintln(w, rule)
	}
	if err := ast.Print(w, tree); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(w, rule)
	}
	return nil
}

func tokens(c *cli.Context) error {
	_, src, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error reading input: %s", err), 1)
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return invalidInput(c, err)
	}
	return ast.PrintTokens(c.App.Writer, toks)
}

func check(c *cli.Context) error {
	name, src, err := readSource(c)
	if err != nil {
		return cli.Exit(color.RedString("Error reading input: %s", err), 1)
	}

	prog, err := grammar.CheckString(name, src)
	if err != nil {
		return cli.Exit(color.RedString("%s", err), 1)
	}

	fmt.Fprintln(c.App.Writer, color.GreenString("%s: ok (%d expressions)", name, len(prog.Exprs)))
	return nil
}
