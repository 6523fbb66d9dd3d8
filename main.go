package main

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/parser"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/project"
)

// commands holds the constructors registered by each command file.
var commands []func() *cli.Command

var debug = log.New(io.Discard, "lispish: ", 0)

func newApp() *cli.App {
	cmds := make([]*cli.Command, 0, len(commands))
	for _, cmd := range commands {
		cmds = append(cmds, cmd())
	}

	return &cli.App{
		Name:                   "lispish",
		Usage:                  "Tokenize and parse S-expression programs",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Metadata:               map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory containing " + project.ConfigFile,
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Log debug information to stderr",
			},
		},
		Before:   setup,
		Commands: cmds,
	}
}

func setup(c *cli.Context) error {
	if c.Bool("verbose") {
		debug.SetOutput(c.App.ErrWriter)
	} else {
		debug.SetOutput(io.Discard)
	}

	conf, err := project.Load(c.String("config"))
	if err != nil {
		return cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	c.App.Metadata["config"] = conf
	debug.Printf("config: %+v", conf)

	if c.Bool("no-color") || !conf.Color {
		color.NoColor = true
	}
	return nil
}

func config(c *cli.Context) project.Config {
	if conf, ok := c.App.Metadata["config"].(project.Config); ok {
		return conf
	}
	return project.Default()
}

// parserOptions applies the --strict and --max-depth flags on top of the
// loaded configuration.
func parserOptions(c *cli.Context) []parser.Option {
	conf := config(c)
	if c.IsSet("strict") {
		conf.Strict = c.Bool("strict")
	}
	if c.IsSet("max-depth") {
		conf.MaxDepth = c.Int("max-depth")
	}
	return conf.ParserOptions()
}

func parserFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input-str",
			Aliases: []string{"s"},
			Usage:   "Parse a string instead of a file",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject parentheses in atom position",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Maximum list nesting, 0 for no limit",
		},
	}
}

// readSource returns the input named by --input-str, the first argument,
// or stdin, in that order.
func readSource(c *cli.Context) (string, string, error) {
	if c.IsSet("input-str") {
		return "<input>", c.String("input-str"), nil
	}

	if filename := c.Args().First(); filename != "" && filename != "-" {
		src, err := os.ReadFile(filename)
		if err != nil {
			return "", "", err
		}
		return filename, string(src), nil
	}

	src, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", "", err
	}
	return "<stdin>", string(src), nil
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
