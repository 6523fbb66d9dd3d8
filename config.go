package main

import (
	"fmt"
	"path"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/project"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/util"
)

func init() {
	commands = append(commands, func() *cli.Command {
		return &cli.Command{
			Name:     "init",
			Usage:    "Write a " + project.ConfigFile + " to the config directory",
			Category: "config",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Accept defaults and overwrite an existing file",
				},
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Enable strict parsing",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Default output format: tree or json",
				},
			},
			Action: initConfig,
		}
	})
}

func initConfig(c *cli.Context) error {
	in, out := c.App.Reader, c.App.Writer
	yes := c.Bool("yes")

	conf := project.Default()
	switch {
	case c.IsSet("strict"):
		conf.Strict = c.Bool("strict")
	case !yes:
		conf.Strict = util.PromptYN(in, out, "Reject stray parentheses (strict mode)?", conf.Strict)
	}
	switch {
	case c.IsSet("output"):
		conf.Output = c.String("output")
	case !yes:
		conf.Output = util.PromptString(in, out, "Default output (tree|json)", conf.Output)
	}

	if err := conf.Validate(); err != nil {
		return cli.Exit(color.RedString("Error: %s", err), 1)
	}

	filename := path.Join(c.String("config"), project.ConfigFile)
	saved, err := conf.Save(filename, yes, in, out)
	if err != nil {
		return cli.Exit(color.RedString("Error writing config: %s", err), 1)
	}
	if saved {
		fmt.Fprintln(out, color.GreenString("Wrote %s", filename))
	} else {
		color.New(color.FgYellow).Fprintf(out, "Kept existing %s\n", filename)
	}
	return nil
}
