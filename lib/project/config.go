package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/parser"
	"github.com/kris-lovins/Scheme-Tokenizer-Parser/util"
)

// ConfigFile is the name looked up in the config directory.
const ConfigFile = "lispish.yaml"

const (
	OutputTree = "tree"
	OutputJSON = "json"
)

type Config struct {
	Strict   bool   `yaml:"strict"`
	MaxDepth int    `yaml:"maxDepth"`
	Color    bool   `yaml:"color"`
	Output   string `yaml:"output"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var c Config
	c.CreateDefault()
	return c
}

func (c *Config) CreateDefault() {
	c.Strict = false
	c.MaxDepth = parser.DefaultMaxDepth
	c.Color = true
	c.Output = OutputTree
}

// Validate checks field values after decoding.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTree, OutputJSON:
	default:
		return fmt.Errorf("invalid output %q: want %q or %q", c.Output, OutputTree, OutputJSON)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid maxDepth %d", c.MaxDepth)
	}
	return nil
}

// ParserOptions translates the configuration for lib/parser.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.Strict(c.Strict),
		parser.MaxDepth(c.MaxDepth),
	}
}

// Save writes the configuration to filepath. An existing file is replaced
// only when overwrite is set or the user confirms on in/out.
func (c *Config) Save(filepath string, overwrite bool, in io.Reader, out io.Writer) (bool, error) {
	if _, err := os.Stat(filepath); !os.IsNotExist(err) {
		if !overwrite && !util.PromptYN(in, out, filepath+" already exists. Overwrite?", false) {
			return false, nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(filepath, yml, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads ConfigFile from dir. Fields missing from the file keep their
// defaults; a missing file yields the defaults.
func Load(dir string) (Config, error) {
	conf := Default()

	file, err := os.ReadFile(path.Join(dir, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return Config{}, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(file))
	decoder.KnownFields(true)
	if err := decoder.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: %w", ConfigFile, err)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", ConfigFile, err)
	}
	return conf, nil
}
