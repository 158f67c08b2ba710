// Package config loads the optional settings file of the fastx command.
package config

import (
	"fmt"
	"os"

	"github.com/ugorji/go/codec"

	"github.com/kentwait/fastrust/fasta"
	"github.com/kentwait/fastrust/fields"
)

// DefaultPath is the file Load reads when it is given an empty path.
const DefaultPath = "fastx.json"

type Config struct {
	LineWidth int    `codec:"line_width" json:"line_width"`
	Format    string `codec:"format" json:"format"`
	LogFile   string `codec:"log_file" json:"log_file"`
	LogLevel  string `codec:"log_level" json:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		LineWidth: fasta.DefaultColumns,
		Format:    fields.JSON.String(),
		LogLevel:  "info",
	}
}

// Load loads a JSON config from the given path. If path is empty, it looks for
// ./fastx.json. A missing file is not an error: defaults are returned. Keys
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	c := Default()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return c, nil
	} else if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	defer f.Close()

	var jh codec.JsonHandle
	if err := codec.NewDecoder(f, &jh).Decode(c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the line width and format name.
func (c *Config) Validate() error {
	if err := fasta.CheckWidth(c.LineWidth); err != nil {
		return err
	}
	if _, err := fields.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
