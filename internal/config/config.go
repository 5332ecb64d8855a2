package config

import (
	"errors"
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type ExportFormat string

const (
	ExportNone   ExportFormat = ""
	ExportCSV    ExportFormat = "csv"
	ExportNDJSON ExportFormat = "json"
)

var ErrNoFilename = errors.New("no filename provided")

type Config struct {
	FilePath     string
	Debug        bool
	Theme        Theme
	ExportFormat ExportFormat
	ExportOut    string
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{Theme: ThemeDark}
}

// ResolveFile picks the input file. A positional argument wins over the
// --filename flag.
func (c *Config) ResolveFile(args []string) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		c.FilePath = args[0]
	}
}

func (c *Config) Validate() error {
	if c.FilePath == "" {
		return ErrNoFilename
	}
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q (want dark|light)", c.Theme)
	}
	switch c.ExportFormat {
	case ExportNone:
		if c.ExportOut != "" {
			return errors.New("--out requires --export")
		}
	case ExportCSV, ExportNDJSON:
		if c.ExportOut == "" {
			return errors.New("--export requires --out path")
		}
	default:
		return fmt.Errorf("unknown export format %q (want csv|json)", c.ExportFormat)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s debug=%v theme=%s export=%s", c.FilePath, c.Debug, c.Theme, c.ExportFormat)
}
