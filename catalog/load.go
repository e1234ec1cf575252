package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for files whose format cannot be determined.
var ErrUnknownFormat = errors.New("catalog: unknown file format")

type file struct {
	Patterns []Entry `yaml:"patterns" toml:"patterns"`
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ParseEntries decodes the entries of a catalog file.
func ParseEntries(data []byte, format Format) ([]Entry, error) {
	var f file
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("catalog: parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("catalog: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f.Patterns, nil
}

// Parse decodes data and returns a Catalog holding its entries.
func Parse(data []byte, format Format, config Config) (*Catalog, error) {
	entries, err := ParseEntries(data, format)
	if err != nil {
		return nil, err
	}
	c := New(config)
	if err := c.AddEntries(entries); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the catalog file at path. The format follows the extension.
func Load(path string, config Config) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(data, format, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.log.WithFields(logrus.Fields{
		"path":     path,
		"patterns": c.Len(),
	}).Info("catalog loaded")
	return c, nil
}
