package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/searchq/legacy"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = ".searchq.yaml"

// Config represents the overall configuration of searchq.
type Config struct {
	Name string `yaml:"name"`

	// ExtendedAuthorFormat selects "." as the separator after abbreviated
	// initials in expanded author names.
	ExtendedAuthorFormat bool `yaml:"extended_author_format"`

	// Keywords adds or overrides legacy keyword aliases. An empty value
	// drops the keyword from queries.
	Keywords map[string]string `yaml:"keywords,omitempty"`

	// Workers bounds the number of queries translated concurrently in
	// batch mode. Zero means one per CPU.
	Workers int `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Name: "searchq"}
}

// Load reads the configuration at path. An empty path searches
// DefaultFile in the working directory, then in the home directory, and
// falls back to Default when neither exists. An explicitly named file
// must exist.
func Load(path string) (Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, candidate := range searchPaths() {
		cfg, err := loadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return Default(), nil
}

func searchPaths() []string {
	paths := []string{DefaultFile}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultFile))
	}
	return paths
}

func loadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration. An empty document yields
// the default configuration.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be expressed in the YAML schema.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for k := range c.Keywords {
		if k == "" || strings.ContainsAny(k, " \t\r\n") {
			return fmt.Errorf("invalid keyword %q", k)
		}
	}
	return nil
}

// Write stores cfg as YAML at path, replacing any existing file.
func Write(path string, cfg Config) error {
	if path == "" {
		path = DefaultFile
	}

	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

// LegacyOptions returns the normalizer options described by c.
func (c Config) LegacyOptions() legacy.Options {
	return legacy.Options{
		ExtendedAuthorFormat: c.ExtendedAuthorFormat,
		Keywords:             c.Keywords,
	}
}
