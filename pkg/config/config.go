// Package config loads interpreter settings from YAML.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted for a config file.
const EnvConfigPath = "ROSCRIPT_CONFIG"

// FileName is the config file looked up in the working directory. In the home
// directory it is hidden (".roscript.yaml").
const FileName = "roscript.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting the CLI reads. A non-empty SourceRoot confines
// script paths to that directory.
type Config struct {
	LogLevel        string `yaml:"log_level"`
	Color           string `yaml:"color"`
	TrailingNewline bool   `yaml:"trailing_newline"`
	MaxSteps        int    `yaml:"max_steps"`
	MaxSourceSize   int64  `yaml:"max_source_size"`
	InputPrompt     string `yaml:"input_prompt"`
	SourceRoot      string `yaml:"source_root"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		LogLevel:        "warn",
		Color:           ColorAuto,
		TrailingNewline: true,
		MaxSourceSize:   1 << 20,
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Validate checks field values.
func (c Config) Validate() error {
	var errs ValidationError
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log_level %q is not a valid level", c.LogLevel))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never; got %q", c.Color))
	}
	if c.MaxSteps < 0 {
		errs.Issues = append(errs.Issues, "max_steps must not be negative")
	}
	if c.MaxSourceSize <= 0 {
		errs.Issues = append(errs.Issues, "max_source_size must be positive")
	}
	if c.SourceRoot != "" {
		if info, err := os.Stat(c.SourceRoot); err != nil || !info.IsDir() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("source_root %q is not a directory", c.SourceRoot))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Decode reads YAML over the defaults. Unknown keys are rejected and an
// empty document leaves the defaults unchanged.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "config: parse")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the file at path.
func Load(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: expand %s", path)
	}
	f, err := os.Open(expanded)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: open")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.WithMessage(err, expanded)
	}
	return cfg, nil
}

// FindPath picks the config file in this order: the explicit path, the
// ROSCRIPT_CONFIG environment variable, ./roscript.yaml, ~/.roscript.yaml.
// It returns "" when nothing applies.
func FindPath(explicit string, log logrus.FieldLogger) string {
	if explicit != "" {
		log.Debugf("using --config as config path: %s", explicit)
		return explicit
	}
	if path, ok := os.LookupEnv(EnvConfigPath); ok && path != "" {
		log.Debugf("using $%s as config path: %s", EnvConfigPath, path)
		return path
	}
	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err != nil {
			log.Debugf("'%s' cannot be accessed: %s", path, err)
			continue
		}
		log.Debugf("using fallback config path: %s", path)
		return path
	}
	return ""
}

// DefaultPaths lists the fallback locations in lookup order.
func DefaultPaths() []string {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, FileName))
	}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+FileName))
	}
	return paths
}

// Resolve finds and loads the config, falling back to Default when no file
// exists. An explicitly named file must exist.
func Resolve(explicit string, log logrus.FieldLogger) (Config, error) {
	path := FindPath(explicit, log)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
