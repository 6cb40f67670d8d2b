// Package config loads the optional todos demo configuration from a YAML or
// TOML file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/redux/cmd/todos/internal/todos"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/redux"
)

// SchemaVersion is the newest config schema this build understands. Files
// with the same major version load; others are rejected.
const SchemaVersion = "v1.1.0"

// Config is the demo configuration.
type Config struct {
	Version string        `yaml:"version" toml:"version"`
	Theme   string        `yaml:"theme" toml:"theme"`
	Debug   bool          `yaml:"debug" toml:"debug"`
	Filter  todos.Filter  `yaml:"filter" toml:"filter"`
	Todos   []TodoConfig  `yaml:"todos" toml:"todos"`
	Connect redux.Options `yaml:"connect" toml:"connect"`
}

// TodoConfig is one initial todo.
type TodoConfig struct {
	Text      string `yaml:"text" toml:"text"`
	Completed bool   `yaml:"completed" toml:"completed"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Version: SchemaVersion,
		Theme:   todos.DefaultTheme,
		Filter:  todos.ShowAll,
	}
}

// Load reads path, selecting the decoder by extension (.yaml, .yml or
// .toml). An empty path, or a path that does not exist, yields Default().
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, configError("config.Load", fmt.Errorf("read config: %w", err))
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext and fills in defaults.
// Errors are *errors.BindingError values of kind errors.KindConfig.
func Parse(data []byte, ext string) (Config, error) {
	cfg, err := parse(data, ext)
	if err != nil {
		return Config{}, configError("config.Parse", err)
	}
	return cfg, nil
}

func configError(op string, err error) error {
	return &errors.BindingError{Op: op, Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
}

func parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q (use .yaml or .toml)", ext)
	}

	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = SchemaVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("config version %q is not a semantic version", c.Version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("config version %s is not supported (want %s.x)", version, semver.Major(SchemaVersion))
	}
	if semver.Compare(version, SchemaVersion) > 0 {
		return fmt.Errorf("config version %s is newer than this build (%s)", version, SchemaVersion)
	}
	c.Version = version

	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = todos.DefaultTheme
	}
	if !todos.HasTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if c.Filter == "" {
		c.Filter = todos.ShowAll
	}
	if !c.Filter.Valid() {
		return fmt.Errorf("unknown filter %q", c.Filter)
	}
	return nil
}

// InitialState builds the store state described by c.
func (c Config) InitialState() *todos.State {
	items := make([]todos.Todo, 0, len(c.Todos))
	for _, t := range c.Todos {
		if text := strings.TrimSpace(t.Text); text != "" {
			items = append(items, todos.Todo{Text: text, Completed: t.Completed})
		}
	}
	return todos.NewState(c.Filter, items...)
}
