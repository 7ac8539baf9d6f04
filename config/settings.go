package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadFromEnv.
const (
	// EnvConfigPath names the settings file to load.
	EnvConfigPath = "SEODESC_CONFIG"

	// EnvSuffix overrides the excerpt suffix.
	EnvSuffix = "SEODESC_SUFFIX"
)

// DefaultSuffix is appended to excerpts that stop mid-sentence.
const DefaultSuffix = "..."

// Format is a settings file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Config is the settings file content.
type Config struct {
	// Guidelines are the per-kind length bounds. Generated excerpts are
	// trimmed to GoodUpper.
	Guidelines Guidelines `json:"guidelines" yaml:"guidelines" toml:"guidelines"`

	// Suffix is appended to excerpts that stop mid-sentence.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty" jsonschema:"default=..."`
}

// DefaultConfig returns a Config with stock guidelines.
func DefaultConfig() Config {
	return Config{
		Guidelines: DefaultGuidelines(),
		Suffix:     DefaultSuffix,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return c.Guidelines.Validate()
}

// LoadFromEnv applies SEODESC_* overrides from the environment.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvSuffix); v != "" {
		c.Suffix = v
	}
}

// Parse decodes settings in the given format over the defaults, so a file
// only needs the values it changes.
func Parse(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML.
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrParse, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the settings file at path.
func Load(path string) (Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the settings named by SEODESC_CONFIG, or the defaults when
// it is unset. Environment overrides are applied either way.
func Resolve() (Config, error) {
	cfg := DefaultConfig()
	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()
	return cfg, nil
}

// Schema returns the JSON schema of the settings file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	s := r.Reflect(&Config{})
	s.Title = "seodesc settings"
	return s
}
