// Package config resolves runtime settings for ptable.
//
// Settings are layered, lowest precedence first:
//
//	defaults → config file (YAML or CUE) → environment → command-line flags
//
// Flags are applied by the cli package after Load returns.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ptable/internal/export"
)

// Config holds all runtime settings.
type Config struct {
	// DataPath is the delimited source file.
	DataPath string `yaml:"data" json:"data" env:"PTABLE_DATA"`

	// OutputDir is where exported files are written.
	OutputDir string `yaml:"out_dir" json:"out_dir" env:"PTABLE_OUT_DIR"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level" env:"PTABLE_LOG_LEVEL"`

	// Files maps each export format to its output file name.
	Files Files `yaml:"files" json:"files"`
}

// Files holds the output file name of each exporter.
type Files struct {
	HTML     string `yaml:"html" json:"html" env:"PTABLE_HTML_FILE"`
	JSON     string `yaml:"json" json:"json" env:"PTABLE_JSON_FILE"`
	XML      string `yaml:"xml" json:"xml" env:"PTABLE_XML_FILE"`
	Markdown string `yaml:"markdown" json:"markdown" env:"PTABLE_MARKDOWN_FILE"`
}

// DefaultDataPath is the source file used when nothing else is configured.
const DefaultDataPath = "elements.csv"

// ValidLogLevels defines the allowed log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataPath:  DefaultDataPath,
		OutputDir: ".",
		LogLevel:  "info",
		Files: Files{
			HTML:     export.HTML{}.DefaultFile(),
			JSON:     export.JSON{}.DefaultFile(),
			XML:      export.XML{}.DefaultFile(),
			Markdown: export.Markdown{}.DefaultFile(),
		},
	}
}

// Load builds a Config from defaults, the optional file at path and the
// environment. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Merge(fileCfg)
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a config file. Files ending in .cue are evaluated with
// CUE; anything else is decoded as YAML with unknown fields rejected.
// Fields the file leaves out are zero.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".cue") {
		return decodeCUE(path, data)
	}
	return decodeYAML(data)
}

func decodeYAML(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		// A file with no documents decodes to EOF; treat it as "no overrides"
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return cfg, nil
}

// cueSchema mirrors Config. Definitions are closed, so a field it does not
// name fails validation the same way KnownFields rejects it in YAML.
const cueSchema = `
#Config: {
	data?:      string
	out_dir?:   string
	log_level?: string
	files?: {
		html?:     string
		json?:     string
		xml?:      string
		markdown?: string
	}
}
`

func decodeCUE(path string, data []byte) (Config, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(cueSchema).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("failed to compile CUE schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return Config{}, fmt.Errorf("failed to compile CUE config: %w", err)
	}
	v = schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid CUE config: %w", err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode CUE config: %w", err)
	}
	return cfg, nil
}

// ParseEnv overlays settings from PTABLE_* environment variables.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Merge overwrites c with every non-empty setting of other.
func (c *Config) Merge(other Config) {
	setIf(&c.DataPath, other.DataPath)
	setIf(&c.OutputDir, other.OutputDir)
	setIf(&c.LogLevel, other.LogLevel)
	setIf(&c.Files.HTML, other.Files.HTML)
	setIf(&c.Files.JSON, other.Files.JSON)
	setIf(&c.Files.XML, other.Files.XML)
	setIf(&c.Files.Markdown, other.Files.Markdown)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level %q: must be one of %v", c.LogLevel, ValidLogLevels)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OutputPath returns where the named exporter writes, joined with OutputDir.
// Unknown exporters fall back to their default file name.
func (c Config) OutputPath(exp export.Exporter) string {
	name := exp.DefaultFile()
	switch exp.Name() {
	case "html":
		name = orDefault(c.Files.HTML, name)
	case "json":
		name = orDefault(c.Files.JSON, name)
	case "xml":
		name = orDefault(c.Files.XML, name)
	case "markdown":
		name = orDefault(c.Files.Markdown, name)
	}
	if filepath.IsAbs(name) || c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// isValidLogLevel checks if the level is one of the allowed values.
func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == strings.ToLower(level) {
			return true
		}
	}
	return false
}
