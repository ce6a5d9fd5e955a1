package config

import (
	"fmt"
	"os"
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for one migration run. Zero values are filled
// in by Default; an optional YAML file overlays the defaults.
type Config struct {
	// SourceDir is the root of the legacy markdown tree (md-tree mode).
	SourceDir string `yaml:"source_dir"`
	// DBPath points at the sqlite file holding books/tocs/pages (db mode).
	DBPath string `yaml:"db_path"`
	// TargetDir is the root the per-locale site tree is written under.
	TargetDir string `yaml:"target_dir"`
	// NavFile is where the generated navigation module is written.
	NavFile string `yaml:"nav_file"`

	Locales       []string `yaml:"locales"`
	DefaultLocale string   `yaml:"default_locale"`

	// Workers bounds the per-locale book pool. Zero means GOMAXPROCS.
	Workers   int `yaml:"workers"`
	BatchSize int `yaml:"batch_size"`

	// MaxLevel truncates the hierarchy depth in db mode; nil keeps all levels.
	MaxLevel *int `yaml:"max_level"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceDir:     "tipitaka",
		DBPath:        "tipitaka.db",
		TargetDir:     "src/content/docs",
		NavFile:       "navigate.js",
		Locales:       append([]string(nil), Locales...),
		DefaultLocale: DefaultLocale,
		Workers:       runtime.GOMAXPROCS(0),
		BatchSize:     64,
		LogLevel:      "info",
	}
}

// Load reads a YAML overlay from path into a default config. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TargetDir, validation.Required),
		validation.Field(&c.NavFile, validation.Required),
		validation.Field(&c.Locales, validation.Required, validation.Each(validation.By(checkLocale))),
		validation.Field(&c.DefaultLocale, validation.Required, validation.By(checkLocale)),
		validation.Field(&c.Workers, validation.Min(0)),
		validation.Field(&c.BatchSize, validation.Min(1)),
	)
}

func checkLocale(value interface{}) error {
	s, _ := value.(string)
	if !IsLocale(s) {
		return fmt.Errorf("unknown locale %q", s)
	}
	return nil
}
