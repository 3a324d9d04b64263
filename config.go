package quizdown

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTheme is the highlighting theme used when none is configured.
	DefaultTheme = "github"
	// DefaultLang is the language assumed for unlabeled code.
	DefaultLang = "text"
)

// SyntaxOptions selects the highlighting theme and the language of
// unlabeled code blocks and inline code.
type SyntaxOptions struct {
	Theme       string `json:"theme" yaml:"theme"`
	DefaultLang string `json:"default_lang" yaml:"default_lang"`
}

// Config controls question processing.
type Config struct {
	// InsertNoneOfTheAbove appends a "None of the above." option to every
	// question; it is correct when no authored option is.
	InsertNoneOfTheAbove bool          `json:"insert_none_of_the_above" yaml:"insert_none_of_the_above"`
	Syntax               SyntaxOptions `json:"syntax" yaml:"syntax"`
}

// Option adjusts a Config.
type Option func(*Config)

// WithTheme selects a highlighting theme by name.
func WithTheme(name string) Option {
	return func(cfg *Config) {
		cfg.Syntax.Theme = name
	}
}

// WithDefaultLang sets the language for unlabeled code.
func WithDefaultLang(lang string) Option {
	return func(cfg *Config) {
		cfg.Syntax.DefaultLang = lang
	}
}

// WithNoneOfTheAbove enables or disables the extra option.
func WithNoneOfTheAbove(enabled bool) Option {
	return func(cfg *Config) {
		cfg.InsertNoneOfTheAbove = enabled
	}
}

// DefaultConfig returns the default configuration with opts applied.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Syntax: SyntaxOptions{
			Theme:       DefaultTheme,
			DefaultLang: DefaultLang,
		},
	}
	return cfg.With(opts...)
}

// With returns a copy of cfg with opts applied.
func (cfg Config) With(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ParseConfig decodes a YAML or JSON document over the defaults. Keys that
// are absent keep their default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
