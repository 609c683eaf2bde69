// Package config loads the jdex YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/format"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when no path is given.
const DefaultFileName = "jdex.yaml"

// DefaultRoot is the directory holding the cache and the run ledger.
const DefaultRoot = "."

// DefaultCodeblockOmitted replaces code blocks in rendered documentation.
const DefaultCodeblockOmitted = "(Codeblock omitted for brevity)"

// Config is the parsed configuration file.
type Config struct {
	// Root is the directory under which the cache folder is created.
	Root     string         `yaml:"root"`
	Debug    bool           `yaml:"debug"`
	Sources  []SourceConfig `yaml:"sources"`
	Limits   LimitsConfig   `yaml:"limits"`
	Messages MessagesConfig `yaml:"messages"`

	// Prefixes overrides kind markers by kind key, e.g. "class" or
	// "annotationElement".
	Prefixes map[string]string `yaml:"prefixes"`

	Advanced AdvancedConfig `yaml:"advanced"`
}

// SourceConfig is a standalone source or a group of sub-sources. Exactly one
// of URL and Subsources must be set.
type SourceConfig struct {
	Name       string            `yaml:"name"`
	Title      string            `yaml:"title"`
	URL        string            `yaml:"url"`
	CacheDays  int               `yaml:"cacheDays"`
	Subsources []SubsourceConfig `yaml:"subsources"`
}

// SubsourceConfig is a source nested under a group.
type SubsourceConfig struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	URL       string `yaml:"url"`
	CacheDays int    `yaml:"cacheDays"`
}

// LimitsConfig caps rendered text lengths.
type LimitsConfig struct {
	Description                int `yaml:"description"`
	ExtraPropertiesDescription int `yaml:"extraPropertiesDescription"`
	Deprecation                int `yaml:"deprecation"`
}

// MessagesConfig holds user-facing replacement strings.
type MessagesConfig struct {
	CodeblockOmitted string `yaml:"codeblockOmitted"`
}

// AdvancedConfig tunes concurrency and resource use.
type AdvancedConfig struct {
	MaxWorkers        int           `yaml:"maxWorkers"`
	FileWritePoolSize int           `yaml:"fileWritePoolSize"`
	ScrapeConcurrency int           `yaml:"scrapeConcurrency"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	MemoryLimitMB     int64         `yaml:"memoryLimitMB"`
	JobTimeout        time.Duration `yaml:"jobTimeout"`
}

// kindKeys maps prefix keys to entity kinds.
var kindKeys = map[string]jdex.EntityKind{
	"annotation":        jdex.KindAnnotation,
	"class":             jdex.KindClass,
	"enum":              jdex.KindEnum,
	"interface":         jdex.KindInterface,
	"annotationElement": jdex.KindAnnotationElement,
	"field":             jdex.KindField,
	"method":            jdex.KindMethod,
	"enumConstant":      jdex.KindEnumConstant,
}

// Load reads, parses and validates the configuration at path. Unset values
// are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, jdex.Errorf(jdex.ENOTFOUND, "config file %s not found", path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes configuration YAML, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "parse config: %v", err)
	}
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) defaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}

	limits := format.DefaultLimits()
	if c.Limits.Description == 0 {
		c.Limits.Description = limits.Description
	}
	if c.Limits.ExtraPropertiesDescription == 0 {
		c.Limits.ExtraPropertiesDescription = limits.ExtraPropertiesDescription
	}
	if c.Limits.Deprecation == 0 {
		c.Limits.Deprecation = limits.Deprecation
	}

	if c.Messages.CodeblockOmitted == "" {
		c.Messages.CodeblockOmitted = DefaultCodeblockOmitted
	}

	a := &c.Advanced
	if a.MaxWorkers == 0 {
		a.MaxWorkers = 2
	}
	if a.FileWritePoolSize == 0 {
		a.FileWritePoolSize = 3
	}
	if a.ScrapeConcurrency == 0 {
		a.ScrapeConcurrency = 4
	}
	if a.RequestsPerSecond == 0 {
		a.RequestsPerSecond = 5
	}
	if a.MemoryLimitMB == 0 {
		a.MemoryLimitMB = 1024
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return jdex.Errorf(jdex.EINVALID, "at least one source is required")
	}
	for i, s := range c.Sources {
		if s.Name == "" {
			return jdex.Errorf(jdex.EINVALID, "source[%d]: name required", i)
		}
		if (s.URL == "") == (len(s.Subsources) == 0) {
			return jdex.Errorf(jdex.EINVALID, "source %q must have either subsources or a url, not both", s.Name)
		}
	}

	seen := make(map[string]bool)
	for _, src := range c.Flatten() {
		if err := src.Validate(); err != nil {
			return err
		}
		if seen[src.ID()] {
			return jdex.Errorf(jdex.EINVALID, "duplicate source %q", src.ID())
		}
		seen[src.ID()] = true
	}

	for key := range c.Prefixes {
		if _, ok := kindKeys[key]; !ok {
			return jdex.Errorf(jdex.EINVALID, "unknown prefix kind %q", key)
		}
	}

	a := c.Advanced
	if a.MaxWorkers < 0 || a.FileWritePoolSize < 0 || a.ScrapeConcurrency < 0 {
		return jdex.Errorf(jdex.EINVALID, "advanced worker counts must be positive")
	}
	if a.RequestsPerSecond < 0 {
		return jdex.Errorf(jdex.EINVALID, "advanced.requestsPerSecond must not be negative")
	}
	if a.JobTimeout < 0 {
		return jdex.Errorf(jdex.EINVALID, "advanced.jobTimeout must not be negative")
	}
	return nil
}

// Flatten returns standalone and grouped sources in file order, with
// grouped sources named after their sub-source.
func (c *Config) Flatten() []*jdex.Source {
	var out []*jdex.Source
	for _, s := range c.Sources {
		if len(s.Subsources) == 0 {
			out = append(out, &jdex.Source{
				Name:       s.Name,
				Title:      s.Title,
				Locator:    s.URL,
				MaxAgeDays: s.CacheDays,
			})
			continue
		}
		for _, sub := range s.Subsources {
			out = append(out, &jdex.Source{
				Name:       sub.Name,
				Parent:     s.Name,
				Title:      sub.Title,
				Locator:    sub.URL,
				MaxAgeDays: sub.CacheDays,
			})
		}
	}
	return out
}

// FormatLimits returns the configured caps for the formatter.
func (c *Config) FormatLimits() format.Limits {
	return format.Limits{
		Description:                c.Limits.Description,
		ExtraPropertiesDescription: c.Limits.ExtraPropertiesDescription,
		Deprecation:                c.Limits.Deprecation,
	}
}

// KindPrefixes returns the default markers with configured overrides applied.
func (c *Config) KindPrefixes() jdex.Prefixes {
	prefixes := jdex.DefaultPrefixes()
	for key, value := range c.Prefixes {
		if kind, ok := kindKeys[key]; ok {
			prefixes[kind] = value
		}
	}
	return prefixes
}

// MemoryLimitBytes returns the soft memory limit in bytes.
func (c *Config) MemoryLimitBytes() int64 {
	return c.Advanced.MemoryLimitMB * 1024 * 1024
}
