package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDateFormat is the display format used when site.yaml does not set one.
const DefaultDateFormat = "January 2, 2006"

// Environment holds the per-environment output settings (default, dev, prod).
type Environment struct {
	DocumentRoot string `yaml:"documentroot"`
	BasePath     string `yaml:"base_path"`
	SiteURL      string `yaml:"site_url"`
}

// Section describes one content section (blog, news, ...): where its sources
// live, where its output goes, and how many items its recent digest shows.
type Section struct {
	Key         string `yaml:"section"`
	Path        string `yaml:"path"`
	Name        string `yaml:"name"`
	Ext         string `yaml:"files_extension"`
	RecentItems int    `yaml:"recent_items"`
}

// Page describes a standalone top-level page whose path and display name are
// exposed to templates as <key>_path and <key>_name.
type Page struct {
	Key  string `yaml:"page"`
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// Config is the site configuration loaded from site.yaml.
type Config struct {
	Author     string                 `yaml:"author"`
	Subtitle   string                 `yaml:"subtitle"`
	HTMLLang   string                 `yaml:"html_lang"`
	DateFormat string                 `yaml:"date_format"`
	Parser     string                 `yaml:"parser"`
	Envs       map[string]Environment `yaml:"envs"`
	Sections   []Section              `yaml:"sections"`
	Pages      []Page                 `yaml:"pages"`
}

// Load reads and parses the site configuration, filling in per-section and
// per-page defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}
	for i := range cfg.Sections {
		sec := &cfg.Sections[i]
		if sec.Key == "" {
			return Config{}, fmt.Errorf("config file %s: section %d has no name", path, i)
		}
		if sec.Path == "" {
			sec.Path = sec.Key
		}
		if sec.Name == "" {
			sec.Name = strings.Title(sec.Key)
		}
		if sec.Ext == "" {
			sec.Ext = ".html"
		}
		if sec.RecentItems == 0 {
			sec.RecentItems = 5
		}
	}
	for i := range cfg.Pages {
		page := &cfg.Pages[i]
		if page.Key == "" {
			return Config{}, fmt.Errorf("config file %s: page %d has no name", path, i)
		}
		if page.Path == "" {
			page.Path = page.Key
		}
		if page.Name == "" {
			page.Name = strings.Title(page.Key)
		}
	}

	return cfg, nil
}

// Env returns the named environment, or an error listing the known ones.
func (c Config) Env(name string) (Environment, error) {
	env, ok := c.Envs[name]
	if !ok {
		known := make([]string, 0, len(c.Envs))
		for k := range c.Envs {
			known = append(known, k)
		}
		sort.Strings(known)
		return Environment{}, fmt.Errorf("unknown environment %q (have: %s)", name, strings.Join(known, ", "))
	}
	return env, nil
}
