// Package config loads the site configuration from a single YAML file
// and applies hard-coded defaults for everything the file omits.
//
// The configuration is constructed once at the start of a build and
// passed explicitly into every component that needs it; nothing reads
// ambient/global settings.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	berrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Config is the complete site configuration.
type Config struct {
	SiteName           string `yaml:"site_name"`
	BaseURL            string `yaml:"base_url"`
	Language           string `yaml:"language"`
	DefaultDescription string `yaml:"default_description"`

	PostsPerPage   int `yaml:"posts_per_page"`
	HomePostsCount int `yaml:"home_posts_count"`
	RelatedCount   int `yaml:"related_count"`

	Nav []NavEntry `yaml:"nav"`

	// HomeRotation selects the home-listing policy: "" (newest first,
	// the default) or "daily" (a deterministic, date-seeded rotation of
	// the sorted corpus).
	HomeRotation string `yaml:"home_rotation"`

	Paths PathsConfig `yaml:"paths"`
}

// NavEntry is one navigation menu item. Entries missing either field
// are silently dropped during load.
type NavEntry struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// PathsConfig overrides the conventional directory layout.
type PathsConfig struct {
	Content   string `yaml:"content"`
	Templates string `yaml:"templates"`
	Includes  string `yaml:"includes"`
	Static    string `yaml:"static"`
	Output    string `yaml:"output"`
}

// Load reads the configuration file, expands environment variables in
// its text, and applies defaults. A missing file yields the pure
// defaults; a malformed file is fatal.
func Load(path string) (*Config, error) {
	// Pick up .env/.env.local before expansion; absence is fine.
	_ = godotenv.Load(".env.local", ".env")

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, berrors.Filesystem(err, "read", path)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, berrors.ConfigParse(err, path)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Defaults returns the hard-coded configuration used when the file or a
// field is absent.
func Defaults() *Config {
	return &Config{
		SiteName:           "Best Coins Ever",
		BaseURL:            "https://bestcoinsever.com",
		Language:           "en",
		DefaultDescription: "Coin values, errors, and guides.",
		PostsPerPage:       12,
		HomePostsCount:     24,
		RelatedCount:       5,
		Paths: PathsConfig{
			Content:   "content",
			Templates: "templates",
			Includes:  "includes",
			Static:    "static",
			Output:    "dist",
		},
	}
}

func (c *Config) applyDefaults() {
	d := Defaults()

	if strings.TrimSpace(c.SiteName) == "" {
		c.SiteName = d.SiteName
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = d.Language
	}
	if strings.TrimSpace(c.DefaultDescription) == "" {
		c.DefaultDescription = d.DefaultDescription
	}

	if c.PostsPerPage <= 0 {
		c.PostsPerPage = d.PostsPerPage
	}
	if c.HomePostsCount <= 0 {
		c.HomePostsCount = d.HomePostsCount
	}
	if c.RelatedCount <= 0 {
		c.RelatedCount = d.RelatedCount
	}

	if c.HomeRotation != "daily" {
		c.HomeRotation = ""
	}

	// nav must end up as label+url pairs; half-filled entries are dropped.
	cleaned := make([]NavEntry, 0, len(c.Nav))
	for _, n := range c.Nav {
		label := strings.TrimSpace(n.Label)
		url := strings.TrimSpace(n.URL)
		if label != "" && url != "" {
			cleaned = append(cleaned, NavEntry{Label: label, URL: url})
		}
	}
	c.Nav = cleaned

	if c.Paths.Content == "" {
		c.Paths.Content = d.Paths.Content
	}
	if c.Paths.Templates == "" {
		c.Paths.Templates = d.Paths.Templates
	}
	if c.Paths.Includes == "" {
		c.Paths.Includes = d.Paths.Includes
	}
	if c.Paths.Static == "" {
		c.Paths.Static = d.Paths.Static
	}
	if c.Paths.Output == "" {
		c.Paths.Output = d.Paths.Output
	}
}
