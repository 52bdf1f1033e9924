package bot

import (
	"fmt"

	coreconfig "github.com/m3rciful/cryptonews/core/config"
	coredatabase "github.com/m3rciful/cryptonews/core/database"
	"github.com/m3rciful/cryptonews/news/nav"
)

// ContentConfig selects the compiled-in catalog variant.
type ContentConfig struct {
	Catalog string `yaml:"catalog" envconfig:"CONTENT_CATALOG"`
}

// LinksConfig overrides the external link on the home view.
type LinksConfig struct {
	HomeURL   string `yaml:"home_url" envconfig:"LINKS_HOME_URL"`
	HomeLabel string `yaml:"home_label" envconfig:"LINKS_HOME_LABEL"`
}

// Config is the application configuration: the core sections plus the news ones.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Content  ContentConfig       `yaml:"content"`
	Links    LinksConfig         `yaml:"links"`
	Database coredatabase.Config `yaml:"database"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// LoadConfig reads path, overlays the environment and validates the result.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.Decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates every section and fills defaults.
func (c *Config) Normalize() error {
	if err := coreconfig.Normalize(&c.Config); err != nil {
		return err
	}
	if err := c.Database.Normalize(); err != nil {
		return err
	}
	v, err := nav.LookupVariant(c.Content.Catalog)
	if err != nil {
		return fmt.Errorf("content.catalog: %w", err)
	}
	c.Content.Catalog = v.Name
	return nil
}
