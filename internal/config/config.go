package config

import (
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"jun.dev/internal/content"
	"jun.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	// Dev switches logging to the human-readable development encoder
	Dev bool `env:"DEV" envDefault:"false"`

	Projects *models.ProjectList `env:"-"`
	Site     *models.Site        `env:"-"`
}

// Load reads the environment and the embedded fixtures
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	projects, site, err := LoadContent(content.FS)
	if err != nil {
		return nil, err
	}
	cfg.Projects = projects
	cfg.Site = site

	return &cfg, nil
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadContent decodes and validates the catalog and site fixtures from fsys
func LoadContent(fsys fs.FS) (*models.ProjectList, *models.Site, error) {
	var projects models.ProjectList
	if err := decodeYAML(fsys, content.CatalogFile, &projects); err != nil {
		return nil, nil, err
	}
	if err := projects.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid %s: %w", content.CatalogFile, err)
	}

	var site models.Site
	if err := decodeYAML(fsys, content.SiteFile, &site); err != nil {
		return nil, nil, err
	}

	return &projects, &site, nil
}

// decodeYAML reads name from fsys into out
func decodeYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
