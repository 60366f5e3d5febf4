package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	// Document to serve
	DocPath string

	// Page shell title when the document's front matter has none
	SiteTitle string
}

func Load() Config {
	return Config{
		Port:      envOr("PORT", "8080"),
		DocPath:   envOr("DOC_PATH", "index.md"),
		SiteTitle: envOr("SITE_TITLE", "Document"),
	}
}

func (c Config) Validate() error {
	if c.DocPath == "" {
		return fmt.Errorf("DOC_PATH must not be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
