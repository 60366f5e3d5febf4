package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DOC_PATH", "")
	t.Setenv("SITE_TITLE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DocPath != "index.md" {
		t.Errorf("expected default doc path index.md, got %q", cfg.DocPath)
	}
	if cfg.SiteTitle != "Document" {
		t.Errorf("expected default site title, got %q", cfg.SiteTitle)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DOC_PATH", "/srv/docs/readme.md")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("expected port from env, got %q", cfg.Port)
	}
	if cfg.DocPath != "/srv/docs/readme.md" {
		t.Errorf("expected doc path from env, got %q", cfg.DocPath)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: "8080", DocPath: "index.md"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.DocPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty DOC_PATH")
	}
}
