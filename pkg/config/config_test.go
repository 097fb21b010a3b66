package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Auth0.Connection != "Username-Password-Authentication" {
		t.Errorf("connection = %q", cfg.Auth0.Connection)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.CLI.BaseLink == "" {
		t.Error("base_link default missing")
	}
	if cfg.Cloudinary.UploadPreset != "ml_default" {
		t.Errorf("upload_preset = %q", cfg.Cloudinary.UploadPreset)
	}
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "devlinks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := "[hasura]\nurl = \"https://example.hasura.app/v1/graphql\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Hasura.URL != "https://example.hasura.app/v1/graphql" {
		t.Errorf("hasura url = %q", cfg.Hasura.URL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, defaults were not merged", cfg.Server.Port)
	}
	if cfg.Auth0.Connection != "Username-Password-Authentication" {
		t.Errorf("connection = %q, defaults were not merged", cfg.Auth0.Connection)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HASURA_GRAPHQL_URL", "https://env.hasura.app/v1/graphql")
	t.Setenv("AUTH0_DOMAIN", "env-tenant.auth0.com")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Hasura.URL != "https://env.hasura.app/v1/graphql" {
		t.Errorf("hasura url = %q", cfg.Hasura.URL)
	}
	if cfg.Auth0.Domain != "env-tenant.auth0.com" {
		t.Errorf("auth0 domain = %q", cfg.Auth0.Domain)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want env override 9090", cfg.Server.Port)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Hasura.URL = "https://saved.hasura.app/v1/graphql"
	cfg.CLI.BaseLink = "https://devlinks.example.com/u/"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	path, _ := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("parsing saved config: %v", err)
	}
	if loaded.Hasura.URL != cfg.Hasura.URL {
		t.Errorf("hasura url = %q", loaded.Hasura.URL)
	}
	if loaded.CLI.BaseLink != cfg.CLI.BaseLink {
		t.Errorf("base_link = %q", loaded.CLI.BaseLink)
	}
}
