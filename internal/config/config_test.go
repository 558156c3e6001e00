package config

import (
	"testing"
)

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set. Setting each key to the empty
// string makes envOrDefault fall through to its fallback.
func TestLoad_Defaults(t *testing.T) {
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"LANGUAGE_ID",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("DB defaults = %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.LanguageID != 1 {
		t.Errorf("LanguageID = %d, want 1", cfg.LanguageID)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("LANGUAGE_ID", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Env != "testing" {
		t.Errorf("Env = %q, want testing", cfg.Env)
	}
	if cfg.LanguageID != 2 {
		t.Errorf("LanguageID = %d, want 2", cfg.LanguageID)
	}
}

func TestLoad_InvalidLanguageID(t *testing.T) {
	tests := []string{"abc", "0", "-1"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("LANGUAGE_ID", v)
			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted LANGUAGE_ID=%q", v)
			}
		})
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for default password in production")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5432", DBName: "mazadie",
	}
	want := "postgres://u:p@db:5432/mazadie?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: "3000"}
	if got := cfg.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q", got)
	}
}
