package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Environment", cfg.Environment, "development"},
		{"Port", cfg.Port, "8080"},
		{"DataDir", cfg.DataDir, "data"},
		{"WatchStore", cfg.WatchStore, true},
		{"DefaultLang", cfg.DefaultLang, "en"},
		{"RegenerateTimeout", cfg.RegenerateTimeout, 30 * time.Second},
		{"AuthMode", cfg.AuthMode, AuthModeNone},
		{"CloudWatchNamespace", cfg.CloudWatchNamespace, "PianoChords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/srv/catalog")
	t.Setenv("REGENERATE_TIMEOUT", "5s")
	t.Setenv("WATCH_STORE", "false")
	t.Setenv("AUTH_MODE", "token")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DataDir != "/srv/catalog" {
		t.Errorf("DataDir = %q, want /srv/catalog", cfg.DataDir)
	}
	if cfg.RegenerateTimeout != 5*time.Second {
		t.Errorf("RegenerateTimeout = %s, want 5s", cfg.RegenerateTimeout)
	}
	if cfg.WatchStore {
		t.Error("WatchStore should be false")
	}
	if !cfg.IsTokenMode() {
		t.Error("expected token mode")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown auth mode", map[string]string{"AUTH_MODE": "gateway"}},
		{"token without secret", map[string]string{"AUTH_MODE": "token"}},
		{"zero timeout", map[string]string{"REGENERATE_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DEFAULT_LANGUAGE=fr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEFAULT_LANGUAGE", "")
	os.Unsetenv("DEFAULT_LANGUAGE")

	LoadDotEnv(path)
	t.Cleanup(func() { os.Unsetenv("DEFAULT_LANGUAGE") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DefaultLang != "fr" {
		t.Errorf("DefaultLang = %q, want fr", cfg.DefaultLang)
	}
}
