package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sortiz4/muon/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Document.Lang != DefaultLang {
		t.Errorf("Document.Lang = %q, want %q", cfg.Document.Lang, DefaultLang)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should default to true")
	}
	if cfg.Tracing.Enabled {
		t.Error("Tracing.Enabled should default to false")
	}
	if cfg.Publish.Dir != DefaultOutput {
		t.Errorf("Publish.Dir = %q, want %q", cfg.Publish.Dir, DefaultOutput)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E141") {
		t.Fatalf("expected E141 for missing config, got %v", err)
	}

	configJSON := `{
  "server": {"addr": "127.0.0.1:9000"},
  "document": {"title": "Docs"},
  "metrics": {"enabled": false},
  "tracing": {"enabled": true, "tracerName": "docs"},
  "publish": {"bucket": "site", "prefix": "v1/"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("Server.ReadTimeout = %q, want default", cfg.Server.ReadTimeout)
	}
	if cfg.Document.Title != "Docs" || cfg.Document.Lang != DefaultLang {
		t.Errorf("Document = %+v", cfg.Document)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != "docs" {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
	if !cfg.UsesS3() || cfg.Publish.Prefix != "v1/" || cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E120") {
		t.Fatalf("expected E120, got %v", err)
	}
	if !strings.Contains(err.Error(), "Failed to parse muon.json") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	if err := cfg.Save(); err == nil {
		t.Fatal("Save without a path should fail")
	}

	cfg.Document.Title = "Saved"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("saved file should end with a newline")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Document.Title != "Saved" {
		t.Errorf("Document.Title = %q, want Saved", loaded.Document.Title)
	}

	loaded.Server.Addr = ":7000"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q after Save", again.Server.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"addr without port", func(c *Config) { c.Server.Addr = "localhost" }, true},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }, true},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = "-1s" }, true},
		{"empty namespace", func(c *Config) { c.Metrics.Namespace = "" }, true},
		{"empty namespace when disabled", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Namespace = ""
		}, false},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.HasCode(err, "E122") {
				t.Errorf("expected E122, got %v", err)
			}
		})
	}
}

func TestReadTimeout(t *testing.T) {
	cfg := New()
	if got := cfg.ReadTimeout(); got != 5*time.Second {
		t.Errorf("ReadTimeout() = %v, want 5s", got)
	}
	cfg.Server.ReadTimeout = "bogus"
	if got := cfg.ReadTimeout(); got != 0 {
		t.Errorf("ReadTimeout() = %v, want 0", got)
	}
}

func TestOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New()
	if err := cfg.SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	if got, want := cfg.OutputPath(), filepath.Join(tmpDir, DefaultOutput); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	cfg.Publish.Dir = "/abs/out"
	if got := cfg.OutputPath(); got != "/abs/out" {
		t.Errorf("OutputPath() = %q, want /abs/out", got)
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nested); !errors.HasCode(err, "E141") {
		t.Fatalf("expected E141 before muon.json exists, got %v", err)
	}
	cfg, err := LoadOrDefault(nested)
	if err != nil || cfg.Server.Addr != DefaultAddr {
		t.Fatalf("LoadOrDefault() = %+v, %v", cfg, err)
	}

	if err := New().SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	want, _ := filepath.Abs(tmpDir)
	if root != want {
		t.Errorf("FindProjectRoot() = %q, want %q", root, want)
	}
	cfg, err = LoadOrDefault(nested)
	if err != nil || cfg.Path() == "" {
		t.Fatalf("LoadOrDefault() should load the found file: %+v, %v", cfg, err)
	}
}
