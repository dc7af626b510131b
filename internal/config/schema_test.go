package config_test

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/readingctl/internal/config"
)

func TestThemeByName_Known(t *testing.T) {
	th := config.ThemeByName("night")
	if th.Name != "night" {
		t.Errorf("Name = %q, want %q", th.Name, "night")
	}
	if th.Text != "#FFFFFF" {
		t.Errorf("Text = %q, want white for dark theme", th.Text)
	}
}

func TestThemeByName_UnknownFallsBack(t *testing.T) {
	th := config.ThemeByName("solarized")
	if th.Name != "minimal" {
		t.Errorf("Name = %q, want fallback to minimal", th.Name)
	}
}

func TestThemeByName_Empty(t *testing.T) {
	if th := config.ThemeByName(""); th.Name != "minimal" {
		t.Errorf("Name = %q, want minimal", th.Name)
	}
}

func TestThemeNames_AllResolve(t *testing.T) {
	for _, name := range config.ThemeNames() {
		if th := config.ThemeByName(name); th.Name != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, th.Name)
		}
	}
}

func TestConfigTheme(t *testing.T) {
	cfg := &config.Config{}
	cfg.UI.Theme = "vintage"
	if th := cfg.Theme(); th.Name != "vintage" {
		t.Errorf("Theme().Name = %q, want vintage", th.Name)
	}
}

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestExpandHome(t *testing.T) {
	got := config.ExpandHome("~/state/session.yml")
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome did not expand: %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("READINGCTL_CONFIG", "/nonexistent/readingctl-config.yml")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.BaseURL != "http://localhost:3000" {
		t.Errorf("Service.BaseURL = %q", cfg.Service.BaseURL)
	}
	if !cfg.Assistant.Streaming {
		t.Error("Assistant.Streaming should default to true")
	}
	if cfg.UI.Theme != "minimal" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("READINGCTL_CONFIG", "/nonexistent/readingctl-config.yml")
	t.Setenv("READINGCTL_SERVICE_BASE_URL", "https://tracker.example.com/")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.BaseURL != "https://tracker.example.com" {
		t.Errorf("Service.BaseURL = %q, want env value with trailing slash trimmed", cfg.Service.BaseURL)
	}
}
