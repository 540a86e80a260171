package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadAppliesDefaults(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := v.GetString("http_addr"); got != ":8080" {
		t.Errorf("http_addr = %q", got)
	}
	if got := v.GetString("page.style"); got != "github" {
		t.Errorf("page.style = %q", got)
	}
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	v.Set("http_addr", ":9000")
	v.Set("page.style", "monokai")
	v.Set("export.dir", "dist")

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("http_addr", "  ")
	v.Set("page.style", "not-a-style")
	v.Set("content_path", "/no/such/file.yaml")
	v.Set("export.dir", "")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	msg := err.Error()
	expected := []string{
		"http_addr is required",
		"not a known chroma style",
		"not readable",
		"export.dir is required",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	for _, want := range []string{"http_addr", "[page]", "style", "[export]", "dir"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered TOML missing %q:\n%s", want, out)
		}
	}
}
