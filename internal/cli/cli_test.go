package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckEmbeddedContent(t *testing.T) {
	out, err := runCmd(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "ok:") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
title: T
entries:
  - title: Only
    variants:
      - framework: svelte
        language: svelte
        code: "a"
      - framework: vue
        code: "b"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := runCmd(t, "check", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "1 entries") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
title: T
entries:
  - title: Broken
    variants:
      - framework: svelte
        code: "a"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCmd(t, "check", path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	if _, err := runCmd(t, "export", "--out", dir); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("missing index.html: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "page.json")); err != nil {
		t.Errorf("missing page.json: %v", err)
	}
}
