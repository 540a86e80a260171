// Package export writes the composed page to disk as a static site:
// a standalone index.html plus the same data as page.json.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexJMohr/svelte-vs-vue/internal/server"
	"github.com/AlexJMohr/svelte-vs-vue/pkg/api"
)

// Write renders page into dir, creating it if needed.
func Write(dir string, page *api.Page) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	html, err := server.RenderHTML(page)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), html, 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("encode page.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "page.json"), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write page.json: %w", err)
	}
	return nil
}
