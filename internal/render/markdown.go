// Package render adapts the third-party markdown and syntax-highlighting
// engines behind small interfaces the composer can swap in tests.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown turns prose into HTML. Implementations must be total over
// arbitrary plain text: unknown constructs come back as literal paragraphs,
// never as an error.
type Markdown interface {
	Render(text string) (string, error)
}

// GoldmarkRenderer renders GFM-flavored markdown and sanitizes the result
// before it is embedded in the page.
type GoldmarkRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *GoldmarkRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
