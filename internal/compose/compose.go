// Package compose walks the content model and renders every entry into
// the two-column page records served to presentation surfaces.
package compose

import (
	"fmt"
	"html"

	"go.uber.org/zap"

	"github.com/AlexJMohr/svelte-vs-vue/internal/content"
	"github.com/AlexJMohr/svelte-vs-vue/internal/dedent"
	"github.com/AlexJMohr/svelte-vs-vue/internal/render"
	"github.com/AlexJMohr/svelte-vs-vue/pkg/api"
)

// Composer renders a content set through its markdown and highlighting
// collaborators. It never fails itself: a collaborator that errors or
// panics degrades the affected cell to escaped literal text so one bad
// entry cannot blank the page.
type Composer struct {
	md  render.Markdown
	hl  render.Highlighter
	log *zap.Logger
}

func New(md render.Markdown, hl render.Highlighter, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{md: md, hl: hl, log: log}
}

// Compose renders every entry in content order. The content set is not
// mutated; the same set always composes to the same page.
func (c *Composer) Compose(set *content.Set) *api.Page {
	page := &api.Page{
		Title:   set.Title,
		Entries: make([]api.RenderedEntry, 0, len(set.Entries)),
	}
	for _, e := range set.Entries {
		re := api.RenderedEntry{
			Title:       e.Title,
			Description: c.prose(e.Title, e.Description),
		}
		for i, v := range e.Variants {
			if i >= len(re.Columns) {
				break
			}
			re.Columns[i] = api.RenderedVariant{
				Framework: v.Framework,
				Code:      c.code(e.Title, v),
				Notes:     c.prose(e.Title, v.Notes),
			}
		}
		page.Entries = append(page.Entries, re)
	}
	return page
}

// prose normalizes and markdown-renders a text field. Empty fields render
// to an empty cell.
func (c *Composer) prose(entry, raw string) string {
	text := dedent.Normalize(raw)
	if text == "" {
		return ""
	}
	out, err := renderProse(c.md, text)
	if err != nil {
		c.log.Warn("markdown render failed, using literal text",
			zap.String("entry", entry), zap.Error(err))
		return literal(text)
	}
	return out
}

func (c *Composer) code(entry string, v content.Variant) string {
	text := dedent.Normalize(v.Code)
	out, err := highlight(c.hl, text, v.Language)
	if err != nil {
		c.log.Warn("highlight failed, using literal text",
			zap.String("entry", entry),
			zap.String("framework", v.Framework), zap.Error(err))
		return literal(text)
	}
	return out
}

// renderProse and highlight convert collaborator panics into errors; the
// collaborators are contractually total, but a substituted implementation
// that raises must only degrade its own cell.

func renderProse(md render.Markdown, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("markdown renderer panicked: %v", r)
		}
	}()
	return md.Render(text)
}

func highlight(hl render.Highlighter, code, language string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("highlighter panicked: %v", r)
		}
	}()
	return hl.Highlight(code, language)
}

func literal(text string) string {
	return "<pre>" + html.EscapeString(text) + "</pre>"
}
