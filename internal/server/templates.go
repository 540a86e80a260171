package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/AlexJMohr/svelte-vs-vue/pkg/api"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// The composer already emits sanitized HTML, so the view marks its cells
// as template.HTML to keep html/template from double-escaping them.

type pageView struct {
	Title   string
	Entries []entryView
}

type entryView struct {
	Title       string
	Description template.HTML
	Columns     []variantView
}

type variantView struct {
	Framework string
	Code      template.HTML
	Notes     template.HTML
}

// RenderHTML renders a composed page into the standalone document served
// at / and written by the static export.
func RenderHTML(page *api.Page) ([]byte, error) {
	view := pageView{Title: page.Title}
	for _, e := range page.Entries {
		ev := entryView{
			Title:       e.Title,
			Description: template.HTML(e.Description),
		}
		for _, col := range e.Columns {
			ev.Columns = append(ev.Columns, variantView{
				Framework: col.Framework,
				Code:      template.HTML(col.Code),
				Notes:     template.HTML(col.Notes),
			})
		}
		view.Entries = append(view.Entries, ev)
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
