// Package api defines the rendered-page records handed to presentation
// surfaces: the HTML page, the JSON endpoint, and the static export all
// consume the same shapes.
package api

// Page is one fully composed comparison page.
type Page struct {
	Title   string          `json:"title"`
	Entries []RenderedEntry `json:"entries"`
}

// RenderedEntry is one compared idiom with all text already rendered to
// HTML. Columns always holds exactly two cells, left then right; a variant
// without notes has an empty Notes string, not a missing cell.
type RenderedEntry struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Columns     [2]RenderedVariant `json:"columns"`
}

// RenderedVariant is one framework's cell pair within an entry.
type RenderedVariant struct {
	Framework string `json:"framework"`
	Code      string `json:"code"`
	Notes     string `json:"notes"`
}
