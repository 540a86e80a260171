package render

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/AlexJMohr/svelte-vs-vue/internal/content"
)

// Highlighter produces highlighted HTML for a code fragment. language may
// be a chroma lexer name, or "auto"/empty to detect the grammar from the
// code itself. Unrecognized tokens and unknown languages fall through to
// plain text, never an error.
type Highlighter interface {
	Highlight(code, language string) (string, error)
}

// ChromaHighlighter highlights with chroma using inline styles, so the
// output needs no accompanying stylesheet.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *html.Formatter
}

// NewHighlighter builds a highlighter using the named chroma style.
// Unknown style names fall back to chroma's default.
func NewHighlighter(styleName string) *ChromaHighlighter {
	return &ChromaHighlighter{
		style:     styles.Get(styleName),
		formatter: html.New(html.WithLineNumbers(false)),
	}
}

func (h *ChromaHighlighter) Highlight(code, language string) (string, error) {
	var lexer chroma.Lexer
	switch language {
	case "", content.LanguageAuto:
		lexer = lexers.Analyse(code)
	default:
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", fmt.Errorf("format highlighted code: %w", err)
	}
	return buf.String(), nil
}
