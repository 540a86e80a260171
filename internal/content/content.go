// Package content holds the declarative comparison model: an ordered set
// of entries, each pairing two framework variants of the same idiom.
//
// Text fields carry the raw indentation of their authoring context and
// must go through dedent.Normalize before rendering.
package content

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LanguageAuto asks the highlighter to infer the language from the code
// itself instead of using a named grammar.
const LanguageAuto = "auto"

// Set is the full content model driving one comparison page. It is
// constructed once at load time and never mutated afterwards.
type Set struct {
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Entry is one compared idiom. Variant order is display order: the first
// variant fills the left column, the second the right.
type Entry struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Variants    []Variant `yaml:"variants"`
}

// Variant is one framework's rendition of the entry's idiom.
type Variant struct {
	Framework string `yaml:"framework"`
	// Language names the grammar used to highlight Code. Empty or "auto"
	// means the highlighter detects it from the code content.
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
	Notes    string `yaml:"notes"`
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := Validate(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load reads and parses a content file from disk.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
