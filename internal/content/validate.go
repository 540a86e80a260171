package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntry marks content-authoring mistakes caught at load time.
// A file with any invalid entry is rejected whole; a partially rendered
// page is never produced.
var ErrInvalidEntry = errors.New("invalid content entry")

// InvalidEntryError identifies the offending entry by index and title.
type InvalidEntryError struct {
	Index  int
	Title  string
	Reason string
}

func (e *InvalidEntryError) Error() string {
	title := e.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("entry %d %q: %s", e.Index, title, e.Reason)
}

func (e *InvalidEntryError) Unwrap() error { return ErrInvalidEntry }

// Validate checks the structural rules every entry must satisfy: a unique
// non-empty title, exactly two variants, and code on each variant.
func Validate(set *Set) error {
	if set == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidEntry)
	}
	seen := make(map[string]bool, len(set.Entries))
	for i, e := range set.Entries {
		if strings.TrimSpace(e.Title) == "" {
			return &InvalidEntryError{Index: i, Reason: "missing title"}
		}
		if seen[e.Title] {
			return &InvalidEntryError{Index: i, Title: e.Title, Reason: "duplicate title"}
		}
		seen[e.Title] = true
		if len(e.Variants) != 2 {
			return &InvalidEntryError{Index: i, Title: e.Title, Reason: fmt.Sprintf("want 2 variants, have %d", len(e.Variants))}
		}
		for _, v := range e.Variants {
			if strings.TrimSpace(v.Framework) == "" {
				return &InvalidEntryError{Index: i, Title: e.Title, Reason: "variant missing framework name"}
			}
			if strings.TrimSpace(v.Code) == "" {
				return &InvalidEntryError{Index: i, Title: e.Title, Reason: fmt.Sprintf("variant %q missing code", v.Framework)}
			}
		}
	}
	return nil
}
