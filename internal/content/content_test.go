package content

import (
	"errors"
	"strings"
	"testing"
)

const validDoc = `
title: Test page
entries:
  - title: First
    description: |
      Some **prose**.
    variants:
      - framework: svelte
        language: svelte
        code: |
          let a = 1
      - framework: vue
        language: auto
        code: |
          const a = ref(1)
        notes: |
          A note.
  - title: Second
    variants:
      - framework: svelte
        language: svelte
        code: "x"
      - framework: vue
        code: "y"
`

func TestParseValid(t *testing.T) {
	set, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Title != "Test page" {
		t.Errorf("title = %q", set.Title)
	}
	titles := make([]string, 0, len(set.Entries))
	for _, e := range set.Entries {
		titles = append(titles, e.Title)
	}
	if got := strings.Join(titles, ","); got != "First,Second" {
		t.Errorf("entry order = %s", got)
	}
	v := set.Entries[0].Variants[1]
	if v.Framework != "vue" || v.Language != LanguageAuto {
		t.Errorf("variant = %+v", v)
	}
	if !strings.Contains(v.Notes, "A note.") {
		t.Errorf("notes = %q", v.Notes)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("title: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Set)
		reason string
	}{
		{
			"missing title",
			func(s *Set) { s.Entries[0].Title = "  " },
			"missing title",
		},
		{
			"duplicate title",
			func(s *Set) { s.Entries[1].Title = s.Entries[0].Title },
			"duplicate title",
		},
		{
			"one variant",
			func(s *Set) { s.Entries[0].Variants = s.Entries[0].Variants[:1] },
			"want 2 variants",
		},
		{
			"missing code",
			func(s *Set) { s.Entries[1].Variants[1].Code = "\n  \n" },
			"missing code",
		},
		{
			"missing framework",
			func(s *Set) { s.Entries[0].Variants[0].Framework = "" },
			"missing framework",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := Parse([]byte(validDoc))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			tc.mutate(set)
			err = Validate(set)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("error %v does not wrap ErrInvalidEntry", err)
			}
			if !strings.Contains(err.Error(), tc.reason) {
				t.Errorf("error %q does not mention %q", err, tc.reason)
			}
		})
	}
}

func TestDefaultContentIsValid(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(set.Entries) == 0 {
		t.Fatal("embedded content has no entries")
	}
	for _, e := range set.Entries {
		if len(e.Variants) != 2 {
			t.Errorf("entry %q has %d variants", e.Title, len(e.Variants))
		}
	}
}
