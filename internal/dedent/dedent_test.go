package dedent

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only blank lines", "\n   \n\t\n", ""},
		{"already flush", "foo\nbar", "foo\nbar"},
		{"leading newline and common indent", "\n    foo\n    bar\n", "foo\nbar"},
		{"nested indent kept", "\n  if x {\n    y()\n  }\n", "if x {\n  y()\n}"},
		{"interior blank preserved", "\n  a\n\n  b\n", "a\n\nb"},
		{"whitespace-only interior line blanked", "  a\n    \n  b", "a\n\nb"},
		{"single line", "\n   hello\n", "hello"},
		{"no indent on one line limits margin", "\n  a\nb\n", "  a\nb"},
		{"tab margin", "\n\tfoo\n\tbar\n", "foo\nbar"},
		{"mixed tab and space under-strips", "\n\tfoo\n        bar\n", "\tfoo\n        bar"},
		{"multiple boundary blanks dropped", "\n\n  a\n\n", "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"\n    foo\n    bar\n",
		"\n  a\n\n  b\n",
		"\tfoo\n        bar",
		"plain text",
		"\n\n  leading\n  blanks\n\n\n",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
