// Package dedent strips the common leading whitespace that multi-line
// literals pick up from the indentation of their authoring context, so
// embedded code and prose read flush-left when rendered.
package dedent

import "strings"

// Normalize removes the longest whitespace prefix shared by all non-blank
// lines, blanks out whitespace-only lines, and drops blank lines at the
// start and end of the text. Interior blank lines are kept as-is.
//
// The operation is total and idempotent: it never fails, and normalizing
// already-normalized text returns it unchanged. Tabs and spaces are
// compared literally; a text mixing the two may keep part of its margin,
// which is acceptable degraded output rather than an error.
func Normalize(s string) string {
	lines := strings.Split(s, "\n")

	margin, ok := commonMargin(lines)
	if !ok {
		// No non-blank line anywhere: the text normalizes to empty.
		return ""
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			out[i] = ""
			continue
		}
		out[i] = line[len(margin):]
	}

	start, end := 0, len(out)
	for start < end && out[start] == "" {
		start++
	}
	for end > start && out[end-1] == "" {
		end--
	}
	return strings.Join(out[start:end], "\n")
}

// commonMargin returns the longest literal whitespace prefix shared by
// every non-blank line. ok is false when there is no non-blank line.
func commonMargin(lines []string) (string, bool) {
	margin := ""
	found := false
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			margin = indent
			found = true
			continue
		}
		margin = commonPrefix(margin, indent)
		if margin == "" {
			break
		}
	}
	return margin, found
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
