package content

import _ "embed"

//go:embed comparisons.yaml
var defaultContent []byte

// Default returns the content set shipped inside the binary. It is used
// when no content_path is configured.
func Default() (*Set, error) {
	return Parse(defaultContent)
}
