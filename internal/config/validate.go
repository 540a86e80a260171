package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/viper"
)

// CheckConfigValidity verifies that a loaded configuration can actually
// drive the server. All problems are reported at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if strings.TrimSpace(v.GetString("http_addr")) == "" {
		problems = append(problems, "http_addr is required")
	}
	if style := v.GetString("page.style"); !slices.Contains(styles.Names(), style) {
		problems = append(problems, fmt.Sprintf("page.style %q is not a known chroma style", style))
	}
	if path := v.GetString("content_path"); path != "" {
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("content_path %q is not readable", path))
		}
	}
	if strings.TrimSpace(v.GetString("export.dir")) == "" {
		problems = append(problems, "export.dir is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
