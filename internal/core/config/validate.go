package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"golang.org/x/text/language"

	"traduz/internal/core/styles"
)

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("locale", c.Locale, localeParses),
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("documents.dir", c.Documents.Dir, isDirectoryOrNotExist),
		criterio.Run("documents.pattern", c.Documents.Pattern, patternCompiles),
		criterio.Run("documents.translated_suffix", c.Documents.TranslatedSuffix, suffixUsable),
	)
}

func localeParses(locale string) error {
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", locale, err)
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func patternCompiles(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}
	return nil
}

// suffixUsable rejects suffixes that would make translated outputs collide
// with their sources.
func suffixUsable(suffix string) error {
	if strings.TrimSpace(suffix) == "" {
		return fmt.Errorf("suffix must not be empty")
	}
	if strings.ContainsAny(suffix, "/\\") {
		return fmt.Errorf("suffix must not contain path separators")
	}
	return nil
}
