package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)

		assert.Equal(t, "en", c.Locale)
		assert.Equal(t, "tokyo-night", c.Theme)
		assert.Equal(t, ".", c.Documents.Dir)
		assert.Equal(t, "*.json", c.Documents.Pattern)
		assert.Equal(t, "_translated", c.Documents.TranslatedSuffix)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
locale: pt-BR
theme: gruvbox
documents:
  pattern: "strings*.json"
  translated_suffix: "_traduzido"
`), 0o644))

		c, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "pt-BR", c.Locale)
		assert.Equal(t, "gruvbox", c.Theme)
		assert.Equal(t, "strings*.json", c.Documents.Pattern)
		assert.Equal(t, "_traduzido", c.Documents.TranslatedSuffix)
		assert.Equal(t, ".", c.Documents.Dir, "unset fields keep defaults")
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("locale: ["), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad locale", func(c *Config) { c.Locale = "!!" }, true},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, true},
		{"bad pattern", func(c *Config) { c.Documents.Pattern = "[" }, true},
		{"empty suffix", func(c *Config) { c.Documents.TranslatedSuffix = "  " }, true},
		{"suffix with separator", func(c *Config) { c.Documents.TranslatedSuffix = "a/b" }, true},
		{"nonexistent dir is fine", func(c *Config) { c.Documents.Dir = "/does/not/exist" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
