package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	t.Run("renders template data", func(t *testing.T) {
		tr := New("en")
		got := tr.T("progress", map[string]any{"Translated": 2, "Total": 5})
		assert.Equal(t, "2/5 keys confirmed", got)
	})

	t.Run("selected language wins", func(t *testing.T) {
		tr := New("pt-BR")
		assert.Equal(t, "pt-BR", tr.Language())
		assert.Equal(t, "Chave", tr.T("col_key", nil))
	})

	t.Run("unknown language falls back to english", func(t *testing.T) {
		tr := New("not-a-tag")
		assert.Equal(t, "en", tr.Language())
		assert.Equal(t, "Key", tr.T("col_key", nil))
	})

	t.Run("missing key falls back to the key itself", func(t *testing.T) {
		tr := New("en")
		assert.Equal(t, "no_such_key", tr.T("no_such_key", nil))
	})

	t.Run("plural forms", func(t *testing.T) {
		tr := New("en")
		assert.Equal(t, "1 match", tr.TCount("search_matches", 1, nil))
		assert.Equal(t, "3 matches", tr.TCount("search_matches", 3, nil))
	})

	t.Run("cycle walks all bundled languages", func(t *testing.T) {
		tr := New("en")
		assert.Equal(t, "pt-BR", tr.CycleLanguage())
		assert.Equal(t, "en", tr.CycleLanguage())
	})
}
