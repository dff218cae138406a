package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entries(keys ...string) []Entry {
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Original: ValueFromText("v"), Translated: ValueFromText("v")})
	}
	return out
}

func TestSearch(t *testing.T) {
	es := entries("menu.file", "menu.edit", "status.ready", "Menu.Help")

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query matches nothing", "", nil},
		{"substring match in order", "menu", []int{0, 1, 3}},
		{"case insensitive", "MENU", []int{0, 1, 3}},
		{"single match", "ready", []int{2}},
		{"no match", "nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(es, tt.query))
		})
	}
}

func TestSelectionBoundaries(t *testing.T) {
	const n = 3

	t.Run("first selection", func(t *testing.T) {
		idx, ok := SelectFirst(n).Index()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)

		_, ok = SelectFirst(0).Index()
		assert.False(t, ok)
	})

	t.Run("up from first clears the selection", func(t *testing.T) {
		_, ok := SelectFirst(n).Up(n).Index()
		assert.False(t, ok)
	})

	t.Run("down from last clears the selection", func(t *testing.T) {
		sel := SelectFirst(n).Down(n).Down(n) // at index 2
		idx, ok := sel.Index()
		assert.True(t, ok)
		assert.Equal(t, 2, idx)

		_, ok = sel.Down(n).Index()
		assert.False(t, ok)
	})

	t.Run("movement from no selection re-enters at the far end", func(t *testing.T) {
		idx, ok := NoSelection().Up(n).Index()
		assert.True(t, ok)
		assert.Equal(t, n-1, idx)

		idx, ok = NoSelection().Down(n).Index()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("no matches means no movement", func(t *testing.T) {
		_, ok := NoSelection().Up(0).Index()
		assert.False(t, ok)
		_, ok = NoSelection().Down(0).Index()
		assert.False(t, ok)
	})
}
