package stores

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traduz/internal/core/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSourceStoreList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{}`)
	writeFile(t, filepath.Join(dir, "menu.json"), `{}`)
	writeFile(t, filepath.Join(dir, "app_translated.json"), `{}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	store := NewSourceStore(dir, "*.json", "_translated")

	docs, err := store.List()
	require.NoError(t, err)

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"app.json", "menu.json"}, names)
}

func TestSourceStoreLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewSourceStore(dir, "*.json", "_translated")

	t.Run("preserves key order", func(t *testing.T) {
		path := filepath.Join(dir, "ordered.json")
		writeFile(t, path, `{"zeta":"1","alpha":"2","mid":{"nested":true},"count":7}`)

		src, err := store.Load(path)
		require.NoError(t, err)
		require.Len(t, src.Pairs, 4)

		keys := make([]string, 0, 4)
		for _, p := range src.Pairs {
			keys = append(keys, p.Key)
		}
		assert.Equal(t, []string{"zeta", "alpha", "mid", "count"}, keys)
		assert.Equal(t, `{"nested":true}`, src.Pairs[2].Value.Text())
	})

	t.Run("rejects non-object documents", func(t *testing.T) {
		path := filepath.Join(dir, "array.json")
		writeFile(t, path, `["a","b"]`)

		_, err := store.Load(path)
		assert.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		writeFile(t, path, `{"a":`)

		_, err := store.Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := store.Load(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestLedgerStore(t *testing.T) {
	newDoc := func(dir string, done ...string) *catalog.Document {
		src := catalog.Source{
			Path: filepath.Join(dir, "app.json"),
			Pairs: []catalog.Pair{
				{Key: "a", Value: catalog.ValueFromText("Hello")},
				{Key: "b", Value: catalog.ValueFromText("World")},
			},
		}
		completed := make(map[string]struct{}, len(done))
		for _, k := range done {
			completed[k] = struct{}{}
		}
		return catalog.Load(src, nil, completed)
	}

	t.Run("missing ledger is an empty set", func(t *testing.T) {
		store := NewLedgerStore()
		assert.Empty(t, store.Load(filepath.Join(t.TempDir(), "app.json")))
	})

	t.Run("save and load round trip", func(t *testing.T) {
		dir := t.TempDir()
		store := NewLedgerStore()
		store.now = func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }

		require.NoError(t, store.Save(newDoc(dir, "a")))

		set := store.Load(filepath.Join(dir, "app.json"))
		assert.Equal(t, map[string]struct{}{"a": {}}, set)

		data, err := os.ReadFile(filepath.Join(dir, "app.toml"))
		require.NoError(t, err)

		var ledger Ledger
		require.NoError(t, toml.Unmarshal(data, &ledger))
		assert.Equal(t, []string{"a"}, ledger.Keys)
		assert.Equal(t, "2026-08-28T12:00:00Z", ledger.LastUpdated)
	})

	t.Run("reads legacy semicolon format", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app.txt"), "a; b ;;")

		store := NewLedgerStore()
		set := store.Load(filepath.Join(dir, "app.json"))
		assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, set)
	})

	t.Run("save migrates away the legacy file", func(t *testing.T) {
		dir := t.TempDir()
		legacy := filepath.Join(dir, "app.txt")
		writeFile(t, legacy, "a;b")

		store := NewLedgerStore()
		require.NoError(t, store.Save(newDoc(dir, "a", "b")))

		_, err := os.Stat(legacy)
		assert.True(t, os.IsNotExist(err), "legacy ledger should be deleted")
		assert.FileExists(t, filepath.Join(dir, "app.toml"))
	})

	t.Run("structured format wins over legacy", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app.toml"), "keys = [\"a\"]\nlast_updated = \"2026-01-01T00:00:00Z\"\n")
		writeFile(t, filepath.Join(dir, "app.txt"), "b")

		store := NewLedgerStore()
		assert.Equal(t, map[string]struct{}{"a": {}}, store.Load(filepath.Join(dir, "app.json")))
	})

	t.Run("corrupt structured ledger falls back to legacy", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app.toml"), "keys = not toml")
		writeFile(t, filepath.Join(dir, "app.txt"), "b")

		store := NewLedgerStore()
		assert.Equal(t, map[string]struct{}{"b": {}}, store.Load(filepath.Join(dir, "app.json")))
	})
}

func TestSnapshotStore(t *testing.T) {
	load := func(dir string) (*SourceStore, *LedgerStore, *SnapshotStore) {
		ledgers := NewLedgerStore()
		return NewSourceStore(dir, "*.json", "_translated"),
			ledgers,
			NewSnapshotStore("_translated", ledgers)
	}

	t.Run("missing snapshot is an empty map", func(t *testing.T) {
		_, _, snapshots := load(t.TempDir())
		assert.Empty(t, snapshots.Load("whatever.json"))
	})

	t.Run("corrupt snapshot is an empty map", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "app_translated.json"), "{broken")

		_, _, snapshots := load(dir)
		assert.Empty(t, snapshots.Load(filepath.Join(dir, "app.json")))
	})

	t.Run("save then reload reproduces the session", func(t *testing.T) {
		dir := t.TempDir()
		sourcePath := filepath.Join(dir, "app.json")
		writeFile(t, sourcePath, `{"a":"Hello","b":"World"}`)

		sources, ledgers, snapshots := load(dir)

		src, err := sources.Load(sourcePath)
		require.NoError(t, err)

		doc := catalog.Load(src, snapshots.Load(sourcePath), ledgers.Load(sourcePath))
		doc.SetTranslated(1, "Mundo")
		doc.Toggle(0)

		require.NoError(t, snapshots.Save(doc))

		// Reload from disk: translated values and done flags must survive.
		src2, err := sources.Load(sourcePath)
		require.NoError(t, err)
		doc2 := catalog.Load(src2, snapshots.Load(sourcePath), ledgers.Load(sourcePath))

		assert.Equal(t, "Hello", doc2.Entries[0].Translated.Text())
		assert.Equal(t, "Mundo", doc2.Entries[1].Translated.Text())
		assert.True(t, doc2.Entries[0].Done)
		assert.False(t, doc2.Entries[1].Done)
		assert.Equal(t, 1, doc2.TranslatedKeys())
	})

	t.Run("snapshot includes unconfirmed entries in entry order", func(t *testing.T) {
		dir := t.TempDir()
		sourcePath := filepath.Join(dir, "app.json")
		writeFile(t, sourcePath, `{"z":"1","a":"2"}`)

		sources, ledgers, snapshots := load(dir)
		src, err := sources.Load(sourcePath)
		require.NoError(t, err)

		doc := catalog.Load(src, nil, ledgers.Load(sourcePath))
		doc.Toggle(0)
		require.NoError(t, snapshots.Save(doc))

		data, err := os.ReadFile(filepath.Join(dir, "app_translated.json"))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"z\": \"1\",\n  \"a\": \"2\"\n}\n", string(data))

		// The ledger is written in the same call as the snapshot.
		assert.FileExists(t, filepath.Join(dir, "app.toml"))
	})
}
