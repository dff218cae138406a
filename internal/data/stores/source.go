// Package stores persists translation documents on disk: the source
// document reader, the translated-snapshot writer, and the completed-keys
// ledger. Snapshot and ledger writes are atomic (tmp file + rename).
package stores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"traduz/internal/core/catalog"
)

// DocumentInfo describes one candidate source document.
type DocumentInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// SourceStore enumerates and loads source documents from a directory.
type SourceStore struct {
	dir     string
	pattern string // doublestar filename pattern, e.g. "*.json"
	suffix  string // translated-output suffix to exclude, e.g. "_translated"
}

// NewSourceStore creates a source store over dir. Files matching pattern are
// candidates unless their stem carries the translated-output suffix.
func NewSourceStore(dir, pattern, suffix string) *SourceStore {
	return &SourceStore{dir: dir, pattern: pattern, suffix: suffix}
}

// List returns candidate documents sorted by name. Translated outputs are
// filtered out by filename convention.
func (s *SourceStore) List() ([]DocumentInfo, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}

	var docs []DocumentInfo
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		name := d.Name()

		match, err := doublestar.Match(s.pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match pattern %q: %w", s.pattern, err)
		}
		if !match || s.isTranslatedOutput(name) {
			continue
		}

		docs = append(docs, DocumentInfo{
			Path: filepath.Join(s.dir, name),
			Name: name,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// isTranslatedOutput reports whether name is a translated copy produced by
// the snapshot store.
func (s *SourceStore) isTranslatedOutput(name string) bool {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, s.suffix)
}

// Load parses a source document preserving its key order. The document must
// be a JSON object; values are kept as opaque raw JSON.
func (s *SourceStore) Load(path string) (catalog.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Source{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return catalog.Source{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return catalog.Source{}, fmt.Errorf("parse %s: document is not a JSON object", path)
	}

	var (
		pairs []catalog.Pair
		seen  = map[string]int{}
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return catalog.Source{}, fmt.Errorf("parse %s: %w", path, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return catalog.Source{}, fmt.Errorf("parse %s: unexpected token %v", path, keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return catalog.Source{}, fmt.Errorf("parse %s: value for %q: %w", path, key, err)
		}

		// Duplicate keys keep their first position, last value wins.
		if at, dup := seen[key]; dup {
			pairs[at].Value = catalog.ValueFromRaw(raw)
			continue
		}
		seen[key] = len(pairs)
		pairs = append(pairs, catalog.Pair{Key: key, Value: catalog.ValueFromRaw(raw)})
	}

	if _, err := dec.Token(); err != nil {
		return catalog.Source{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return catalog.Source{Path: path, Pairs: pairs}, nil
}
