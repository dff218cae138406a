package stores

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"traduz/internal/core/catalog"
)

// Ledger is the on-disk completed-keys record for one source document.
type Ledger struct {
	Keys        []string `toml:"keys"`
	LastUpdated string   `toml:"last_updated"`
}

// LedgerStore reads and writes completion ledgers. The current format is
// TOML; a legacy ";"-separated text file is still read and is deleted after
// the first structured write (one-way migration).
type LedgerStore struct {
	now func() time.Time
}

// NewLedgerStore creates a ledger store using the wall clock.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{now: time.Now}
}

// Path returns the structured ledger path for a source document.
func (s *LedgerStore) Path(sourcePath string) string {
	return replaceExt(sourcePath, ".toml")
}

// LegacyPath returns the pre-migration text ledger path.
func (s *LedgerStore) LegacyPath(sourcePath string) string {
	return replaceExt(sourcePath, ".txt")
}

// Load returns the completed-key set for a source document. Readers are
// tried in order: structured first, then legacy. A missing or unparsable
// ledger yields an empty set, never an error.
func (s *LedgerStore) Load(sourcePath string) map[string]struct{} {
	readers := []func(string) ([]string, bool){
		s.readStructured,
		s.readLegacy,
	}

	for _, read := range readers {
		if keys, ok := read(sourcePath); ok {
			set := make(map[string]struct{}, len(keys))
			for _, k := range keys {
				set[k] = struct{}{}
			}
			return set
		}
	}

	return map[string]struct{}{}
}

// Save writes the structured ledger with the keys of all done entries and a
// fresh timestamp. After a successful write any legacy text ledger is
// removed.
func (s *LedgerStore) Save(doc *catalog.Document) error {
	ledger := Ledger{
		Keys:        []string{},
		LastUpdated: s.now().Format(time.RFC3339),
	}
	for _, e := range doc.Entries {
		if e.Done {
			ledger.Keys = append(ledger.Keys, e.Key)
		}
	}

	data, err := toml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	path := s.Path(doc.SourcePath)
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("write ledger %s: %w", path, err)
	}

	legacy := s.LegacyPath(doc.SourcePath)
	if _, err := os.Stat(legacy); err == nil {
		if err := os.Remove(legacy); err != nil {
			return fmt.Errorf("remove legacy ledger %s: %w", legacy, err)
		}
		log.Info().Str("path", legacy).Msg("migrated legacy ledger")
	}

	return nil
}

// readStructured reads the TOML ledger. The second return is false when the
// file is missing or unusable, letting the loader fall through.
func (s *LedgerStore) readStructured(sourcePath string) ([]string, bool) {
	path := s.Path(sourcePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var ledger Ledger
	if err := toml.Unmarshal(data, &ledger); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("unreadable ledger, treating as empty")
		return nil, false
	}
	return ledger.Keys, true
}

// readLegacy reads the old ";"-separated key list.
func (s *LedgerStore) readLegacy(sourcePath string) ([]string, bool) {
	data, err := os.ReadFile(s.LegacyPath(sourcePath))
	if err != nil {
		return nil, false
	}

	var keys []string
	for _, part := range strings.Split(string(data), ";") {
		if k := strings.TrimSpace(part); k != "" {
			keys = append(keys, k)
		}
	}
	return keys, true
}

// replaceExt swaps the extension of path.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// writeAtomic writes data to path via a temp file rename so readers never
// observe a partial file.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
