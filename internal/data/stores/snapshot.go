package stores

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"traduz/internal/core/catalog"
)

// SnapshotStore reads and writes the full translated-document snapshot.
// Every snapshot write re-saves the completion ledger in the same call so
// the two artifacts cannot drift apart.
type SnapshotStore struct {
	suffix string
	ledger *LedgerStore
}

// NewSnapshotStore creates a snapshot store. suffix is appended to the
// source file stem to form the snapshot filename.
func NewSnapshotStore(suffix string, ledger *LedgerStore) *SnapshotStore {
	return &SnapshotStore{suffix: suffix, ledger: ledger}
}

// Path returns the snapshot path for a source document.
func (s *SnapshotStore) Path(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	stem := strings.TrimSuffix(sourcePath, ext)
	return stem + s.suffix + ext
}

// Load returns the prior translated values for a source document. A missing
// or corrupt snapshot yields an empty map, never an error.
func (s *SnapshotStore) Load(sourcePath string) map[string]catalog.Value {
	path := s.Path(sourcePath)

	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]catalog.Value{}
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("unreadable snapshot, starting from originals")
		return map[string]catalog.Value{}
	}

	values := make(map[string]catalog.Value, len(flat))
	for k, raw := range flat {
		values[k] = catalog.ValueFromRaw(raw)
	}
	return values
}

// Save writes the translated value of every entry, done or not, to the
// snapshot path in entry order, then re-saves the ledger. Any failure
// aborts the save with no partial snapshot left behind.
func (s *SnapshotStore) Save(doc *catalog.Document) error {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, e := range doc.Entries {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return fmt.Errorf("encode key %q: %w", e.Key, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(e.Translated.Raw())
	}
	compact.WriteByte('}')

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	pretty.WriteByte('\n')

	path := s.Path(doc.SourcePath)
	if err := writeAtomic(path, pretty.Bytes()); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	// The ledger always follows the snapshot; a snapshot without a matching
	// ledger would resurrect stale done flags on the next load.
	return s.ledger.Save(doc)
}
