// Package catalog holds the in-memory model of one open translation
// document: its ordered entries, the translated-key counter, and the key
// search index. It performs no I/O; loading and saving live in
// internal/data/stores.
package catalog

import (
	"bytes"
	"encoding/json"
)

// Value is one JSON value from a source or snapshot document. Values are
// opaque: nested structures are never decomposed, and edits always replace
// the value with a string scalar.
type Value struct {
	raw json.RawMessage
}

// ValueFromRaw wraps a raw JSON value.
func ValueFromRaw(raw json.RawMessage) Value {
	return Value{raw: append(json.RawMessage(nil), raw...)}
}

// ValueFromText builds a JSON string scalar from plain text.
func ValueFromText(text string) Value {
	raw, _ := json.Marshal(text)
	return Value{raw: raw}
}

// Raw returns the underlying JSON encoding.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// Text renders the value for editing: string scalars are unquoted, anything
// else is its compact JSON text.
func (v Value) Text() string {
	var s string
	if err := json.Unmarshal(v.raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v.raw); err != nil {
		return string(v.raw)
	}
	return buf.String()
}

// Equal reports whether two values have the same JSON encoding.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(v.raw, other.raw)
}

// Pair is one key/value pair of a source document, in document order.
type Pair struct {
	Key   string
	Value Value
}

// Source is a parsed source document with its key order preserved.
type Source struct {
	Path  string
	Pairs []Pair
}

// Entry is one translation unit. Original is immutable once loaded; Done is
// the manually confirmed flag and is independent of whether Translated
// differs from Original.
type Entry struct {
	Key        string
	Original   Value
	Translated Value
	Done       bool
}

// Document is the entry store for one open source document. Entries are
// fixed at load time; only Translated values and Done flags change during a
// session.
type Document struct {
	SourcePath string
	Entries    []Entry

	done int
}

// Load builds a Document from a parsed source, merging a prior translated
// snapshot and the completed-key set. Translated falls back to a copy of
// Original when the snapshot has no value for a key.
func Load(src Source, snapshot map[string]Value, completed map[string]struct{}) *Document {
	doc := &Document{
		SourcePath: src.Path,
		Entries:    make([]Entry, 0, len(src.Pairs)),
	}

	for _, p := range src.Pairs {
		translated := p.Value
		if prior, ok := snapshot[p.Key]; ok {
			translated = prior
		}

		_, done := completed[p.Key]
		if done {
			doc.done++
		}

		doc.Entries = append(doc.Entries, Entry{
			Key:        p.Key,
			Original:   p.Value,
			Translated: translated,
			Done:       done,
		})
	}

	return doc
}

// TotalKeys returns the number of entries.
func (d *Document) TotalKeys() int {
	return len(d.Entries)
}

// TranslatedKeys returns the number of entries currently marked done. The
// counter is maintained incrementally by Toggle.
func (d *Document) TranslatedKeys() int {
	return d.done
}

// Toggle flips the done flag of entry i. Out-of-range indices are a no-op.
func (d *Document) Toggle(i int) {
	if i < 0 || i >= len(d.Entries) {
		return
	}

	e := &d.Entries[i]
	e.Done = !e.Done
	if e.Done {
		d.done++
	} else {
		d.done--
	}
}

// SetTranslated replaces the translated value of entry i with a string
// scalar built from text. Out-of-range indices are a no-op.
func (d *Document) SetTranslated(i int, text string) {
	if i < 0 || i >= len(d.Entries) {
		return
	}
	d.Entries[i].Translated = ValueFromText(text)
}
