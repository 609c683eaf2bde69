package jdex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// IndexVersion is the only persisted index version this build reads.
const IndexVersion = 1

// IndexEntry is the persisted search record for one entity.
type IndexEntry struct {
	// Preview is the pre-rendered one-line display text.
	Preview string `json:"m"`

	// Name is the lowercased name the fuzzy matcher scores against.
	Name string `json:"n"`

	Kind EntityKind `json:"t"`
}

type indexEntryWire struct {
	Preview *string     `json:"m"`
	Name    *string     `json:"n"`
	Kind    *EntityKind `json:"t"`
}

// UnmarshalJSON decodes an entry, failing when any field is missing.
func (e *IndexEntry) UnmarshalJSON(data []byte) error {
	var w indexEntryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Preview == nil:
		return Errorf(EINVALID, "index entry missing %q", "m")
	case w.Name == nil:
		return Errorf(EINVALID, "index entry missing %q", "n")
	case w.Kind == nil:
		return Errorf(EINVALID, "index entry missing %q", "t")
	}
	*e = IndexEntry{Preview: *w.Preview, Name: *w.Name, Kind: *w.Kind}
	return nil
}

// Entries maps entity ids to index entries while remembering insertion
// order. The zero value is ready to use.
type Entries struct {
	keys []string
	m    map[string]IndexEntry
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	return len(e.keys)
}

// Has reports whether id is present.
func (e *Entries) Has(id string) bool {
	_, ok := e.m[id]
	return ok
}

// Get returns the entry stored under id.
func (e *Entries) Get(id string) (IndexEntry, bool) {
	entry, ok := e.m[id]
	return entry, ok
}

// Set stores entry under id. A new id is appended to the iteration order;
// an existing id keeps its position.
func (e *Entries) Set(id string, entry IndexEntry) {
	if e.m == nil {
		e.m = make(map[string]IndexEntry)
	}
	if _, ok := e.m[id]; !ok {
		e.keys = append(e.keys, id)
	}
	e.m[id] = entry
}

// Keys returns the ids in insertion order.
func (e *Entries) Keys() []string {
	keys := make([]string, len(e.keys))
	copy(keys, e.keys)
	return keys
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (e Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.m[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the order its keys appear in.
func (e *Entries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Errorf(EINVALID, "index entries must be an object")
	}

	*e = Entries{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return Errorf(EINVALID, "index entry key must be a string")
		}
		var entry IndexEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("entry %q: %w", id, err)
		}
		e.Set(id, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// PersistedIndex is the content of a source's data.json.
type PersistedIndex struct {
	Version int

	// GeneratedAt is the wall-clock time of generation in Unix milliseconds.
	GeneratedAt int64

	Objects Entries
	Members Entries
}

type persistedIndexWire struct {
	Objects     *Entries `json:"o"`
	Members     *Entries `json:"m"`
	GeneratedAt *int64   `json:"d"`
	Version     *int     `json:"v"`
}

// NewPersistedIndex returns an empty index of the current version stamped
// with the given generation time.
func NewPersistedIndex(generatedAt time.Time) *PersistedIndex {
	return &PersistedIndex{
		Version:     IndexVersion,
		GeneratedAt: generatedAt.UnixMilli(),
	}
}

// Generated returns the generation time.
func (p *PersistedIndex) Generated() time.Time {
	return time.UnixMilli(p.GeneratedAt)
}

// Entries returns the entry map for the given broad kind.
func (p *PersistedIndex) Entries(broad BroadKind) *Entries {
	if broad == BroadMember {
		return &p.Members
	}
	return &p.Objects
}

// MarshalJSON encodes the index in its persisted shape.
func (p PersistedIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(persistedIndexWire{
		Objects:     &p.Objects,
		Members:     &p.Members,
		GeneratedAt: &p.GeneratedAt,
		Version:     &p.Version,
	})
}

// UnmarshalJSON decodes the persisted shape, failing on any missing key.
func (p *PersistedIndex) UnmarshalJSON(data []byte) error {
	var w persistedIndexWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Objects == nil:
		return Errorf(EINVALID, "index missing %q", "o")
	case w.Members == nil:
		return Errorf(EINVALID, "index missing %q", "m")
	case w.GeneratedAt == nil:
		return Errorf(EINVALID, "index missing %q", "d")
	case w.Version == nil:
		return Errorf(EINVALID, "index missing %q", "v")
	}
	*p = PersistedIndex{
		Version:     *w.Version,
		GeneratedAt: *w.GeneratedAt,
		Objects:     *w.Objects,
		Members:     *w.Members,
	}
	return nil
}

// Validate returns an error if the index has an unsupported version or an
// entry filed under the wrong category.
func (p *PersistedIndex) Validate() error {
	if p.Version != IndexVersion {
		return Errorf(EINVALID, "unsupported index version %d", p.Version)
	}
	for _, id := range p.Objects.keys {
		if k := p.Objects.m[id].Kind; k.Broad() != BroadObject {
			return Errorf(EINVALID, "object entry %q has member kind %s", id, k)
		}
	}
	for _, id := range p.Members.keys {
		if k := p.Members.m[id].Kind; k.Broad() != BroadMember {
			return Errorf(EINVALID, "member entry %q has object kind %s", id, k)
		}
	}
	return nil
}
