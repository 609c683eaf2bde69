package jdex_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		var e jdex.Entries
		e.Set("zeta", jdex.IndexEntry{Name: "zeta"})
		e.Set("alpha", jdex.IndexEntry{Name: "alpha"})
		e.Set("mid", jdex.IndexEntry{Name: "mid"})

		assert.Equal(t, []string{"zeta", "alpha", "mid"}, e.Keys())
		assert.Equal(t, 3, e.Len())
	})

	t.Run("overwrite keeps original position", func(t *testing.T) {
		t.Parallel()

		var e jdex.Entries
		e.Set("a", jdex.IndexEntry{Name: "first"})
		e.Set("b", jdex.IndexEntry{Name: "b"})
		e.Set("a", jdex.IndexEntry{Name: "second"})

		assert.Equal(t, []string{"a", "b"}, e.Keys())
		got, ok := e.Get("a")
		require.True(t, ok)
		assert.Equal(t, "second", got.Name)
	})
}

func TestPersistedIndex_JSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order through encoding", func(t *testing.T) {
		t.Parallel()

		// Given an index whose keys are not in lexical order
		idx := jdex.NewPersistedIndex(time.UnixMilli(1700000000000))
		idx.Objects.Set("string", jdex.IndexEntry{Preview: "String", Name: "string", Kind: jdex.KindClass})
		idx.Objects.Set("list", jdex.IndexEntry{Preview: "List", Name: "list", Kind: jdex.KindInterface})
		idx.Members.Set("stringlength", jdex.IndexEntry{Preview: "String#length()", Name: "stringlength", Kind: jdex.KindMethod})

		// When it is encoded and decoded
		data, err := json.Marshal(idx)
		require.NoError(t, err)
		var got jdex.PersistedIndex
		require.NoError(t, json.Unmarshal(data, &got))

		// Then order and fields survive
		assert.Equal(t, []string{"string", "list"}, got.Objects.Keys())
		assert.Equal(t, int64(1700000000000), got.GeneratedAt)
		assert.Equal(t, jdex.IndexVersion, got.Version)
		entry, ok := got.Members.Get("stringlength")
		require.True(t, ok)
		assert.Equal(t, jdex.KindMethod, entry.Kind)
		assert.Contains(t, string(data), `"o":{"string":{"m":"String","n":"string","t":1}`)
	})

	t.Run("rejects structural mismatches", func(t *testing.T) {
		t.Parallel()

		tests := map[string]string{
			"missing version":    `{"o":{},"m":{},"d":1}`,
			"missing objects":    `{"m":{},"d":1,"v":1}`,
			"missing date":       `{"o":{},"m":{},"v":1}`,
			"string date":        `{"o":{},"m":{},"d":"now","v":1}`,
			"entry missing name": `{"o":{"a":{"m":"A","t":1}},"m":{},"d":1,"v":1}`,
			"entry unknown kind": `{"o":{"a":{"m":"A","n":"a","t":42}},"m":{},"d":1,"v":1}`,
			"objects not object": `{"o":[],"m":{},"d":1,"v":1}`,
			"not json":           `{"o":`,
		}

		for name, data := range tests {
			var idx jdex.PersistedIndex
			err := json.Unmarshal([]byte(data), &idx)
			assert.Error(t, err, name)
		}
	})
}

func TestPersistedIndex_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts current version", func(t *testing.T) {
		t.Parallel()

		idx := jdex.NewPersistedIndex(time.Now())
		idx.Objects.Set("a", jdex.IndexEntry{Kind: jdex.KindClass})
		idx.Members.Set("ab", jdex.IndexEntry{Kind: jdex.KindField})

		assert.NoError(t, idx.Validate())
	})

	t.Run("rejects other versions", func(t *testing.T) {
		t.Parallel()

		idx := jdex.NewPersistedIndex(time.Now())
		idx.Version = 2

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(idx.Validate()))
	})

	t.Run("rejects member kind among objects", func(t *testing.T) {
		t.Parallel()

		idx := jdex.NewPersistedIndex(time.Now())
		idx.Objects.Set("a", jdex.IndexEntry{Kind: jdex.KindMethod})

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(idx.Validate()))
	})

	t.Run("rejects object kind among members", func(t *testing.T) {
		t.Parallel()

		idx := jdex.NewPersistedIndex(time.Now())
		idx.Members.Set("a", jdex.IndexEntry{Kind: jdex.KindEnum})

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(idx.Validate()))
	})
}
