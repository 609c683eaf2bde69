package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndex(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for absent file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadIndex(filepath.Join(t.TempDir(), "data.json"))

		assert.Equal(t, jdex.ENOTFOUND, jdex.ErrorCode(err))
	})

	t.Run("returns invalid for unparsable file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := fs.ReadIndex(path)

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(err))
	})

	t.Run("returns invalid for wrong version", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"o":{},"m":{},"d":1,"v":2}`), 0644))

		_, err := fs.ReadIndex(path)

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(err))
		assert.Contains(t, jdex.ErrorMessage(err), "unsupported index version 2")
	})

	t.Run("returns invalid for missing keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"o":{},"d":1,"v":1}`), 0644))

		_, err := fs.ReadIndex(path)

		assert.Equal(t, jdex.EINVALID, jdex.ErrorCode(err))
	})
}

func TestWriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("round trips through read", func(t *testing.T) {
		t.Parallel()

		// Given an index with entries in both categories
		path := filepath.Join(t.TempDir(), "__cache__", "jdk", "data.json")
		idx := jdex.NewPersistedIndex(time.UnixMilli(1700000000000))
		idx.Objects.Set("string", jdex.IndexEntry{Preview: "String", Name: "string", Kind: jdex.KindClass})
		idx.Members.Set("stringlength", jdex.IndexEntry{Preview: "String#length()", Name: "stringlength", Kind: jdex.KindMethod})

		// When it is written and read back
		require.NoError(t, fs.WriteIndex(path, idx))
		got, err := fs.ReadIndex(path)

		// Then the content matches
		require.NoError(t, err)
		assert.Equal(t, idx.GeneratedAt, got.GeneratedAt)
		assert.Equal(t, idx.Objects.Keys(), got.Objects.Keys())
		assert.Equal(t, idx.Members.Keys(), got.Members.Keys())
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "data.json")

		require.NoError(t, fs.WriteIndex(path, jdex.NewPersistedIndex(time.Now())))
		require.NoError(t, fs.WriteIndex(path, jdex.NewPersistedIndex(time.Now())))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "data.json", entries[0].Name())
	})
}

func TestRemoveIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, fs.WriteIndex(path, jdex.NewPersistedIndex(time.Now())))

	require.NoError(t, fs.RemoveIndex(path))
	require.NoError(t, fs.RemoveIndex(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
