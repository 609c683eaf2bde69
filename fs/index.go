package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/jdex"
)

// ReadIndex loads and validates the persisted index at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// read, parsed or has an unsupported shape or version.
func ReadIndex(path string) (*jdex.PersistedIndex, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, jdex.Errorf(jdex.ENOTFOUND, "index %q not found", path)
	}
	if err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "index %q unreadable: %v", path, err)
	}

	var idx jdex.PersistedIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "index %q corrupt: %v", path, err)
	}
	if err := idx.Validate(); err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "index %q: %s", path, jdex.ErrorMessage(err))
	}

	return &idx, nil
}

// WriteIndex persists idx at path. The file is written to a temporary name
// in the same directory and renamed into place, so readers never observe a
// partial index.
func WriteIndex(path string, idx *jdex.PersistedIndex) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, IndexFileName+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// RemoveIndex deletes the index file at path. A missing file is not an error.
func RemoveIndex(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveSource deletes the whole source folder described by p.
func RemoveSource(p Paths) error {
	return os.RemoveAll(p.Dir())
}
