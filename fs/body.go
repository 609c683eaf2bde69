package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/jdex"
)

// WriteBody writes an entity's text body to path, creating parent
// directories as needed.
func WriteBody(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(body), 0644)
}

// ReadBody returns the text body of the entity identified by ref.
// Returns ENOTFOUND if the body has not been written.
func ReadBody(p Paths, ref jdex.Reference) (string, error) {
	data, err := os.ReadFile(p.EntityFile(ref))
	if errors.Is(err, os.ErrNotExist) {
		return "", jdex.Errorf(jdex.ENOTFOUND, "entity %q not found in %q", ref.ID, p.SourceID())
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
