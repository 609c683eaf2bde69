// Package fs provides the on-disk layout of the scrape cache and
// file-based storage for persisted indexes and entity bodies.
package fs

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/jdex"
)

const (
	// CacheDirName is the directory under the configured root holding one
	// folder per source.
	CacheDirName = "__cache__"

	// IndexFileName is the persisted index file inside a source folder.
	IndexFileName = "data.json"

	objectsDirName = "objects"
	membersDirName = "members"
	bodyExt        = ".txt"
)

// CacheRoot returns the cache directory under root.
func CacheRoot(root string) string {
	return filepath.Join(root, CacheDirName)
}

// Paths resolves every on-disk location belonging to one source.
// It is a pure value: nothing is read or written.
type Paths struct {
	root     string
	sourceID string
}

// NewPaths returns the paths for the source with the given ID under root.
func NewPaths(root, sourceID string) Paths {
	return Paths{root: root, sourceID: sourceID}
}

// SourceID returns the source folder name.
func (p Paths) SourceID() string {
	return p.sourceID
}

// Dir returns the source folder.
func (p Paths) Dir() string {
	return filepath.Join(CacheRoot(p.root), p.sourceID)
}

// IndexFile returns the source's data.json path.
func (p Paths) IndexFile() string {
	return filepath.Join(p.Dir(), IndexFileName)
}

// ObjectsDir returns the folder holding object bodies.
func (p Paths) ObjectsDir() string {
	return filepath.Join(p.Dir(), objectsDirName)
}

// MembersDir returns the folder holding member bodies.
func (p Paths) MembersDir() string {
	return filepath.Join(p.Dir(), membersDirName)
}

// ObjectFile returns the body path of the object with the given id.
func (p Paths) ObjectFile(id string) string {
	return filepath.Join(p.ObjectsDir(), shard(id), id+bodyExt)
}

// MemberFile returns the body path of the member with the given id.
func (p Paths) MemberFile(id string) string {
	return filepath.Join(p.MembersDir(), shard(id), id+bodyExt)
}

// EntityFile returns the body path for ref, picking the folder by the
// reference's broad kind.
func (p Paths) EntityFile(ref jdex.Reference) string {
	if ref.Broad() == jdex.BroadMember {
		return p.MemberFile(ref.ID)
	}
	return p.ObjectFile(ref.ID)
}

// shard returns the first character of id, used to spread bodies across
// subfolders.
func shard(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if size == 0 || r == utf8.RuneError {
		return "_"
	}
	return string(r)
}
