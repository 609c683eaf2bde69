package jdex

import "strings"

// FileLocatorPrefix marks a source that is read from the local filesystem.
const FileLocatorPrefix = "file://"

// Source is one configured Javadoc origin. Sources are built once from
// configuration and never modified afterwards.
type Source struct {
	// Name is the source's own name. For grouped sources this is the
	// sub-source name.
	Name string `json:"name"`

	// Parent is the group name for grouped sources, empty otherwise.
	Parent string `json:"parent,omitempty"`

	// Title is the human-readable label.
	Title string `json:"title"`

	// Locator is an http(s) URL or a file:// path to the Javadoc root.
	Locator string `json:"locator"`

	// MaxAgeDays is the freshness window. Values <= 0 mean never stale.
	MaxAgeDays int `json:"maxAgeDays"`
}

// ID returns the source's cache folder name: "Name" for standalone sources
// and "Parent@Name" for grouped ones.
func (s *Source) ID() string {
	if s.Parent == "" {
		return s.Name
	}
	return s.Parent + "@" + s.Name
}

// IsLocal reports whether the source reads from a file:// locator.
func (s *Source) IsLocal() bool {
	return strings.HasPrefix(s.Locator, FileLocatorPrefix)
}

// LocalPath returns the filesystem path of a file:// locator.
func (s *Source) LocalPath() string {
	return strings.TrimPrefix(s.Locator, FileLocatorPrefix)
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if strings.Contains(s.Name, "@") || strings.Contains(s.Parent, "@") {
		return Errorf(EINVALID, "source name %q must not contain '@'", s.ID())
	}
	if strings.ContainsAny(s.ID(), `/\`) {
		return Errorf(EINVALID, "source name %q must not contain path separators", s.ID())
	}
	if s.Locator == "" {
		return Errorf(EINVALID, "source %q locator required", s.ID())
	}
	if s.Title == "" {
		return Errorf(EINVALID, "source %q title required", s.ID())
	}
	return nil
}
