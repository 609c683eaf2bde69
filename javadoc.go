package jdex

import "context"

// Javadoc is the entity tree produced by scraping one source.
type Javadoc struct {
	Objects []*Object
}

// ObjectsOfKind returns the objects of the given kind in scrape order.
func (j *Javadoc) ObjectsOfKind(kind EntityKind) []*Object {
	var a []*Object
	for _, o := range j.Objects {
		if o.Kind == kind {
			a = append(a, o)
		}
	}
	return a
}

// Object is a top-level Javadoc entity: a class, interface, enum or
// annotation.
type Object struct {
	Kind        EntityKind
	Name        string
	Package     string
	URL         string
	Description *Content
	Deprecation *Deprecation
	Members     []*Member

	// Retention and Targets are only set for annotations.
	Retention string
	Targets   []string
}

// MembersOfKind returns the object's members of the given kind.
func (o *Object) MembersOfKind(kind EntityKind) []*Member {
	var a []*Member
	for _, m := range o.Members {
		if m.Kind == kind {
			a = append(a, m)
		}
	}
	return a
}

// Member is an entity nested in an object.
type Member struct {
	Kind EntityKind
	Name string
	URL  string

	// Type is the field type, the method return type or the annotation
	// element type.
	Type string

	Static      bool
	Description *Content
	Deprecation *Deprecation
	Parameters  []*Parameter
	Returns     *Content
	Annotations []string
}

// Parameter is a single method parameter.
type Parameter struct {
	Name        string
	Type        string
	Description *Content
	Annotations []string
}

// Content is a block of documentation in both plain text and HTML form.
type Content struct {
	Text string
	HTML string
}

// Empty reports whether c carries no text at all.
func (c *Content) Empty() bool {
	return c == nil || (c.Text == "" && c.HTML == "")
}

// Deprecation describes a deprecated entity.
type Deprecation struct {
	Content
	ForRemoval bool
}

// Scraper retrieves the Javadoc entity tree behind a locator.
type Scraper interface {
	// Scrape fetches and parses the Javadoc rooted at locator, which is
	// either an http(s) URL or a file:// path.
	Scrape(ctx context.Context, locator string) (*Javadoc, error)
}
