package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jdex"
)

// IndexPageName is the Javadoc page listing every type.
const IndexPageName = "allclasses-index.html"

// classLinkSelector matches type links on the all-classes page. JDK 11-16
// used camelCase class names, later releases use kebab-case.
const classLinkSelector = ".col-first a[href], .colFirst a[href]"

// ClassLink is a type listed on the all-classes page.
type ClassLink struct {
	URL     string
	Name    string
	Package string
	Kind    jdex.EntityKind
}

// kindPrefixes maps the leading words of a link title to the entity kind.
// Longer prefixes come first so "annotation interface" wins over
// "interface".
var kindPrefixes = []struct {
	prefix string
	kind   jdex.EntityKind
}{
	{"annotation interface in ", jdex.KindAnnotation},
	{"annotation type in ", jdex.KindAnnotation},
	{"annotation in ", jdex.KindAnnotation},
	{"record class in ", jdex.KindClass},
	{"enum class in ", jdex.KindEnum},
	{"enum in ", jdex.KindEnum},
	{"interface in ", jdex.KindInterface},
	{"class in ", jdex.KindClass},
}

// ClassifyTitle returns the kind and package encoded in a link title such
// as "interface in java.util".
func ClassifyTitle(title string) (jdex.EntityKind, string, bool) {
	title = strings.TrimSpace(title)
	for _, p := range kindPrefixes {
		if strings.HasPrefix(title, p.prefix) {
			return p.kind, strings.TrimPrefix(title, p.prefix), true
		}
	}
	return 0, "", false
}

// ExtractClassLinks returns the types listed on an all-classes page in
// document order. Links with unknown kinds are skipped and duplicate URLs
// are dropped.
func ExtractClassLinks(html string, pageURL string) ([]ClassLink, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "invalid index URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []ClassLink

	doc.Find(classLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		title, _ := sel.Attr("title")

		kind, pkg, ok := ClassifyTitle(title)
		if !ok {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		links = append(links, ClassLink{
			URL:     resolved,
			Name:    strings.TrimSpace(sel.Text()),
			Package: pkg,
			Kind:    kind,
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL with the fragment
// stripped. Returns empty string if the href cannot be parsed or points
// back at the base page.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// indexURL returns the all-classes page of the Javadoc rooted at locator.
// A locator naming an HTML page is resolved relative to that page.
func indexURL(locator string) string {
	if strings.HasSuffix(locator, ".html") {
		if i := strings.LastIndex(locator, "/"); i >= 0 {
			return locator[:i+1] + IndexPageName
		}
	}
	return strings.TrimSuffix(locator, "/") + "/" + IndexPageName
}
