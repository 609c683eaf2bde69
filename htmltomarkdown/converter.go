// Package htmltomarkdown converts Javadoc HTML fragments to Markdown.
package htmltomarkdown

import (
	"html"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jdex"
)

// Ensure Converter implements jdex.Converter at compile time.
var _ jdex.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv        *converter.Converter
	placeholder string
}

// Option configures a Converter.
type Option func(*Converter)

// WithCodeblockPlaceholder replaces every <pre> block with msg.
// By default code blocks are kept.
func WithCodeblockPlaceholder(msg string) Option {
	return func(c *Converter) {
		c.placeholder = msg
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML fragment into Markdown. Headings become bold
// lines and relative links are resolved against baseURL. With an empty
// baseURL links are reduced to their text.
func (c *Converter) Convert(fragment, baseURL string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", jdex.Errorf(jdex.EINVALID, "empty HTML input")
	}

	prepared, err := c.prepare(fragment, baseURL)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(prepared)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// prepare rewrites the fragment's DOM before conversion.
func (c *Converter) prepare(fragment, baseURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	if c.placeholder != "" {
		doc.Find("pre").Each(func(_ int, s *goquery.Selection) {
			s.ReplaceWithHtml("<p>" + html.EscapeString(c.placeholder) + "</p>")
		})
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil || strings.TrimSpace(s.Text()) == "" {
			s.Remove()
			return
		}
		s.ReplaceWithHtml("<p><strong>" + inner + "</strong></p>")
	})

	var base *url.URL
	if baseURL != "" {
		base, err = url.Parse(baseURL)
		if err != nil {
			return "", jdex.Errorf(jdex.EINVALID, "invalid base URL %q", baseURL)
		}
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if base == nil || !ok || href == "" {
			unwrap(s)
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			unwrap(s)
			return
		}
		s.SetAttr("href", base.ResolveReference(ref).String())
	})

	return doc.Find("body").Html()
}

// unwrap replaces a link with its contents.
func unwrap(s *goquery.Selection) {
	if s.Contents().Length() == 0 {
		s.Remove()
		return
	}
	s.Contents().Unwrap()
}
