package scrape_test

import (
	"context"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// stubFormatter renders "P:<name>" previews and "B:<name>" bodies.
func stubFormatter() *mock.Formatter {
	return &mock.Formatter{
		FormatObjectFn: func(src *jdex.Source, obj *jdex.Object) (jdex.Formatted, error) {
			return jdex.Formatted{Preview: "P:" + obj.Name, Body: "B:" + obj.Name}, nil
		},
		FormatMemberFn: func(src *jdex.Source, parent *jdex.Object, m *jdex.Member) (jdex.Formatted, error) {
			name := parent.Name + "#" + m.Name
			return jdex.Formatted{Preview: "P:" + name, Body: "B:" + name}, nil
		},
	}
}

// sampleJavadoc lists objects out of canonical order, with a same-named
// pair of classes and an overloaded method.
func sampleJavadoc() *jdex.Javadoc {
	return &jdex.Javadoc{Objects: []*jdex.Object{
		{Kind: jdex.KindAnnotation, Name: "Retention", Members: []*jdex.Member{
			{Kind: jdex.KindAnnotationElement, Name: "value"},
		}},
		{Kind: jdex.KindEnum, Name: "Policy", Members: []*jdex.Member{
			{Kind: jdex.KindField, Name: "x"},
			{Kind: jdex.KindMethod, Name: "values"},
			{Kind: jdex.KindEnumConstant, Name: "RUNTIME"},
		}},
		{Kind: jdex.KindClass, Name: "List", Members: []*jdex.Member{
			{Kind: jdex.KindMethod, Name: "add"},
			{Kind: jdex.KindField, Name: "size"},
			{Kind: jdex.KindMethod, Name: "add"},
		}},
		{Kind: jdex.KindInterface, Name: "Runnable", Members: []*jdex.Member{
			{Kind: jdex.KindMethod, Name: "run"},
		}},
		{Kind: jdex.KindClass, Name: "list"},
	}}
}

func staticScraper(doc *jdex.Javadoc) *mock.Scraper {
	return &mock.Scraper{
		ScrapeFn: func(ctx context.Context, locator string) (*jdex.Javadoc, error) {
			return doc, nil
		},
	}
}

func newSource(name string) *jdex.Source {
	return &jdex.Source{Name: name, Title: "Title " + name, Locator: "https://example.com/" + name}
}
