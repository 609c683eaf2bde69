package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jdex"
)

// detailSections maps member detail sections to the kind of member they
// hold. Both kebab-case (JDK 17+) and camelCase anchors are accepted.
var detailSections = []struct {
	selector string
	kind     jdex.EntityKind
}{
	{"section.field-details, section.fieldDetails, #field-detail", jdex.KindField},
	{"section.constant-details, section.constantDetails, #enum-constant-detail", jdex.KindEnumConstant},
	{"section.method-details, section.methodDetails, #method-detail", jdex.KindMethod},
	{"section.member-details, section.memberDetails, #annotation-interface-element-detail", jdex.KindAnnotationElement},
}

var (
	retentionRegex = regexp.MustCompile(`@Retention\((?:RetentionPolicy\.)?(\w+)\)`)
	targetRegex    = regexp.MustCompile(`@Target\(\{?([^)}]*)\}?\)`)
	spaceRegex     = regexp.MustCompile(`\s+`)
)

// ParseClassPage parses a type's Javadoc page into an Object.
func ParseClassPage(html string, link ClassLink) (*jdex.Object, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jdex.Errorf(jdex.EINVALID, "failed to parse HTML: %v", err)
	}

	desc := doc.Find("section.class-description, section.description, #class-description").First()
	if desc.Length() == 0 {
		return nil, jdex.Errorf(jdex.EINVALID, "no class description in %s", link.URL)
	}

	obj := &jdex.Object{
		Kind:        link.Kind,
		Name:        link.Name,
		Package:     link.Package,
		URL:         link.URL,
		Description: blockContent(desc),
		Deprecation: deprecation(desc),
	}

	if link.Kind == jdex.KindAnnotation {
		signature := normalizeSpace(desc.Find(".type-signature, pre").First().Text())
		if m := retentionRegex.FindStringSubmatch(signature); m != nil {
			obj.Retention = m[1]
		}
		if m := targetRegex.FindStringSubmatch(signature); m != nil {
			obj.Targets = parseTargets(m[1])
		}
	}

	for _, ds := range detailSections {
		doc.Find(ds.selector).First().Find("section.detail").Each(func(_ int, sel *goquery.Selection) {
			if m := parseMember(sel, ds.kind, link.URL); m != nil {
				obj.Members = append(obj.Members, m)
			}
		})
	}

	return obj, nil
}

func parseMember(sel *goquery.Selection, kind jdex.EntityKind, pageURL string) *jdex.Member {
	signature := sel.Find(".member-signature").First()

	name := strings.TrimSpace(signature.Find(".element-name").First().Text())
	if name == "" {
		name = strings.TrimSpace(sel.ChildrenFiltered("h3").First().Text())
	}
	if name == "" {
		return nil
	}

	m := &jdex.Member{
		Kind:        kind,
		Name:        name,
		Type:        normalizeSpace(signature.Find(".return-type").First().Text()),
		Static:      strings.Contains(signature.Find(".modifiers").First().Text(), "static"),
		Description: blockContent(sel),
		Deprecation: deprecation(sel),
		Annotations: annotations(signature.ChildrenFiltered(".annotations").First().Text()),
	}
	if id, ok := sel.Attr("id"); ok && id != "" {
		m.URL = pageURL + "#" + id
	}

	if kind == jdex.KindMethod {
		notes := noteSections(sel)
		m.Parameters = parseParameters(signature.Find(".parameters").First().Text(), notes["Parameters:"])
		if returns := notes["Returns:"]; len(returns) > 0 {
			m.Returns = content(returns[0])
		}
	}

	return m
}

// blockContent returns the main description block directly inside sel.
func blockContent(sel *goquery.Selection) *jdex.Content {
	block := sel.ChildrenFiltered("div.block").First()
	if block.Length() == 0 {
		return nil
	}
	return content(block)
}

func deprecation(sel *goquery.Selection) *jdex.Deprecation {
	block := sel.ChildrenFiltered("div.deprecation-block, div.deprecationBlock").First()
	if block.Length() == 0 {
		return nil
	}
	label := strings.ToLower(block.Find(".deprecated-label, .deprecatedLabel").Text())
	d := &jdex.Deprecation{ForRemoval: strings.Contains(label, "for removal")}
	if comment := block.Find(".deprecation-comment, .deprecationComment").First(); comment.Length() > 0 {
		d.Content = *content(comment)
	}
	return d
}

func content(sel *goquery.Selection) *jdex.Content {
	html, _ := sel.Html()
	return &jdex.Content{
		Text: strings.TrimSpace(strings.ReplaceAll(sel.Text(), "\u00a0", " ")),
		HTML: strings.TrimSpace(html),
	}
}

// noteSections groups the dd elements of a dl.notes list under their dt
// label.
func noteSections(sel *goquery.Selection) map[string][]*goquery.Selection {
	notes := make(map[string][]*goquery.Selection)
	var current string
	sel.ChildrenFiltered("dl.notes").First().Children().Each(func(_ int, item *goquery.Selection) {
		switch goquery.NodeName(item) {
		case "dt":
			current = strings.TrimSpace(item.Text())
		case "dd":
			if current != "" {
				notes[current] = append(notes[current], item)
			}
		}
	})
	return notes
}

// parseParameters reads "(Type name, ...)" and attaches the descriptions
// listed under "Parameters:".
func parseParameters(signature string, described []*goquery.Selection) []*jdex.Parameter {
	signature = normalizeSpace(signature)
	signature = strings.TrimSuffix(strings.TrimPrefix(signature, "("), ")")
	if strings.TrimSpace(signature) == "" {
		return nil
	}

	descriptions := make(map[string]*jdex.Content)
	for _, dd := range described {
		code := dd.ChildrenFiltered("code").First()
		name := strings.TrimSpace(code.Text())
		if name == "" {
			continue
		}
		code.Remove()
		c := content(dd)
		c.Text = strings.TrimSpace(strings.TrimPrefix(c.Text, "-"))
		c.HTML = strings.TrimSpace(strings.TrimPrefix(c.HTML, "-"))
		descriptions[name] = c
	}

	var params []*jdex.Parameter
	for _, raw := range splitTopLevel(signature) {
		words := strings.Fields(raw)
		if len(words) < 2 {
			continue
		}
		p := &jdex.Parameter{Name: words[len(words)-1]}
		var typeWords []string
		for _, w := range words[:len(words)-1] {
			if strings.HasPrefix(w, "@") {
				p.Annotations = append(p.Annotations, stripArgs(w))
				continue
			}
			typeWords = append(typeWords, w)
		}
		p.Type = strings.Join(typeWords, " ")
		p.Description = descriptions[p.Name]
		params = append(params, p)
	}
	return params
}

// splitTopLevel splits s at commas outside angle brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func annotations(text string) []string {
	var a []string
	for _, w := range strings.Fields(normalizeSpace(text)) {
		if strings.HasPrefix(w, "@") {
			a = append(a, stripArgs(w))
		}
	}
	return a
}

func stripArgs(annotation string) string {
	if i := strings.Index(annotation, "("); i >= 0 {
		return annotation[:i]
	}
	return annotation
}

// parseTargets splits an @Target argument list. An empty list is reported
// as the single target NONE.
func parseTargets(list string) []string {
	var targets []string
	for _, t := range strings.Split(list, ",") {
		t = strings.TrimPrefix(strings.TrimSpace(t), "ElementType.")
		if t != "" {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return []string{"NONE"}
	}
	return targets
}

func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u200b", "")
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}
