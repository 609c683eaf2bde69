package format

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jdex"
)

// part is a titled section of a message body.
type part struct {
	name   string
	inline bool
	text   string
}

// listItem is one entry of a titled list.
type listItem struct {
	name    string
	content *jdex.Content
}

// message assembles the text body of one entity.
type message struct {
	f        *Formatter
	src      *jdex.Source
	name     string
	url      string
	desc     *jdex.Content
	depr     *jdex.Deprecation
	withURLs bool
	parts    []part
}

func (f *Formatter) newMessage(src *jdex.Source, name, url string, desc *jdex.Content, depr *jdex.Deprecation) *message {
	return &message{
		f:        f,
		src:      src,
		name:     name,
		url:      url,
		desc:     desc,
		depr:     depr,
		withURLs: !src.IsLocal(),
	}
}

// addPart adds a section whose body is documentation content.
func (m *message) addPart(name string, c *jdex.Content, inline bool) {
	if c.Empty() {
		return
	}
	m.parts = append(m.parts, part{name: name, inline: inline, text: m.contentText(c)})
}

// addText adds a section with preformatted text.
func (m *message) addText(name, text string, inline bool) {
	m.parts = append(m.parts, part{name: name, inline: inline, text: text})
}

// addList adds a titled list of up to upTo items. Nothing is added when no
// item has content.
func (m *message) addList(name string, items []listItem, maxPerItem, upTo int) {
	if len(items) == 0 {
		return
	}
	hasContent := false
	for _, item := range items {
		if !item.content.Empty() {
			hasContent = true
			break
		}
	}
	if !hasContent {
		return
	}

	var lines []string
	for _, item := range items {
		if len(lines) == upTo {
			break
		}
		content := m.formatContent(item.content, maxPerItem, true)
		if content == "" {
			lines = append(lines, "- "+item.name)
		} else {
			lines = append(lines, "- "+item.name+" - "+content)
		}
	}
	if len(lines) != len(items) {
		lines = append(lines, fmt.Sprintf("...and %d more", len(items)-len(lines)))
	}

	m.parts = append(m.parts, part{name: name, text: strings.Join(lines, "\n")})
}

func (m *message) build() string {
	title := bold(inlineCode(m.name))
	origin := m.src.Title
	if m.withURLs {
		if m.url != "" {
			title = hyperlink(title, m.url)
		}
		origin = hyperlink(origin, m.src.Locator)
	}

	var titleParts []string
	if m.depr != nil {
		label := "DEPRECATED"
		if m.depr.ForRemoval {
			label = "FOR REMOVAL"
		}
		titleParts = append(titleParts, bold(label))
	}
	titleParts = append(titleParts, title, "-", origin)

	lines := []string{strings.Join(titleParts, " ")}
	if desc := m.formatContent(m.desc, m.f.Limits.Description, false); desc != "" {
		lines = append(lines, desc)
	}

	parts := m.parts
	if m.depr != nil {
		// Without a description the deprecation note is shown in full.
		content := m.formatContent(&m.depr.Content, m.f.Limits.Deprecation, !m.desc.Empty())
		if content != "" {
			name := "Deprecated"
			if m.depr.ForRemoval {
				name = "For Removal"
			}
			parts = append([]part{{name: name, inline: true, text: content}}, parts...)
		}
	}

	for _, p := range parts {
		content := strings.Join(nonBlankLines(p.text), "\n")
		if content == "" {
			continue
		}
		if p.inline {
			lines = append(lines, bold(p.name)+": "+content)
		} else {
			lines = append(lines, bold(p.name)+":\n"+content)
		}
	}

	return strings.Join(lines, "\n")
}

// formatContent renders c as Markdown, truncated to maxLen when positive.
// A short rendering keeps only the first line.
func (m *message) formatContent(c *jdex.Content, maxLen int, short bool) string {
	if c.Empty() {
		return ""
	}

	formatted := m.contentText(c)
	if formatted == "" {
		return ""
	}

	joined := strings.Join(nonBlankLines(formatted), "\n")
	result := joined
	if maxLen > 0 {
		result = TruncateByWords(joined, maxLen)
	}

	if short {
		lines := strings.Split(result, "\n")
		first := lines[0]
		if len(lines) == 1 || strings.HasSuffix(first, ".") {
			result = first
		} else {
			result = first + ellipsis
		}
	}

	if result == ellipsis {
		return ""
	}
	return result
}

// contentText converts c's HTML when it carries markup, falling back to its
// plain text.
func (m *message) contentText(c *jdex.Content) string {
	if c.HTML == "" || c.HTML == c.Text || m.f.Converter == nil {
		return c.Text
	}
	base := ""
	if m.withURLs {
		base = m.url
	}
	md, err := m.f.Converter.Convert(c.HTML, base)
	if err != nil {
		return c.Text
	}
	return md
}
