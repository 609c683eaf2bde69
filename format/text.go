package format

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ellipsis marks truncated text.
const ellipsis = "…"

// TruncateByWords shortens text to at most maxLen characters, cutting at
// word boundaries and appending an ellipsis. Trailing ':', ';', ',' or '.'
// is dropped before the ellipsis. Returns an empty string when not even
// the first word fits.
func TruncateByWords(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	var b strings.Builder
	length := 0
	for _, word := range strings.Split(text, " ") {
		next := length + utf8.RuneCountInString(word) + 1
		if next > maxLen {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		length = next
	}

	result := b.String()
	if strings.TrimSpace(result) == "" {
		return ""
	}

	trimmed := strings.TrimRight(result, " \t\n\r")
	if strings.ContainsAny(trimmed[len(trimmed)-1:], ":;,.") {
		result = trimmed[:len(trimmed)-1]
	}

	return result + ellipsis
}

// qualifierRegex matches a package qualifier directly in front of a type
// name, e.g. "java.util." in "java.util.List".
var qualifierRegex = regexp.MustCompile(`\b((?:[a-z_$][\w$]*\.)+)([A-Za-z_$])`)

// SimpleTypeName strips package qualifiers from a Java type, keeping
// nested type names, generics and varargs intact.
func SimpleTypeName(t string) string {
	return qualifierRegex.ReplaceAllString(t, "$2")
}

// nonBlankLines returns the lines of s that contain non-space characters.
func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func inlineCode(s string) string {
	return "`" + s + "`"
}

func bold(s string) string {
	return "**" + s + "**"
}

func hyperlink(text, url string) string {
	return "[" + text + "](<" + url + ">)"
}
