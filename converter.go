package jdex

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML documentation fragment into Markdown.
	// Relative links are resolved against baseURL. An empty baseURL drops
	// links and keeps only their text.
	Convert(html, baseURL string) (string, error)
}
