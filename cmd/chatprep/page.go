package main

import (
	"html"
	"strings"
)

// previewTitle is the document title for generated preview pages.
const previewTitle = "chatprep preview"

// buildPreviewPage wraps a rendered fragment into a standalone HTML
// document with an optional inline stylesheet.
func buildPreviewPage(title, css, fragment string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n")
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(sanitizeCSS(css))
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// sanitizeCSS escapes sequences that could close the <style> block early.
// User-supplied stylesheets pass through here unreviewed.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
