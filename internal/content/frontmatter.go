package content

import "strings"

// DefaultBoundary separates a page's template-variable block from its body.
// It parses as a template comment, so a stray boundary left in rendered
// output is harmless.
const DefaultBoundary = "{{/* variables */}}"

// SplitVariables separates the optional variable block from the content body
// at the first occurrence of boundary. When the boundary is absent the whole
// text is content and the variable block is empty.
func SplitVariables(text, boundary string) (variables, body string) {
	pos := strings.Index(text, boundary)
	if pos < 0 {
		return "", text
	}
	return strings.TrimSpace(text[:pos]), strings.TrimSpace(text[pos+len(boundary):])
}
