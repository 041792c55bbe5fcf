package builder

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// summaryWords is how many words of the post body make it into a summary.
const summaryWords = 25

// titleAndSummary parses a rendered output file and extracts the text of
// the elements with id "title" and id "post". A page missing either element
// would silently corrupt every list and feed it appears in, so their
// absence is a hard error naming the file.
func titleAndSummary(path string) (title, summary string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read rendered page %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse rendered page %s: %w", path, err)
	}

	titleNode := findNodeByID(doc, "title")
	if titleNode == nil {
		return "", "", fmt.Errorf("no element with id %q in rendered page %s", "title", path)
	}
	postNode := findNodeByID(doc, "post")
	if postNode == nil {
		return "", "", fmt.Errorf("no element with id %q in rendered page %s", "post", path)
	}

	return strings.TrimSpace(textContent(titleNode)), truncate(textContent(postNode), summaryWords), nil
}

func findNodeByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNodeByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates the text nodes under n, in document order.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// truncate joins the first `words` whitespace-separated words of text.
func truncate(text string, words int) string {
	fields := strings.Fields(text)
	if len(fields) > words {
		fields = fields[:words]
	}
	return strings.Join(fields, " ")
}
