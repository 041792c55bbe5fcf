package markdown

import (
	"path"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/gabfl/makesite/internal/content"
)

// slugLinkTransformer rewrites relative links between Markdown sources so
// they keep working in the generated tree, where every page lives at
// <slug>/index.html. A link to `2023-01-01-other.md` in a sibling source
// becomes `../other/`.
type slugLinkTransformer struct{}

func newSlugLinkTransformer() parser.ASTTransformer {
	return &slugLinkTransformer{}
}

func (t *slugLinkTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		dest := string(link.Destination)
		if strings.Contains(dest, "://") || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") {
			return ast.WalkContinue, nil
		}
		if !content.IsMarkdown(dest) {
			return ast.WalkContinue, nil
		}

		_, slug := content.ParseFilename(path.Base(dest))
		link.Destination = []byte("../" + slug + "/")
		return ast.WalkContinue, nil
	})
}
