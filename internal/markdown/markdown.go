// Package markdown is the Markdown capability: pure text-to-HTML
// conversion, with optional sanitization of the converted output.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type Options struct {
	// Unsafe disables HTML sanitization of the converted output.
	Unsafe bool
}

// Converter renders Markdown to HTML with goldmark.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New(opts Options) *Converter {
	c := &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(
					util.Prioritized(newSlugLinkTransformer(), 100),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
	if !opts.Unsafe {
		// id attributes must survive sanitization: list pages locate the
		// title and body of rendered output by element id.
		c.policy = bluemonday.UGCPolicy().AllowAttrs("id").Globally()
	}
	return c
}

// ToHTML converts Markdown source to HTML. No side effects.
func (c *Converter) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	if c.policy != nil {
		return string(c.policy.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}
