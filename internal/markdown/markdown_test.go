package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	c := New(Options{})
	out, err := c.ToHTML("Some **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestToHTMLSanitizesScripts(t *testing.T) {
	c := New(Options{})
	out, err := c.ToHTML("hello\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestToHTMLKeepsIDs(t *testing.T) {
	// List pages locate titles and bodies by element id, so sanitization
	// must not strip them.
	c := New(Options{})
	out, err := c.ToHTML(`<h1 id="title">Hi</h1>`)
	require.NoError(t, err)
	assert.Contains(t, out, `id="title"`)
}

func TestToHTMLUnsafeKeepsRawHTML(t *testing.T) {
	c := New(Options{Unsafe: true})
	out, err := c.ToHTML("hello\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<script>")
}

func TestLinkRewriteToSlugDirectory(t *testing.T) {
	c := New(Options{})
	out, err := c.ToHTML("[other](2023-01-01-other.md)")
	require.NoError(t, err)
	assert.Contains(t, out, `href="../other/"`)
}

func TestLinkRewriteLeavesExternalLinks(t *testing.T) {
	c := New(Options{})
	out, err := c.ToHTML("[site](https://example.com/page.md)")
	require.NoError(t, err)
	assert.Contains(t, out, `href="https://example.com/page.md"`)
}
