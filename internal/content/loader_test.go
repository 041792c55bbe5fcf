package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarkdown wraps the source in a paragraph so tests can see where
// conversion happened without depending on a real converter.
type fakeMarkdown struct{}

func (fakeMarkdown) ToHTML(source string) (string, error) {
	return "<p>" + source + "</p>", nil
}

func writeTemp(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoadMarkdown(t *testing.T) {
	path := writeTemp(t, "2023-01-01-hello.md",
		`{{ set "title" "Hello" }}`+"\n"+DefaultBoundary+"\nSome *text*.")

	loader := &Loader{Markdown: fakeMarkdown{}}
	rec, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hello", rec.Slug)
	assert.Equal(t, "2023-01-01", rec.DateYMD)
	assert.Equal(t, "January 1, 2023", rec.Date)
	assert.Equal(t, "Sun, 01 Jan 2023 00:00:00 +0000", rec.DateRFC2822)

	// Variables come first, then the header include, the converted body,
	// and the footer include.
	wantOrder := []string{
		`{{ set "title" "Hello" }}`,
		`{{ include "md_header.html" }}`,
		"<p>Some *text*.</p>",
		`{{ include "md_footer.html" }}`,
	}
	rest := rec.Content
	for _, part := range wantOrder {
		idx := strings.Index(rest, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q in %q", part, rec.Content)
		rest = rest[idx+len(part):]
	}
}

func TestLoadHTMLBypassesConversion(t *testing.T) {
	text := "<h1 id=\"title\">Hand-made</h1>\n<div id=\"post\">body</div>\n"
	path := writeTemp(t, "page.html", text)

	loader := &Loader{Markdown: fakeMarkdown{}}
	rec, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, text, rec.Content)
	assert.Equal(t, EpochDate, rec.DateYMD)
	assert.Equal(t, "page", rec.Slug)
}

func TestLoadCustomParser(t *testing.T) {
	path := writeTemp(t, "note.md", "plain words")

	upper := func(text, filename string) (string, error) {
		assert.Equal(t, path, filename)
		return strings.ToUpper(text), nil
	}
	loader := &Loader{Markdown: fakeMarkdown{}, Parser: upper}
	rec, err := loader.Load(path)
	require.NoError(t, err)
	assert.Contains(t, rec.Content, "<P>PLAIN WORDS</P>")
}

func TestLoadIdentityParserMatchesNoParser(t *testing.T) {
	path := writeTemp(t, "2021-05-05-post.md", "hello world")

	plain, err := (&Loader{Markdown: fakeMarkdown{}}).Load(path)
	require.NoError(t, err)

	identity := func(text, filename string) (string, error) { return text, nil }
	hooked, err := (&Loader{Markdown: fakeMarkdown{}, Parser: identity}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, plain, hooked)
}

func TestLoadMissingFile(t *testing.T) {
	loader := &Loader{Markdown: fakeMarkdown{}}
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}
