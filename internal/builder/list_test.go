package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabfl/makesite/internal/render"
)

const (
	testListLayout = "<ul>{{ .content }}</ul>"
	testItemLayout = "<li>{{ .title }}</li>"
)

func TestMakeListLimit(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writePost(t, srcDir, "2020-01-01-middle.md", "Middle", "middle body")
	writePost(t, srcDir, "2021-06-15-newest.md", "Newest", "newest body")
	writePost(t, srcDir, "2019-12-31-oldest.md", "Oldest", "oldest body")

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)

	dst := outDir + "/recent.html"
	require.NoError(t, b.MakeList(posts, dst, testListLayout, testItemLayout, 2, render.Params{}))

	data, err := os.ReadFile(filepath.Join(outDir, "recent.html"))
	require.NoError(t, err)
	out := string(data)

	// Exactly the two most recent items, newest first.
	assert.Equal(t, 2, strings.Count(out, "<li>"))
	assert.Contains(t, out, "<li>Newest</li>")
	assert.Contains(t, out, "<li>Middle</li>")
	assert.NotContains(t, out, "Oldest")
	assert.Less(t, strings.Index(out, "Newest"), strings.Index(out, "Middle"))
}

func TestMakeListUnlimited(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writePost(t, srcDir, "2020-01-01-a.md", "A", "body")
	writePost(t, srcDir, "2021-01-01-b.md", "B", "body")

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)

	require.NoError(t, b.MakeList(posts, outDir+"/index.html",
		testListLayout, testItemLayout, 0, render.Params{}))

	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<li>"))
}

func TestMakeListSummaryTruncation(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	words := make([]string, 30)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}
	writePost(t, srcDir, "2023-01-01-long.md", "Long", strings.Join(words, " "))

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)

	require.NoError(t, b.MakeList(posts, outDir+"/index.html",
		"{{ .content }}", "{{ .summary }}", 0, render.Params{}))

	data, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)

	want := strings.Join(words[:25], " ")
	assert.Equal(t, want, strings.TrimSpace(string(data)))
}

func TestMakeListMissingTitleElementFailsLoudly(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	// A hand-authored HTML page without the title element.
	page := `<html><body><div id="post">words</div></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "bare.html"), []byte(page), 0644))

	posts, err := b.MakePages(filepath.Join(srcDir, "*.html"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)

	err = b.MakeList(posts, outDir+"/index.html",
		testListLayout, testItemLayout, 0, render.Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"title"`)
	assert.Contains(t, err.Error(), "bare")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a b c", truncate("  a \n b\tc  ", 25))
	assert.Equal(t, "a b", truncate("a b c", 2))
	assert.Equal(t, "", truncate("", 25))
}
