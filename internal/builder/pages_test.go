package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabfl/makesite/internal/content"
	"github.com/gabfl/makesite/internal/markdown"
	"github.com/gabfl/makesite/internal/render"
)

// newTestBuilder returns a Builder whose layout dir carries a minimal
// md_header/md_footer pair producing the title and post elements list
// pages look for.
func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	layoutDir := t.TempDir()
	writeLayout(t, layoutDir, "md_header.html", `<h1 id="title">{{ .title }}</h1><div id="post">`)
	writeLayout(t, layoutDir, "md_footer.html", `</div>`)

	b := &Builder{
		Renderer: render.New(layoutDir),
		Loader:   &content.Loader{Markdown: markdown.New(markdown.Options{})},
	}
	return b
}

func writeLayout(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
}

func writePost(t *testing.T, dir, name, title, body string) {
	t.Helper()
	text := `{{ set "title" "` + title + `" }}` + "\n" + content.DefaultBoundary + "\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
}

func TestMakePagesSortedByDateDescending(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writePost(t, srcDir, "2020-01-01-middle.md", "Middle", "middle body")
	writePost(t, srcDir, "2021-06-15-newest.md", "Newest", "newest body")
	writePost(t, srcDir, "2019-12-31-oldest.md", "Oldest", "oldest body")

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "newest", posts[0].Slug)
	assert.Equal(t, "middle", posts[1].Slug)
	assert.Equal(t, "oldest", posts[2].Slug)
}

func TestMakePagesWritesRenderedOutput(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writePost(t, srcDir, "2023-01-01-hello.md", "Hello", "Some **bold** text.")

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", render.Params{})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	wantPath := filepath.Join(outDir, "hello", "index.html")
	assert.Equal(t, outDir+"/hello/index.html", posts[0].DestPath)

	data, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `<h1 id="title">Hello</h1>`)
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestMakePagesParamShadowing(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()
	outDir := t.TempDir()

	// The per-item slug must shadow a site-wide slug key without mutating
	// the caller's mapping.
	writePost(t, srcDir, "2023-01-01-hello.md", "Hello", "body")
	params := render.Params{"slug": "site-wide"}

	posts, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		outDir+"/{{ .slug }}/index.html", params)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, outDir+"/hello/index.html", posts[0].DestPath)
	assert.Equal(t, "site-wide", params["slug"])
}

func TestMakePagesUnreadableSourceIsFatal(t *testing.T) {
	b := newTestBuilder(t)
	srcDir := t.TempDir()

	// A directory matching the glob cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "broken.md"), 0755))

	_, err := b.MakePages(filepath.Join(srcDir, "*.md"),
		t.TempDir()+"/{{ .slug }}/index.html", render.Params{})
	require.Error(t, err)
}
