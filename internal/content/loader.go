package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabfl/makesite/internal/config"
)

// markdownExts are the extensions treated as Markdown sources. Anything else
// is taken as ready-made HTML and bypasses conversion and wrapping.
var markdownExts = map[string]bool{
	".md": true, ".mkd": true, ".mkdn": true, ".mdown": true, ".markdown": true,
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}

// Record is the in-memory form of one content file, ready for rendering.
// Content still carries template directives; DestPath is attached by the
// page builder once the output path has been resolved.
type Record struct {
	Date        string
	DateYMD     string
	DateRFC2822 string
	Slug        string
	Content     string
	DestPath    string
}

// Params exposes the record's fields under the keys templates use.
func (r *Record) Params() map[string]any {
	return map[string]any{
		"date":         r.Date,
		"date_ymd":     r.DateYMD,
		"date_rfc2822": r.DateRFC2822,
		"slug":         r.Slug,
		"content":      r.Content,
		"dest_path":    r.DestPath,
	}
}

// Markdown converts Markdown source text to HTML.
type Markdown interface {
	ToHTML(source string) (string, error)
}

// ParserFunc is an optional site-supplied transform applied to the assembled
// content text of every file after Markdown conversion.
type ParserFunc func(text, filename string) (string, error)

// Loader turns source files into Records.
type Loader struct {
	Markdown   Markdown
	Parser     ParserFunc // optional
	Boundary   string     // defaults to DefaultBoundary
	DateFormat string     // defaults to config.DefaultDateFormat
}

// Load reads one source file and produces its Record. Markdown files have
// their variable block split off, the remainder converted to HTML, and the
// result wrapped between the md_header and md_footer layout includes. The
// wrapping happens after conversion so hand-authored HTML files are passed
// through untouched.
func (l *Loader) Load(path string) (*Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	dateYMD, slug := ParseFilename(filepath.Base(path))
	date, err := FormatDate(dateYMD, l.dateFormat())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dateRFC, err := FormatDate(dateYMD, rfc2822Layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	text := string(raw)
	if IsMarkdown(path) {
		if l.Markdown == nil {
			return nil, fmt.Errorf("%s: no markdown converter configured", path)
		}
		variables, body := SplitVariables(text, l.boundary())
		html, err := l.Markdown.ToHTML(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		text = variables + `{{ include "md_header.html" }}` + html + `{{ include "md_footer.html" }}`
	}

	if l.Parser != nil {
		text, err = l.Parser(text, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return &Record{
		Date:        date,
		DateYMD:     dateYMD,
		DateRFC2822: dateRFC,
		Slug:        slug,
		Content:     text,
	}, nil
}

func (l *Loader) boundary() string {
	if l.Boundary == "" {
		return DefaultBoundary
	}
	return l.Boundary
}

func (l *Loader) dateFormat() string {
	if l.DateFormat == "" {
		return config.DefaultDateFormat
	}
	return l.DateFormat
}
