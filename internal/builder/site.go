package builder

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gabfl/makesite/internal/config"
	"github.com/gabfl/makesite/internal/content"
	"github.com/gabfl/makesite/internal/markdown"
	"github.com/gabfl/makesite/internal/parser"
	"github.com/gabfl/makesite/internal/render"
	"github.com/gabfl/makesite/internal/util"
)

// Options configures a site build.
type Options struct {
	// Unsafe disables HTML sanitization of converted Markdown.
	Unsafe bool

	ContentDir string
	LayoutDir  string
	StaticDir  string
}

// Site drives one full build: per-section pages, lists, feeds and digests,
// then the top-level pages, into one environment's document root.
type Site struct {
	Config config.Config
	Env    config.Environment

	opts    Options
	builder *Builder
}

// NewSite wires the pipeline for the named environment.
func NewSite(cfg config.Config, envName string, opts Options) (*Site, error) {
	env, err := cfg.Env(envName)
	if err != nil {
		return nil, err
	}

	hook, err := parser.ForName(cfg.Parser)
	if err != nil {
		return nil, err
	}

	return &Site{
		Config: cfg,
		Env:    env,
		opts:   opts,
		builder: &Builder{
			Renderer: render.New(opts.LayoutDir),
			Loader: &content.Loader{
				Markdown:   markdown.New(markdown.Options{Unsafe: opts.Unsafe}),
				Parser:     hook,
				DateFormat: cfg.DateFormat,
			},
		},
	}, nil
}

// layouts are the templates every list and feed page is assembled from.
type layouts struct {
	list       string
	listRecent string
	item       string
	itemRecent string
	feed       string
	feedItem   string
}

func (s *Site) loadLayouts() (layouts, error) {
	read := func(name string) (string, error) {
		text, err := util.ReadFile(filepath.Join(s.opts.LayoutDir, name))
		if err != nil {
			return "", fmt.Errorf("failed to load layout %s: %w", name, err)
		}
		return text, nil
	}

	var l layouts
	var err error
	if l.list, err = read("list.html"); err != nil {
		return l, err
	}
	if l.listRecent, err = read("list_recent.html"); err != nil {
		return l, err
	}
	if l.item, err = read("item.html"); err != nil {
		return l, err
	}
	if l.itemRecent, err = read("item_recent.html"); err != nil {
		return l, err
	}
	if l.feed, err = read("feed.xml"); err != nil {
		return l, err
	}
	if l.feedItem, err = read("item.xml"); err != nil {
		return l, err
	}
	return l, nil
}

// baseParams seeds the site-wide parameter mapping: environment settings,
// site metadata, and every section's and page's path and display name.
func (s *Site) baseParams() render.Params {
	params := render.Params{
		"base_path":    s.Env.BasePath,
		"site_url":     s.Env.SiteURL,
		"subtitle":     s.Config.Subtitle,
		"author":       s.Config.Author,
		"html_lang":    s.Config.HTMLLang,
		"current_year": time.Now().Year(),
	}
	for _, sec := range s.Config.Sections {
		params[sec.Key+"_path"] = sec.Path
		params[sec.Key+"_name"] = sec.Name
	}
	for _, page := range s.Config.Pages {
		params[page.Key+"_path"] = page.Path
		params[page.Key+"_name"] = page.Name
	}
	return params
}

// sectionSourceDir resolves where a section's sources live. If the
// configured path has no directory under content/, fall back to the
// directory named after the section itself, so renaming a section's output
// path does not silently empty it.
func (s *Site) sectionSourceDir(sec config.Section) string {
	configured := filepath.Join(s.opts.ContentDir, sec.Path)
	if util.IsDir(configured) {
		return configured
	}
	if fallback := filepath.Join(s.opts.ContentDir, sec.Key); util.IsDir(fallback) {
		return fallback
	}
	return configured
}

// Build runs one full build from scratch. The document root is removed and
// recreated from the static tree, each section is rendered (pages, index,
// feed, recent digest), each digest is fed back into the shared parameters
// under recent_<section>, and finally the top-level pages are rendered with
// everything accumulated so far.
func (s *Site) Build() error {
	docroot := s.Env.DocumentRoot
	if err := os.RemoveAll(docroot); err != nil {
		return fmt.Errorf("failed to clean document root %s: %w", docroot, err)
	}
	if util.IsDir(s.opts.StaticDir) {
		if err := util.CopyTree(s.opts.StaticDir, docroot); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
	}
	if err := os.MkdirAll(docroot, 0755); err != nil {
		return fmt.Errorf("failed to create document root %s: %w", docroot, err)
	}

	l, err := s.loadLayouts()
	if err != nil {
		return err
	}

	params := s.baseParams()

	for _, sec := range s.Config.Sections {
		log.Printf("rendering section => %s ...", sec.Key)

		srcDir := s.sectionSourceDir(sec)
		secParams := params.With("blog", sec.Path)

		posts, err := s.builder.MakePages(
			filepath.Join(srcDir, "*"+sec.Ext),
			docroot+"/"+sec.Path+"/{{ .slug }}/index.html",
			secParams,
		)
		if err != nil {
			return err
		}

		listParams := secParams.With("title", sec.Name)
		if err := s.builder.MakeList(posts, docroot+"/"+sec.Path+"/index.html",
			l.list, l.item, 0, listParams); err != nil {
			return err
		}
		if err := s.builder.MakeList(posts, docroot+"/"+sec.Path+"/rss.xml",
			l.feed, l.feedItem, 0, listParams); err != nil {
			return err
		}
		if err := s.builder.MakeList(posts, docroot+"/"+sec.Path+"/recent.html",
			l.listRecent, l.itemRecent, sec.RecentItems, listParams); err != nil {
			return err
		}

		// Each section's digest becomes a snippet later pages can embed.
		snippet, err := util.ReadFile(filepath.Join(docroot, sec.Path, "recent.html"))
		if err != nil {
			return fmt.Errorf("failed to read back recent digest for %s: %w", sec.Key, err)
		}
		params = params.With("recent_"+sec.Key, snippet)
	}

	if _, err := s.builder.MakePages(
		filepath.Join(s.opts.ContentDir, "_index.html"),
		docroot+"/index.html", params); err != nil {
		return err
	}
	if _, err := s.builder.MakePages(
		filepath.Join(s.opts.ContentDir, "[^_]*.html"),
		docroot+"/{{ .slug }}/index.html", params); err != nil {
		return err
	}

	return nil
}
