// Package scaffold creates new site skeletons and new content files from
// archetypes.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/gabfl/makesite/internal/config"
)

// CreateNewSite writes a working site skeleton into the named directory:
// site.yaml, layout templates, a landing page, a dated sample post, an
// about page, and a stylesheet.
func CreateNewSite(name string) error {
	fmt.Println("Scaffolding new site in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"content/blog", "layout", "static/css", "archetypes"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	samplePost := filepath.Join("content/blog", time.Now().Format("2006-01-02")+"-welcome.md")
	files := map[string]string{
		"site.yaml":               siteYamlContent,
		"content/_index.html":     indexHTMLContent,
		"content/about.html":      aboutHTMLContent,
		samplePost:                samplePostContent,
		"layout/md_header.html":   mdHeaderContent,
		"layout/md_footer.html":   mdFooterContent,
		"layout/list.html":        listContent,
		"layout/list_recent.html": listRecentContent,
		"layout/item.html":        itemContent,
		"layout/item_recent.html": itemRecentContent,
		"layout/feed.xml":         feedXMLContent,
		"layout/item.xml":         itemXMLContent,
		"archetypes/default.md":   archetypeContent,
		"static/css/style.css":    styleCSSContent,
	}

	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  makesite build")
	fmt.Println("  makesite serve")
	return nil
}

// CreateNewContent writes a dated content file for a section from the
// default archetype. The archetype uses [[ ]] delimiters so its output can
// contain literal {{ }} page directives.
func CreateNewContent(section, title, configPath string) error {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	site, err := config.Load(configPath)
	if err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	path := filepath.Join("content", section, today+"-"+slug+".md")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	archetypePath := filepath.Join("archetypes", "default.md")
	tmplBytes, err := os.ReadFile(archetypePath)
	if err != nil {
		return fmt.Errorf("could not read archetype file %s: %w", archetypePath, err)
	}

	tmpl, err := template.New("archetype").Delims("[[", "]]").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("failed to parse archetype file %s: %w", archetypePath, err)
	}

	data := struct {
		Title  string
		Author string
		Date   string
	}{
		Title:  title,
		Author: site.Author,
		Date:   today,
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, data); err != nil {
		return fmt.Errorf("failed to execute archetype template: %w", err)
	}

	if err := os.WriteFile(path, output.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write content file %s: %w", path, err)
	}

	fmt.Println("Created:", path)
	return nil
}
