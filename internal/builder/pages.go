package builder

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/gabfl/makesite/internal/content"
	"github.com/gabfl/makesite/internal/render"
	"github.com/gabfl/makesite/internal/util"
)

// Builder renders individual pages and aggregate list pages.
type Builder struct {
	Renderer *render.Renderer
	Loader   *content.Loader
}

// MakePages renders every source file matching pattern. The destination
// path is itself a template, expanded with the same parameters as the page
// content. Returned records are sorted by canonical date, most recent
// first, regardless of the order the glob produced them in.
func (b *Builder) MakePages(pattern, dstTemplate string, params render.Params) ([]*content.Record, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad source pattern %s: %w", pattern, err)
	}

	items := make([]*content.Record, 0, len(matches))
	for _, srcPath := range matches {
		rec, err := b.Loader.Load(srcPath)
		if err != nil {
			return nil, err
		}

		pageParams := params.Merge(rec.Params())
		dstPath, err := b.Renderer.Render(dstTemplate, pageParams)
		if err != nil {
			return nil, fmt.Errorf("failed to render destination path for %s: %w", srcPath, err)
		}
		output, err := b.Renderer.Render(rec.Content, pageParams)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", srcPath, err)
		}

		rec.DestPath = dstPath
		items = append(items, rec)

		log.Printf("rendering %s => %s ...", srcPath, dstPath)
		if err := util.WriteFile(dstPath, output); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateYMD > items[j].DateYMD
	})
	return items, nil
}
