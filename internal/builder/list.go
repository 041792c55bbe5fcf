package builder

import (
	"fmt"
	"log"
	"strings"

	"github.com/gabfl/makesite/internal/content"
	"github.com/gabfl/makesite/internal/render"
	"github.com/gabfl/makesite/internal/util"
)

// MakeList renders one aggregate page (section index, feed, or recent
// digest) from an already-sorted record list. Each item's title and summary
// come from its rendered output file, so lists show exactly what the reader
// will see after template expansion. A limit of 0 means all items.
func (b *Builder) MakeList(posts []*content.Record, dstTemplate, listLayout, itemLayout string, limit int, params render.Params) error {
	var items strings.Builder
	for i, post := range posts {
		if limit > 0 && i >= limit {
			break
		}

		title, summary, err := titleAndSummary(post.DestPath)
		if err != nil {
			return err
		}

		itemParams := params.Merge(post.Params())
		itemParams["title"] = title
		itemParams["summary"] = summary

		item, err := b.Renderer.Render(itemLayout, itemParams)
		if err != nil {
			return fmt.Errorf("failed to render list item for %s: %w", post.DestPath, err)
		}
		items.WriteString(item)
	}

	listParams := params.With("content", items.String())
	dstPath, err := b.Renderer.Render(dstTemplate, listParams)
	if err != nil {
		return fmt.Errorf("failed to render list destination path: %w", err)
	}
	output, err := b.Renderer.Render(listLayout, listParams)
	if err != nil {
		return fmt.Errorf("failed to render list %s: %w", dstPath, err)
	}

	log.Printf("rendering list => %s ...", dstPath)
	return util.WriteFile(dstPath, output)
}
