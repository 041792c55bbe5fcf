// Package parser holds the optional custom-parser hook applied to every
// content file after Markdown conversion, plus the built-in implementations
// selectable from site.yaml.
package parser

import (
	"fmt"

	"github.com/verkaro/editml-go"

	"github.com/gabfl/makesite/internal/content"
)

// ForName resolves a parser name from the configuration. The empty name
// means no custom parsing; the hook is simply absent.
func ForName(name string) (content.ParserFunc, error) {
	switch name {
	case "":
		return nil, nil
	case "editml":
		return EditML, nil
	default:
		return nil, fmt.Errorf("unknown parser %q", name)
	}
}

// EditML applies the clean-view transform to edit-annotated drafts, so
// content written with EditML markup publishes with all edits accepted.
func EditML(text, filename string) (string, error) {
	nodes, issues := editml.Parse(text)
	if len(issues) > 0 && issues[0].Severity == editml.SeverityError {
		return "", fmt.Errorf("editml parsing error in %s: %s", filename, issues[0].Message)
	}
	clean, issues := editml.TransformCleanView(nodes)
	if len(issues) > 0 && issues[0].Severity == editml.SeverityError {
		return "", fmt.Errorf("editml transformation error in %s: %s", filename, issues[0].Message)
	}
	return clean, nil
}
