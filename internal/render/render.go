// Package render is the template capability the rest of the pipeline
// consumes: expand a template string against a parameter mapping.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Params is the parameter mapping threaded through every render call.
// It is extended copy-on-write as scope narrows from site to section to
// item, so more specific mappings shadow general ones without mutating them.
type Params map[string]any

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// With returns a copy of p with one extra key.
func (p Params) With(key string, value any) Params {
	out := p.Clone()
	out[key] = value
	return out
}

// Merge returns a copy of p overlaid with extra. Keys in extra win.
func (p Params) Merge(extra map[string]any) Params {
	out := p.Clone()
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Renderer expands template strings. Includes are resolved against
// LayoutDir and rendered with the caller's parameters, so a `set` executed
// earlier in the page is visible inside the included fragment.
type Renderer struct {
	LayoutDir string
}

func New(layoutDir string) *Renderer {
	return &Renderer{LayoutDir: layoutDir}
}

// Render expands src against params. Two extra template functions are
// available to pages:
//
//	{{ set "key" value }}       assign a parameter for the rest of the page
//	{{ include "file.html" }}   inline a layout fragment, rendered with the
//	                            current parameters
//
// The caller's mapping is never modified; `set` writes to a per-call scope.
func (r *Renderer) Render(src string, params Params) (string, error) {
	return r.render(src, params.Clone())
}

func (r *Renderer) render(src string, scope Params) (string, error) {
	funcs := template.FuncMap{
		"set": func(key string, value any) string {
			scope[key] = value
			return ""
		},
		"include": func(name string) (string, error) {
			data, err := os.ReadFile(filepath.Join(r.LayoutDir, name))
			if err != nil {
				return "", fmt.Errorf("include %q: %w", name, err)
			}
			out, err := r.render(string(data), scope)
			if err != nil {
				return "", fmt.Errorf("include %q: %w", name, err)
			}
			return out, nil
		},
	}

	tmpl, err := template.New("render").Funcs(funcs).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(scope)); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
