// Package markdown renders markdown, such as the modpack changelog, for
// the terminal.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// Renderer uses glamour for rich markdown rendering
type Renderer struct {
	Style string // "dark", "light", "notty", "auto" or a style file path
	Width int    // word wrap width, 0 for glamour's default
}

// New creates a renderer that detects the terminal style
func New() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. On error the
// content is returned unchanged.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
