package topics

import (
	"github.com/arthur-debert/modkeeper/pkg/ui/markdown"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and its file extension and returns
	// formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour and leaves other
// formats alone
type MarkdownRenderer struct {
	md *markdown.Renderer
}

// NewMarkdownRenderer creates a renderer that detects the terminal style
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{md: markdown.New()}
}

// Render renders markdown content
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	return r.md.Render(content)
}
