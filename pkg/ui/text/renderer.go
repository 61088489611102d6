// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders known results as labelled rows and lists
func (r *Renderer) RenderResult(result interface{}) error {
	b, ok := view.Build(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	_, err := io.WriteString(r.output, Layout(b))
	return err
}

// RenderError renders an error with the path it concerns, if any
func (r *Renderer) RenderError(err error) error {
	msg := fmt.Sprintf("Error: %v\n", err)
	if p := errors.GetErrorPath(err); p != "" {
		msg += fmt.Sprintf("  path: %s\n", p)
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Layout renders a block without styling
func Layout(b *view.Block) string {
	var sb strings.Builder
	sb.WriteString(b.Title + "\n")

	width := LabelWidth(b.Rows)
	for _, row := range b.Rows {
		fmt.Fprintf(&sb, "  %-*s %s\n", width+1, row.Label+":", row.Value)
	}
	for _, item := range b.Items {
		fmt.Fprintf(&sb, "  %s %s\n", item.Label, item.Value)
	}
	for _, note := range b.Notes {
		sb.WriteString(note + "\n")
	}
	if b.Markdown != "" {
		sb.WriteString("\n" + strings.TrimRight(b.Markdown, "\n") + "\n")
	}
	return sb.String()
}

// LabelWidth is the widest row label
func LabelWidth(rows []view.Row) int {
	width := 0
	for _, row := range rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	return width
}
