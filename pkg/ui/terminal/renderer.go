// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/ui/markdown"
	"github.com/arthur-debert/modkeeper/pkg/ui/styles"
	"github.com/arthur-debert/modkeeper/pkg/ui/text"
	"github.com/arthur-debert/modkeeper/pkg/ui/view"
)

// Renderer provides styled terminal output
type Renderer struct {
	output   io.Writer
	markdown *markdown.Renderer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, markdown: markdown.New()}
}

// RenderResult renders known results with semantic styles
func (r *Renderer) RenderResult(result interface{}) error {
	b, ok := view.Build(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	var sb strings.Builder
	sb.WriteString(styles.Render("Header", b.Title) + "\n")

	width := text.LabelWidth(b.Rows)
	for _, row := range b.Rows {
		label := fmt.Sprintf("%-*s", width+1, row.Label+":")
		fmt.Fprintf(&sb, "  %s %s\n", styles.Render("Label", label), styles.Render(string(row.Tone), row.Value))
	}
	for _, item := range b.Items {
		fmt.Fprintf(&sb, "  %s %s\n", styles.Render(string(item.Tone), item.Label), styles.Render(string(item.Tone), item.Value))
	}
	for _, note := range b.Notes {
		sb.WriteString(styles.Render("Note", note) + "\n")
	}
	if b.Markdown != "" {
		sb.WriteString(r.markdown.Render(b.Markdown))
	}

	_, err := io.WriteString(r.output, sb.String())
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	msg := styles.Render("Error", "Error:") + " " + err.Error() + "\n"
	if p := errors.GetErrorPath(err); p != "" {
		msg += "  " + styles.Render("Muted", "path:") + " " + styles.Render("Path", p) + "\n"
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
