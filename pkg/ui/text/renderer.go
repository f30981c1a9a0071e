// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/steve02081504/char-tamplate/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a report as aligned plain text
func (r *Renderer) RenderResult(report *display.Report) error {
	var b strings.Builder
	if report.Message != "" {
		b.WriteString(report.Message)
		b.WriteString("\n")
	}
	width := 0
	for _, f := range report.Fields {
		if len(f.Label) > width {
			width = len(f.Label)
		}
	}
	for _, f := range report.Fields {
		fmt.Fprintf(&b, "%-*s  %s\n", width+1, f.Label+":", f.Value)
	}
	for _, item := range report.Items {
		if item.Status != display.StatusNone {
			fmt.Fprintf(&b, "  [%s] %s\n", item.Status, item.Text)
		} else {
			fmt.Fprintf(&b, "  %s\n", item.Text)
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
