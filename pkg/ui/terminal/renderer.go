// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/steve02081504/char-tamplate/pkg/ui/display"
	"github.com/steve02081504/char-tamplate/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

var statusStyles = map[display.Status]string{
	display.StatusOK:      "Success",
	display.StatusMatch:   "Success",
	display.StatusRemoved: "Warning",
	display.StatusSkipped: "Muted",
	display.StatusError:   "Error",
}

// RenderResult renders a report with a styled header, fields and items
func (r *Renderer) RenderResult(report *display.Report) error {
	var blocks []string

	if report.Message != "" {
		blocks = append(blocks, styles.Get("Header").Render(report.Message))
	}

	if len(report.Fields) > 0 {
		rows := make([]string, 0, len(report.Fields))
		for _, f := range report.Fields {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				styles.Get("Label").Render(f.Label),
				styles.Get("Value").Render(f.Value),
			))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	if len(report.Items) > 0 {
		rows := make([]string, 0, len(report.Items))
		for _, item := range report.Items {
			line := item.Text
			if name, ok := statusStyles[item.Status]; ok {
				line = styles.Get(name).Render(string(item.Status)) + " " + line
			}
			rows = append(rows, styles.Get("Item").Render(line))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	if len(blocks) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(r.output, strings.Join(blocks, "\n"))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Get("Error").Render("Error: ")+err.Error())
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
