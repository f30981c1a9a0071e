// Package display holds the render-neutral results that chartool commands
// hand to a ui.Renderer.
package display

import "time"

// Status tags an item in a report
type Status string

const (
	StatusNone    Status = ""
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusRemoved Status = "removed"
	StatusMatch   Status = "match"
	StatusError   Status = "error"
)

// Field is a labelled value shown in a report header
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Item is one line of a report body
type Item struct {
	Text   string `json:"text"`
	Status Status `json:"status,omitempty"`
}

// Report is the result of a command that does not emit data
type Report struct {
	Command   string    `json:"command"`
	Message   string    `json:"message,omitempty"`
	Fields    []Field   `json:"fields,omitempty"`
	Items     []Item    `json:"items,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewReport starts a report for command
func NewReport(command string) *Report {
	return &Report{Command: command, Timestamp: time.Now()}
}

// AddField appends a labelled value
func (r *Report) AddField(label, value string) *Report {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
	return r
}

// AddItem appends a body line
func (r *Report) AddItem(text string, status Status) *Report {
	r.Items = append(r.Items, Item{Text: text, Status: status})
	return r
}

// WithMessage sets the summary line
func (r *Report) WithMessage(msg string) *Report {
	r.Message = msg
	return r
}

// Field returns the value of the first field with label
func (r *Report) Field(label string) (string, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}
