// Package render produces the two caller-facing views of transformed
// entities: a curated markdown document or a full-fidelity JSON document.
// Rendering is pure; it never performs I/O.
package render

import (
	"encoding/json"
	"fmt"
)

// Format selects the response rendering.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Valid reports whether f is a known format. The empty string is valid
// and means "use the operation's default".
func (f Format) Valid() bool {
	return f == "" || f == FormatMarkdown || f == FormatJSON
}

// JSON serializes v as an indented structured document. No fields are
// omitted beyond what the view types themselves declare.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode structured document: %w", err)
	}
	return string(data), nil
}
