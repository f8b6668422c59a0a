// Package render writes expanded cron expressions as a table, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/cronexpand/pkg/cronexpr"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// labelWidth is the width of the label column in table output.
const labelWidth = 13

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %q (supported: table, json, yaml)", s)
	}
}

// Write renders e in the given format.
func Write(w io.Writer, format Format, e *cronexpr.Expression) error {
	switch format {
	case FormatTable:
		return Table(w, e)
	case FormatJSON:
		return JSON(w, e)
	case FormatYAML:
		return YAML(w, e)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// Table prints one line per field: the lowercased label in a fixed-width
// column followed by the values. Lines already written stay written when a
// later field fails.
func Table(w io.Writer, e *cronexpr.Expression) error {
	for _, f := range cronexpr.Fields {
		r, err := e.Resolve(f)
		if err != nil {
			return err
		}
		label := strings.ToLower(r.Label())
		if _, err := fmt.Fprintf(w, "%-*.*s %s\n", labelWidth, labelWidth, label, r.String()); err != nil {
			return err
		}
	}
	return nil
}

// Document is the structured form of one expanded field.
type Document struct {
	Field   string `json:"field" yaml:"field"`
	Raw     string `json:"raw" yaml:"raw"`
	Values  []int  `json:"values,omitempty" yaml:"values,omitempty,flow"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// Documents expands every field of e.
func Documents(e *cronexpr.Expression) ([]Document, error) {
	fields, err := e.Expand()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(fields))
	for _, r := range fields {
		d := Document{Field: strings.ToLower(r.Label()), Raw: r.Raw, Values: r.Values}
		if r.Field == cronexpr.Command {
			d.Command = r.Raw
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// JSON writes the expanded fields as an indented JSON array.
func JSON(w io.Writer, e *cronexpr.Expression) error {
	docs, err := Documents(e)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// YAML writes the expanded fields as a YAML sequence.
func YAML(w io.Writer, e *cronexpr.Expression) error {
	docs, err := Documents(e)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}
	return enc.Close()
}
