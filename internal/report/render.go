package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const (
	nameWidth  = 25
	scoreWidth = 10
	ruleWidth  = 60
)

// ParseFormat accepts table, json, yaml and yml (case-sensitive).
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Write renders the report to w in the given format.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable, "":
		return r.WriteTable(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// WriteTable renders the fixed-width text table:
//
//	ENTITY                    | SCORE      | VERDICT
//	------------------------------------------------------------
//	Meta (Zuckerberg)         | -56.0%    | Extractive (Babylon)
func (r *Report) WriteTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | %-*s | %s\n", nameWidth, "ENTITY", scoreWidth, "SCORE", "VERDICT")
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-*s | %s    | %s\n", nameWidth, row.Name, FormatScore(row.Score), row.Verdict)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatScore renders a score with explicit sign, one decimal and a percent unit.
func FormatScore(score float64) string {
	return fmt.Sprintf("%+5.1f%%", score)
}

func (r *Report) WriteJSON(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(r)
}

func (r *Report) WriteYAML(w io.Writer) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r); err != nil {
		return err
	}
	return e.Close()
}
