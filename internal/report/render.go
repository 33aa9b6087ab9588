package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Same palette as the run summary in cmd/cyberlab/handlers.
var (
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

// Document is the JSON shape written by WriteJSON.
type Document struct {
	RunID    string          `json:"runId"`
	Customer string          `json:"customer"`
	Failures []FailureRecord `json:"failures"`
}

// RenderPlain renders every record as uncolored text.
func RenderPlain(records []FailureRecord) string {
	return render(records, plainFormatter{})
}

// RenderStyled renders every record with lipgloss styling.
func RenderStyled(records []FailureRecord) string {
	return render(records, styledFormatter{})
}

type formatter interface {
	header(s string) string
	tag(s string) string
	label(s string) string
	value(s string) string
}

type plainFormatter struct{}

func (plainFormatter) header(s string) string { return s }
func (plainFormatter) tag(s string) string    { return s }
func (plainFormatter) label(s string) string  { return s }
func (plainFormatter) value(s string) string  { return s }

type styledFormatter struct{}

func (styledFormatter) header(s string) string { return headerStyle.Render(s) }
func (styledFormatter) tag(s string) string    { return tagStyle.Render(s) }
func (styledFormatter) label(s string) string  { return labelStyle.Render(s) }
func (styledFormatter) value(s string) string  { return valueStyle.Render(s) }

func render(records []FailureRecord, f formatter) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(f.header(fmt.Sprintf("  %d API failure(s) recorded. Forward this report to support.", len(records))))
	b.WriteString("\n")
	b.WriteString(f.label("  " + strings.Repeat("═", 60)))
	b.WriteString("\n")

	for i, rec := range records {
		b.WriteString("\n")
		b.WriteString(f.tag(fmt.Sprintf("  [%d] %s (%s)", i+1, rec.Tag, rec.Kind)))
		b.WriteString("\n")
		writeField(&b, f, "Time", rec.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))
		writeField(&b, f, "Request", rec.Method+" "+rec.URL)
		writeHeaders(&b, f, "Request headers", rec.RequestHeaders)
		if rec.RequestBody != "" {
			writeField(&b, f, "Request body", rec.RequestBody)
		}
		if rec.StatusCode != 0 {
			writeField(&b, f, "Status", fmt.Sprintf("%d", rec.StatusCode))
		}
		writeHeaders(&b, f, "Response headers", rec.ResponseHeaders)
		if rec.ResponseBody != "" {
			writeField(&b, f, "Response body", rec.ResponseBody)
		}
		if rec.Error != "" {
			writeField(&b, f, "Error", rec.Error)
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, f formatter, label, value string) {
	b.WriteString("    ")
	b.WriteString(f.label(fmt.Sprintf("%-17s", label+":")))
	b.WriteString(" ")
	b.WriteString(f.value(indentContinuation(value)))
	b.WriteString("\n")
}

func writeHeaders(b *strings.Builder, f formatter, label string, h map[string][]string) {
	if len(h) == 0 {
		return
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, strings.Join(h[k], ", ")))
	}
	writeField(b, f, label, strings.Join(lines, "\n"))
}

// indentContinuation aligns multi-line values under the value column.
func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", 22))
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	if doc.Failures == nil {
		doc.Failures = []FailureRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteJSONFile writes the document to path, replacing any existing file.
func WriteJSONFile(path string, doc Document) error {
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return WriteJSON(f, doc)
}
