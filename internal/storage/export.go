// ABOUTME: Export of history entries to files
// ABOUTME: Supports markdown, YAML, and JSON formats
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// ExportFormat selects the file format for an exported run
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatYAML     ExportFormat = "yaml"
	FormatJSON     ExportFormat = "json"
)

// ParseExportFormat validates a format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(s)) {
	case FormatMarkdown, ExportFormat("md"):
		return FormatMarkdown, nil
	case FormatYAML, ExportFormat("yml"):
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (markdown, yaml, json)", s)
}

// ExportData is the exportable shape of one run
type ExportData struct {
	Version    string           `yaml:"version" json:"version"`
	ExportedAt string           `yaml:"exported_at" json:"exported_at"`
	Tool       string           `yaml:"tool" json:"tool"`
	RunID      string           `yaml:"run_id" json:"run_id"`
	Goal       string           `yaml:"goal" json:"goal"`
	Space      string           `yaml:"space" json:"space"`
	Pages      []ExportPage     `yaml:"pages" json:"pages"`
	Tabs       []ExportTab      `yaml:"tabs" json:"tabs"`
	Reasoning  string           `yaml:"reasoning,omitempty" json:"reasoning,omitempty"`
	Succeeded  int              `yaml:"succeeded" json:"succeeded"`
	Failed     int              `yaml:"failed" json:"failed"`
	CreatedAt  string           `yaml:"created_at" json:"created_at"`
}

// ExportPage is a routed page for export
type ExportPage struct {
	Title       string `yaml:"title" json:"title"`
	ContentType string `yaml:"content_type" json:"content_type"`
}

// ExportTab is one rendered output block for export
type ExportTab struct {
	PageTitle string `yaml:"page_title" json:"page_title"`
	Tool      string `yaml:"tool" json:"tool"`
	Content   string `yaml:"content" json:"content"`
}

// Export shapes a history entry for export
func Export(entry *models.HistoryEntry) *ExportData {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "agentmode",
		RunID:      entry.ID,
		Goal:       entry.Goal,
		Space:      entry.Space,
		Reasoning:  entry.Reasoning,
		Succeeded:  entry.Succeeded,
		Failed:     entry.Failed,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
	}
	for _, p := range entry.Pages {
		data.Pages = append(data.Pages, ExportPage{
			Title:       p.Title,
			ContentType: string(p.ContentType),
		})
	}
	for _, tab := range entry.Tabs {
		data.Tabs = append(data.Tabs, ExportTab{
			PageTitle: tab.PageTitle,
			Tool:      tab.Tool.Display(),
			Content:   tab.Content,
		})
	}
	return data
}

// WriteFile renders the export in the given format and writes it to path
func WriteFile(data *ExportData, path string, format ExportFormat) error {
	var out []byte
	var err error

	switch format {
	case FormatMarkdown:
		out = []byte(renderMarkdown(data))
	case FormatYAML:
		out, err = yaml.Marshal(data)
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to render export: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func renderMarkdown(data *ExportData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Agent Mode Run %s\n\n", data.RunID)
	fmt.Fprintf(&b, "- Goal: %s\n", data.Goal)
	fmt.Fprintf(&b, "- Space: %s\n", data.Space)
	fmt.Fprintf(&b, "- Created: %s\n", data.CreatedAt)
	fmt.Fprintf(&b, "- Result: %d succeeded, %d failed\n\n", data.Succeeded, data.Failed)

	b.WriteString("## Pages\n\n")
	for _, p := range data.Pages {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Title, p.ContentType)
	}

	for _, tab := range data.Tabs {
		fmt.Fprintf(&b, "\n## %s - %s\n\n", tab.PageTitle, tab.Tool)
		b.WriteString(tab.Content)
		b.WriteString("\n")
	}

	if data.Reasoning != "" {
		b.WriteString("\n## Reasoning\n\n")
		b.WriteString(data.Reasoning)
		b.WriteString("\n")
	}
	return b.String()
}
