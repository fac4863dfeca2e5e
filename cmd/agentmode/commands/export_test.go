// ABOUTME: Tests for the export command
// ABOUTME: Exercises format resolution and end-to-end file export

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GaneshEEE/agentmode/internal/storage"
)

func TestNewExportCmd(t *testing.T) {
	cmd := NewExportCmd()

	if !strings.HasPrefix(cmd.Use, "export") {
		t.Errorf("Use = %q, want export prefix", cmd.Use)
	}

	for _, flagName := range []string{"out", "format"} {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("--%s flag not found", flagName)
		}
	}
}

func TestResolveExportFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		path     string
		want     storage.ExportFormat
		wantErr  bool
	}{
		{"explicit wins", "yaml", "run.md", storage.FormatYAML, false},
		{"yaml extension", "", "run.yaml", storage.FormatYAML, false},
		{"yml extension", "", "run.yml", storage.FormatYAML, false},
		{"json extension", "", "run.json", storage.FormatJSON, false},
		{"md extension defaults to markdown", "", "run.md", storage.FormatMarkdown, false},
		{"no extension defaults to markdown", "", "run", storage.FormatMarkdown, false},
		{"bad explicit format", "pdf", "run.md", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveExportFormat(tt.explicit, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveExportFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveExportFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportCmd_Markdown(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("AGENTMODE_DATA_DIR", dataDir)
	entry := seedRun(t, dataDir, "Summarize API Docs")

	outPath := filepath.Join(t.TempDir(), "run.md")
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"export", entry.ID, "--out", outPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	content := string(raw)
	for _, want := range []string{"# Agent Mode Run", "Summarize API Docs", "the summary"} {
		if !strings.Contains(content, want) {
			t.Errorf("export missing %q:\n%s", want, content)
		}
	}
}

func TestExportCmd_NotFound(t *testing.T) {
	t.Setenv("AGENTMODE_DATA_DIR", t.TempDir())

	outPath := filepath.Join(t.TempDir(), "run.md")
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"export", "run_missing", "--out", outPath})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want not-found")
	}
}
