// ABOUTME: Tests for the run command
// ABOUTME: Covers page building, dry-run planning, and flag validation

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GaneshEEE/agentmode/internal/models"
)

func TestNewRunCmd(t *testing.T) {
	cmd := NewRunCmd()

	if !strings.HasPrefix(cmd.Use, "run") {
		t.Errorf("Use = %q, want run prefix", cmd.Use)
	}

	for _, flagName := range []string{"space", "page", "type", "dry-run", "no-history"} {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("--%s flag not found", flagName)
		}
	}
}

func TestBuildPages(t *testing.T) {
	tests := []struct {
		name    string
		titles  []string
		types   []string
		want    []models.Page
		wantErr bool
	}{
		{
			name:   "no types leaves pages unresolved",
			titles: []string{"API Docs"},
			types:  []string{},
			want:   []models.Page{{Title: "API Docs"}},
		},
		{
			name:   "pinned type",
			titles: []string{"auth.py"},
			types:  []string{"code"},
			want:   []models.Page{{Title: "auth.py", ContentType: models.ContentCode}},
		},
		{
			name:   "type is case-insensitive",
			titles: []string{"Demo"},
			types:  []string{"VIDEO"},
			want:   []models.Page{{Title: "Demo", ContentType: models.ContentVideo}},
		},
		{
			name:   "fewer types than pages",
			titles: []string{"auth.py", "API Docs"},
			types:  []string{"code"},
			want: []models.Page{
				{Title: "auth.py", ContentType: models.ContentCode},
				{Title: "API Docs"},
			},
		},
		{
			name:    "invalid type",
			titles:  []string{"Doc"},
			types:   []string{"pdf"},
			wantErr: true,
		},
		{
			name:    "more types than pages",
			titles:  []string{"Doc"},
			types:   []string{"text", "code"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPages(tt.titles, tt.types)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildPages() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d pages, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pages[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunCmd_DryRun(t *testing.T) {
	t.Setenv("AGENTMODE_RULES_FILE", "")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "Summarize the API docs",
		"--space", "ENG", "--page", "API Docs", "--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	for _, want := range []string{"API Docs", "ai_powered_search", "text"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("dry-run output missing %q:\n%s", want, outputStr)
		}
	}
}

func TestRunCmd_DryRunDetectsCodePage(t *testing.T) {
	t.Setenv("AGENTMODE_RULES_FILE", "")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "optimize this",
		"--space", "ENG", "--page", "auth.py", "--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "code_assistant") {
		t.Errorf("dry-run should route auth.py to code_assistant:\n%s", outputStr)
	}
}

func TestRunCmd_DryRunJSON(t *testing.T) {
	t.Setenv("AGENTMODE_RULES_FILE", "")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "Summarize the API docs",
		"--space", "ENG", "--page", "API Docs", "--dry-run", "--format", "json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, `"Assignments"`) {
		t.Errorf("JSON output missing assignments:\n%s", outputStr)
	}
}

func TestRunCmd_EmptyGoal(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "   ",
		"--space", "ENG", "--page", "API Docs", "--dry-run"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want validation error for empty goal")
	}
}

func TestRunCmd_MissingSpace(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "Summarize", "--page", "API Docs", "--dry-run"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want missing --space error")
	}
}

func TestRunCmd_InvalidType(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"run", "Summarize",
		"--space", "ENG", "--page", "Doc", "--type", "pdf", "--dry-run"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want invalid type error")
	}
	if !strings.Contains(err.Error(), "invalid content type") {
		t.Errorf("error = %v, want invalid content type message", err)
	}
}
