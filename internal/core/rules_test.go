// ABOUTME: Tests for the tool-inference rule table
// ABOUTME: Verifies keyword classification, defaults, and YAML overrides

package core

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/GaneshEEE/agentmode/internal/models"
)

func TestInfer_Keywords(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name        string
		instruction string
		want        []models.Tool
	}{
		{
			name:        "optimize implies code assistant",
			instruction: "optimize the performance of this function",
			want:        []models.Tool{models.ToolCodeAssistant},
		},
		{
			name:        "video outranks generic summarize",
			instruction: "summarize this video",
			want:        []models.Tool{models.ToolVideoSummarizer, models.ToolSearch},
		},
		{
			name:        "chart implies image insights",
			instruction: "explain the latency chart",
			want:        []models.Tool{models.ToolImageInsights},
		},
		{
			name:        "what changed implies impact analyzer",
			instruction: "tell me what changed between versions",
			want:        []models.Tool{models.ToolImpactAnalyzer},
		},
		{
			name:        "qa implies test support",
			instruction: "draft a qa plan for the checkout flow",
			want:        []models.Tool{models.ToolTestSupport},
		},
		{
			name:        "no keyword defaults to search",
			instruction: "tell me about the architecture",
			want:        []models.Tool{models.ToolSearch},
		},
		{
			name:        "multi-tool instruction keeps rule order",
			instruction: "summarize the page and fix the bug",
			want:        []models.Tool{models.ToolCodeAssistant, models.ToolSearch},
		},
		{
			name:        "transcribe implies video summarizer",
			instruction: "transcribe the quarterly all-hands",
			want:        []models.Tool{models.ToolVideoSummarizer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Infer(tt.instruction); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Infer(%q) = %v, want %v", tt.instruction, got, tt.want)
			}
		})
	}
}

func TestInfer_Deduplicates(t *testing.T) {
	rules := DefaultRules()
	// "fix" and "bug" both hit the code rule; the tool appears once
	got := rules.Infer("fix the bug in the scheduler")
	if len(got) != 1 || got[0] != models.ToolCodeAssistant {
		t.Errorf("Infer() = %v, want single code_assistant", got)
	}
}

func TestMatchesClass(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name        string
		ct          models.ContentType
		instruction string
		want        bool
	}{
		{"image class on diagram", models.ContentImage, "walk me through the diagram", true},
		{"image class misses plain text", models.ContentImage, "summarize the overview", false},
		{"code class on refactor", models.ContentCode, "refactor the helpers", true},
		{"video class on transcribe", models.ContentVideo, "transcribe the meeting", true},
		{"text has no class", models.ContentText, "summarize the text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.MatchesClass(tt.ct, tt.instruction); got != tt.want {
				t.Errorf("MatchesClass(%q, %q) = %v, want %v", tt.ct, tt.instruction, got, tt.want)
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `rules:
  - pattern: "deploy|rollout"
    tool: impact_analyzer
  - pattern: "summarize"
    tool: ai_powered_search
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}

	got := rules.Infer("plan the Rollout")
	if !reflect.DeepEqual(got, []models.Tool{models.ToolImpactAnalyzer}) {
		t.Errorf("Infer() = %v, want impact_analyzer (case-insensitive)", got)
	}

	// Loaded tables still fall back to search on no match
	got = rules.Infer("tell me about the architecture")
	if !reflect.DeepEqual(got, []models.Tool{models.ToolSearch}) {
		t.Errorf("Infer() = %v, want default search", got)
	}
}

func TestLoadRules_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown tool", "rules:\n  - pattern: x\n    tool: web_search\n"},
		{"bad pattern", "rules:\n  - pattern: '['\n    tool: ai_powered_search\n"},
		{"no rules", "rules: []\n"},
		{"not yaml", ":\t-- {{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRules(path); err == nil {
				t.Error("LoadRules() error = nil, want failure")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadRules(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("LoadRules() error = nil, want failure")
		}
	})
}
