// ABOUTME: Tests for Tool enumeration
// ABOUTME: Verifies validity checks and display names

package models

import "testing"

func TestTool_IsValid(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
		want bool
	}{
		{"search", ToolSearch, true},
		{"code assistant", ToolCodeAssistant, true},
		{"image insights", ToolImageInsights, true},
		{"video summarizer", ToolVideoSummarizer, true},
		{"impact analyzer", ToolImpactAnalyzer, true},
		{"test support", ToolTestSupport, true},
		{"empty string", Tool(""), false},
		{"unknown tool", Tool("web_search"), false},
		{"close but wrong", Tool("ai_search"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tool.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTool_Constants(t *testing.T) {
	// Verify the wire values of constants
	if ToolSearch != "ai_powered_search" {
		t.Errorf("ToolSearch = %q, want %q", ToolSearch, "ai_powered_search")
	}
	if ToolCodeAssistant != "code_assistant" {
		t.Errorf("ToolCodeAssistant = %q, want %q", ToolCodeAssistant, "code_assistant")
	}
	if ToolImpactAnalyzer != "impact_analyzer" {
		t.Errorf("ToolImpactAnalyzer = %q, want %q", ToolImpactAnalyzer, "impact_analyzer")
	}
}

func TestTool_Display(t *testing.T) {
	if got := ToolSearch.Display(); got != "AI Powered Search" {
		t.Errorf("Display() = %q, want %q", got, "AI Powered Search")
	}
	// Unknown tools fall back to their raw value
	if got := Tool("mystery").Display(); got != "mystery" {
		t.Errorf("Display() = %q, want %q", got, "mystery")
	}
}

func TestAllTools_Complete(t *testing.T) {
	if len(AllTools) != 6 {
		t.Fatalf("AllTools has %d entries, want 6", len(AllTools))
	}
	for _, tool := range AllTools {
		if !tool.IsValid() {
			t.Errorf("AllTools contains invalid tool %q", tool)
		}
	}
}
