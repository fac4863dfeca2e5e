// ABOUTME: Tests for code-assistant action detection and prompt building
// ABOUTME: Verifies detection order and template rewriting

package core

import (
	"strings"
	"testing"
)

func TestDetectAction(t *testing.T) {
	tests := []struct {
		instruction string
		want        Action
	}{
		{"optimize the hot loop", ActionOptimize},
		{"make this faster", ActionOptimize},
		{"fix the crash on login", ActionFixBugs},
		{"there is a bug in the parser", ActionFixBugs},
		{"refactor the session helpers", ActionRefactor},
		{"clean up this module", ActionRefactor},
		{"document the public API", ActionDocument},
		{"remove dead code from utils", ActionDeadCode},
		{"add logging to the retry path", ActionLogging},
		{"convert this to Rust", ActionConvert},
		{"debug the flaky handler", ActionDebug},
		{"tidy the imports", ActionGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.instruction, func(t *testing.T) {
			if got := DetectAction(tt.instruction); got != tt.want {
				t.Errorf("DetectAction(%q) = %q, want %q", tt.instruction, got, tt.want)
			}
		})
	}
}

func TestDetectAction_SpecificBeforeGeneric(t *testing.T) {
	// "remove dead code and fix bugs" must detect dead code, not fix:
	// the dead-code rule is evaluated first
	if got := DetectAction("remove dead code and fix style"); got != ActionDeadCode {
		t.Errorf("DetectAction() = %q, want %q", got, ActionDeadCode)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(ActionOptimize, "optimize the hot loop")
	if !strings.HasPrefix(prompt, "Optimize Performance:") {
		t.Errorf("prompt = %q, want Optimize Performance template", prompt)
	}
	if !strings.Contains(prompt, "User request: optimize the hot loop") {
		t.Errorf("prompt missing the original wording: %q", prompt)
	}
}

func TestActionTitles(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionOptimize, "Optimize Performance"},
		{ActionFixBugs, "Fix Bugs"},
		{ActionConvert, "Convert Language"},
		{ActionGeneral, "Code Assistance"},
	}
	for _, tt := range tests {
		if got := tt.action.Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}
