// ABOUTME: Code-assistant action detection and prompt templates
// ABOUTME: Rewrites routed instructions into tool-specific prompts
package core

import "regexp"

// Action is the detected kind of code-assistant request
type Action string

const (
	ActionOptimize  Action = "optimize"
	ActionFixBugs   Action = "fix_bugs"
	ActionRefactor  Action = "refactor"
	ActionDocument  Action = "document"
	ActionDeadCode  Action = "dead_code"
	ActionLogging   Action = "logging"
	ActionConvert   Action = "convert"
	ActionDebug     Action = "debug"
	ActionGeneral   Action = "general"
)

// actionRule pairs a detection pattern with an action kind; evaluated in
// order, first hit wins
type actionRule struct {
	pattern *regexp.Regexp
	action  Action
}

var actionRules = []actionRule{
	{regexp.MustCompile(`(?i)dead\s*code|unused`), ActionDeadCode},
	{regexp.MustCompile(`(?i)logg?ing|log\s+statements`), ActionLogging},
	{regexp.MustCompile(`(?i)convert|translate|port\b`), ActionConvert},
	{regexp.MustCompile(`(?i)debug`), ActionDebug},
	{regexp.MustCompile(`(?i)optimi[sz]e|performance|faster|speed`), ActionOptimize},
	{regexp.MustCompile(`(?i)fix|bug|error|broken`), ActionFixBugs},
	{regexp.MustCompile(`(?i)refactor|clean\s*up|restructure`), ActionRefactor},
	{regexp.MustCompile(`(?i)document|comment|docstring`), ActionDocument},
}

// DetectAction classifies a code-assistant instruction
func DetectAction(instruction string) Action {
	for _, rule := range actionRules {
		if rule.pattern.MatchString(instruction) {
			return rule.action
		}
	}
	return ActionGeneral
}

// Title returns the display heading for an action
func (a Action) Title() string {
	switch a {
	case ActionOptimize:
		return "Optimize Performance"
	case ActionFixBugs:
		return "Fix Bugs"
	case ActionRefactor:
		return "Refactor Code"
	case ActionDocument:
		return "Add Documentation"
	case ActionDeadCode:
		return "Remove Dead Code"
	case ActionLogging:
		return "Add Logging"
	case ActionConvert:
		return "Convert Language"
	case ActionDebug:
		return "Debug Code"
	}
	return "Code Assistance"
}

// prompt templates keyed by action; the instruction is appended so the
// backend sees both the canonical task and the user's own wording
var actionPrompts = map[Action]string{
	ActionOptimize: "Optimize Performance: improve the time and memory profile of this code without changing its behavior.",
	ActionFixBugs:  "Fix Bugs: find and correct defects in this code, explaining each fix.",
	ActionRefactor: "Refactor Code: restructure this code for clarity and maintainability without changing its behavior.",
	ActionDocument: "Add Documentation: add concise documentation comments to this code.",
	ActionDeadCode: "Remove Dead Code: delete unreachable and unused code, listing what was removed.",
	ActionLogging:  "Add Logging: add structured log statements at the important code paths.",
	ActionConvert:  "Convert Language: translate this code to the requested target language, preserving behavior.",
	ActionDebug:    "Debug Code: trace the reported misbehavior to its cause and propose the fix.",
	ActionGeneral:  "Code Assistance: apply the requested change to this code.",
}

// BuildPrompt rewrites an instruction into the prompt template for its
// detected action
func BuildPrompt(action Action, instruction string) string {
	return actionPrompts[action] + "\n\nUser request: " + instruction
}
