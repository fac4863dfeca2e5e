// ABOUTME: Goal segmentation for the Agent Mode router
// ABOUTME: Splits a free-form goal into actionable instruction fragments
package core

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minInstructionLen is the shortest trimmed fragment kept as an instruction
const minInstructionLen = 3

var (
	// Separators between instructions: "and"/"then" as whole words,
	// line breaks, double pipe, pipe-then-space, or sentence punctuation.
	// Punctuation only separates before whitespace or end of input so
	// that filenames like auth.py survive intact.
	separatorPattern = regexp.MustCompile(`(?i)\band\b|\bthen\b|\r\n|[\r\n]|\|\||\|\s+|[.;,](?:\s+|$)`)

	// relatedPattern splits compound code-assistant requests
	relatedPattern = regexp.MustCompile(`(?i)\band\b|\bthen\b|;`)
)

// Segment splits a goal into instructions. Single-intent goals are
// returned whole so the instruction keeps its full context. Non-empty
// input always yields at least one instruction.
func Segment(goal string) []string {
	trimmed := strings.TrimSpace(goal)
	if trimmed == "" {
		return nil
	}

	parts := separatorPattern.Split(trimmed, -1)
	instructions := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) <= minInstructionLen {
			continue
		}
		instructions = append(instructions, part)
	}

	if len(instructions) <= 1 {
		return []string{trimmed}
	}
	return instructions
}

// SegmentRelated splits a compound instruction into related actions,
// e.g. "optimize and document" into two. Used on the code-assistant path.
func SegmentRelated(instruction string) []string {
	parts := relatedPattern.Split(instruction, -1)
	actions := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		actions = append(actions, part)
	}
	return actions
}
