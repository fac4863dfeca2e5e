// ABOUTME: Page-to-instruction-to-tool assignment
// ABOUTME: Three-tier greedy matching as a pure fold over pages
package core

import (
	"fmt"
	"strings"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// DefaultInstruction is synthesized when a page outlives the instruction pool
const DefaultInstruction = "Analyze this content"

// Assign routes each page to an (instruction, tool) pair in page input
// order. Matching is a fold carrying the remaining instruction pool:
// each successful match consumes its instruction, so de-duplication is
// best effort - with more pages than instructions later pages fall back
// to reuse. Returns the assignments and the unconsumed instructions.
func Assign(rules *RuleSet, pages []models.Page, instructions []string, inferred map[string][]models.Tool) ([]models.Assignment, []string) {
	remaining := make([]string, len(instructions))
	copy(remaining, instructions)

	assignments := make([]models.Assignment, 0, len(pages))
	for _, page := range pages {
		var a models.Assignment
		a, remaining = assignPage(rules, page, remaining, instructions, inferred)
		assignments = append(assignments, a)
	}
	return assignments, remaining
}

// assignPage tries the tiers in order and returns the assignment plus
// the instruction pool with the consumed entry removed
func assignPage(rules *RuleSet, page models.Page, remaining, original []string, inferred map[string][]models.Tool) (models.Assignment, []string) {
	ct := page.ContentType.Normalize()

	// Tier 1: instruction explicitly names this page
	for i, instr := range remaining {
		if !mentionsTitle(instr, page.Title) {
			continue
		}
		tool := pickByContentType(ct, inferred[instr])
		return models.Assignment{
			Page:        page,
			Instruction: instr,
			Tool:        tool,
			Tier:        models.TierExplicitMention,
			Reason:      fmt.Sprintf("%s selected for %s content", tool.Display(), ct),
			Derivation:  fmt.Sprintf("instruction names page %q", page.Title),
		}, removeAt(remaining, i)
	}

	// Tier 2: instruction fits this page's content type, either because
	// its inferred tools include the preferred one or because its text
	// hits the content-type keyword class
	preferred := ct.PreferredTool()
	for i, instr := range remaining {
		classHit := rules.MatchesClass(ct, instr)
		if !classHit && !containsTool(inferred[instr], preferred) {
			continue
		}
		tool := pickByContentType(ct, inferred[instr])
		derivation := fmt.Sprintf("first unused instruction inferring %s", preferred.Display())
		if classHit {
			// Keyword override: content-type keywords in the
			// instruction force the content-type tool
			tool = preferred
			derivation = fmt.Sprintf("instruction keywords match %s content", ct)
		}
		return models.Assignment{
			Page:        page,
			Instruction: instr,
			Tool:        tool,
			Tier:        models.TierContentType,
			Reason:      fmt.Sprintf("%s selected for %s content", tool.Display(), ct),
			Derivation:  derivation,
		}, removeAt(remaining, i)
	}

	// Tier 3: first unused instruction, content-type reasoning dropped
	if len(remaining) > 0 {
		instr := remaining[0]
		tool := firstTool(inferred[instr])
		return models.Assignment{
			Page:        page,
			Instruction: instr,
			Tool:        tool,
			Tier:        models.TierFallback,
			Reason:      fmt.Sprintf("%s is the first tool inferred for the instruction", tool.Display()),
			Derivation:  "no content-type match; first unused instruction taken",
		}, remaining[1:]
	}

	// Tier 4: instruction pool exhausted - reuse the first original
	// instruction or synthesize one
	instr := DefaultInstruction
	derivation := "no instructions remained; synthesized a default"
	if len(original) > 0 {
		instr = original[0]
		derivation = "no instructions remained; reused the first"
	}
	return models.Assignment{
		Page:        page,
		Instruction: instr,
		Tool:        models.ToolSearch,
		Tier:        models.TierSynthetic,
		Reason:      fmt.Sprintf("%s is the default tool", models.ToolSearch.Display()),
		Derivation:  derivation,
	}, remaining
}

// mentionsTitle reports whether the instruction names the page, allowing
// the spaced, snake_case and kebab-case spellings of the title
func mentionsTitle(instruction, title string) bool {
	instr := strings.ToLower(instruction)
	lower := strings.ToLower(title)
	if strings.Contains(instr, lower) {
		return true
	}
	if strings.Contains(instr, strings.ReplaceAll(lower, " ", "_")) {
		return true
	}
	return strings.Contains(instr, strings.ReplaceAll(lower, " ", "-"))
}

// pickByContentType applies the content-type priority table: the type's
// preferred tool when inferred, else the first inferred tool, else search
func pickByContentType(ct models.ContentType, inferred []models.Tool) models.Tool {
	preferred := ct.PreferredTool()
	if containsTool(inferred, preferred) {
		return preferred
	}
	return firstTool(inferred)
}

func firstTool(inferred []models.Tool) models.Tool {
	if len(inferred) > 0 {
		return inferred[0]
	}
	return models.ToolSearch
}

func containsTool(tools []models.Tool, want models.Tool) bool {
	for _, t := range tools {
		if t == want {
			return true
		}
	}
	return false
}

func removeAt(s []string, i int) []string {
	out := make([]string, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
