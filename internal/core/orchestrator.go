// ABOUTME: Router orchestrates a goal end to end
// ABOUTME: Validate, segment, infer, assign, then dispatch sequentially
package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/GaneshEEE/agentmode/internal/models"
	"github.com/GaneshEEE/agentmode/internal/tools"
)

// Router routes goals to backend tools through an Executor
type Router struct {
	exec  tools.Executor
	rules *RuleSet
}

// NewRouter creates a router. A nil rule set selects the built-in table.
func NewRouter(exec tools.Executor, rules *RuleSet) *Router {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Router{exec: exec, rules: rules}
}

// Plan is the routing decision for a goal before any tool dispatch
type Plan struct {
	Goal         string
	Space        string
	Pages        []models.Page
	Instructions []string
	Inferred     map[string][]models.Tool
	Assignments  []models.Assignment
	Unused       []string
}

// Plan validates the submission and produces assignments without
// dispatching anything. Only the content-type oracle is consulted.
func (r *Router) Plan(ctx context.Context, goal, space string, pages []models.Page) (*Plan, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, models.NewValidationError("goal", "goal cannot be empty")
	}
	if strings.TrimSpace(space) == "" {
		return nil, models.NewValidationError("space", "no space selected")
	}
	if len(pages) == 0 {
		return nil, models.NewValidationError("pages", "no pages selected")
	}

	resolved := make([]models.Page, len(pages))
	for i, page := range pages {
		if page.ContentType.IsValid() {
			resolved[i] = page
			continue
		}
		ct, err := r.exec.ContentType(ctx, space, page.Title)
		if err != nil {
			// Lookup failure defaults to text, never fails the run
			log.Printf("Warning: content type lookup failed for %q: %v", page.Title, err)
			ct = models.ContentText
		}
		resolved[i] = models.NewPage(page.Title, ct)
	}

	instructions := Segment(goal)
	inferred := make(map[string][]models.Tool, len(instructions))
	for _, instr := range instructions {
		inferred[instr] = r.rules.Infer(instr)
	}

	assignments, unused := Assign(r.rules, resolved, instructions, inferred)

	return &Plan{
		Goal:         goal,
		Space:        space,
		Pages:        resolved,
		Instructions: instructions,
		Inferred:     inferred,
		Assignments:  assignments,
		Unused:       unused,
	}, nil
}

// Route plans and executes a goal. Tool dispatches run sequentially in
// page order; a failed dispatch is recorded on its own assignment and
// never discards sibling results. Route errors only on validation.
func (r *Router) Route(ctx context.Context, goal, space string, pages []models.Page) (*models.RouteResult, error) {
	plan, err := r.Plan(ctx, goal, space, pages)
	if err != nil {
		return nil, err
	}

	result := &models.RouteResult{
		Goal:         plan.Goal,
		Space:        plan.Space,
		Instructions: plan.Instructions,
	}

	for _, a := range plan.Assignments {
		output, err := r.dispatch(ctx, plan.Space, a)
		ar := models.AssignmentResult{Assignment: a, Output: output}
		if err != nil {
			ar.Err = err.Error()
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Assignments = append(result.Assignments, ar)
	}

	var notes []string
	if len(plan.Pages) == 2 {
		notes = r.runStandalone(ctx, plan, result)
	}

	result.Reasoning = buildReasoning(plan, result, notes)
	return result, nil
}

// runStandalone handles the two-page special tools: impact analysis with
// the pages as (old, new) and test support with the pages as (code,
// test input), both in selection order. Independent of the per-page
// assignments. Returns reasoning notes for any failures.
func (r *Router) runStandalone(ctx context.Context, plan *Plan, result *models.RouteResult) []string {
	var notes []string

	if instr, ok := firstInstructionFor(plan, models.ToolImpactAnalyzer); ok {
		report, err := r.exec.ImpactAnalyzer(ctx, plan.Space, plan.Pages[0].Title, plan.Pages[1].Title, instr)
		if err != nil {
			notes = append(notes, fmt.Sprintf("Impact Analyzer failed: %v", err))
		} else {
			result.Impact = tools.FormatImpact(report)
		}
	}

	if instr, ok := firstInstructionFor(plan, models.ToolTestSupport); ok {
		report, err := r.exec.TestSupport(ctx, plan.Space, plan.Pages[0].Title, plan.Pages[1].Title, instr)
		if err != nil {
			notes = append(notes, fmt.Sprintf("Test Support failed: %v", err))
		} else {
			result.TestStrategy = tools.FormatTest(report)
		}
	}

	return notes
}

// firstInstructionFor returns the first instruction whose inferred tools
// include the given tool
func firstInstructionFor(plan *Plan, tool models.Tool) (string, bool) {
	for _, instr := range plan.Instructions {
		for _, t := range plan.Inferred[instr] {
			if t == tool {
				return instr, true
			}
		}
	}
	return "", false
}

// dispatch executes one assignment and shapes its display output
func (r *Router) dispatch(ctx context.Context, space string, a models.Assignment) (string, error) {
	switch a.Tool {
	case models.ToolCodeAssistant:
		return r.dispatchCode(ctx, space, a)

	case models.ToolImageInsights:
		images, err := r.exec.GetImages(ctx, space, a.Page.Title)
		if err != nil {
			return "", err
		}
		summaries := make(map[string]string, len(images.Images))
		for _, url := range images.Images {
			summary, err := r.exec.ImageSummary(ctx, space, a.Page.Title, url)
			if err != nil {
				return "", err
			}
			summaries[url] = summary.Summary
		}
		return tools.FormatImages(summaries, images.Images), nil

	case models.ToolVideoSummarizer:
		summary, err := r.exec.VideoSummarizer(ctx, space, a.Page.Title)
		if err != nil {
			return "", err
		}
		return tools.FormatVideo(summary), nil

	default:
		// Search, plus impact/test assignments degraded to search: the
		// two-page tools have no single-page form
		res, err := r.exec.Search(ctx, space, []string{a.Page.Title}, a.Instruction)
		if err != nil {
			return "", err
		}
		return tools.FormatSearch(res), nil
	}
}

// dispatchCode splits a compound request into related actions, primes
// the assistant once for the original code, then executes each action
// through its prompt template
func (r *Router) dispatchCode(ctx context.Context, space string, a models.Assignment) (string, error) {
	primed, err := r.exec.CodeAssistant(ctx, space, a.Page.Title, "")
	if err != nil {
		return "", fmt.Errorf("priming call: %w", err)
	}

	actions := SegmentRelated(a.Instruction)
	if len(actions) == 0 {
		actions = []string{a.Instruction}
	}

	parts := make([]string, 0, len(actions))
	for i, action := range actions {
		kind := DetectAction(action)
		res, err := r.exec.CodeAssistant(ctx, space, a.Page.Title, BuildPrompt(kind, action))
		if err != nil {
			return "", fmt.Errorf("action %q: %w", kind, err)
		}
		if i == 0 {
			res.OriginalCode = primed.OriginalCode
		}
		parts = append(parts, tools.FormatCode(kind.Title(), res))
	}
	return strings.Join(parts, "\n\n"), nil
}

// buildReasoning assembles the human-readable summary: tools triggered,
// why each was used, and how each match was derived
func buildReasoning(plan *Plan, result *models.RouteResult, notes []string) string {
	var b strings.Builder

	b.WriteString("Tools triggered:\n")
	for i, ar := range result.Assignments {
		fmt.Fprintf(&b, "%d. %s -> %s\n", i+1, ar.Assignment.Page.Title, ar.Assignment.Tool.Display())
	}

	b.WriteString("\nWhy used:\n")
	for i, ar := range result.Assignments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ar.Assignment.Reason)
	}

	b.WriteString("\nHow derived:\n")
	for i, ar := range result.Assignments {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ar.Assignment.Derivation)
	}

	if result.Impact != "" {
		b.WriteString("\nImpact Analyzer ran across both selected pages.\n")
	}
	if result.TestStrategy != "" {
		b.WriteString("Test Support ran across both selected pages.\n")
	}
	for _, note := range notes {
		b.WriteString(note)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d of %d page(s) succeeded.", result.Succeeded, len(result.Assignments))
	return b.String()
}
