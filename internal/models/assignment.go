// ABOUTME: Assignment and result types produced by the router
// ABOUTME: Each page gets one (instruction, tool) assignment plus an audit trail
package models

// MatchTier records which matching pass produced an assignment
type MatchTier string

const (
	// TierExplicitMention - instruction text names the page title
	TierExplicitMention MatchTier = "explicit_mention"

	// TierContentType - instruction matched the page's content type
	TierContentType MatchTier = "content_type"

	// TierFallback - first remaining instruction, content type ignored
	TierFallback MatchTier = "fallback"

	// TierSynthetic - no instructions remained, one was reused or synthesized
	TierSynthetic MatchTier = "synthetic"
)

// IsValid reports whether the tier is one of the defined passes
func (m MatchTier) IsValid() bool {
	switch m {
	case TierExplicitMention, TierContentType, TierFallback, TierSynthetic:
		return true
	}
	return false
}

// Assignment is the routed unit of work: one page, one instruction, one tool
type Assignment struct {
	Page        Page      `json:"page"`
	Instruction string    `json:"instruction"`
	Tool        Tool      `json:"tool"`
	Tier        MatchTier `json:"tier"`

	// Reason explains why the tool was used, Derivation how the match
	// was derived; together they feed the reasoning summary
	Reason     string `json:"reason"`
	Derivation string `json:"derivation"`
}

// AssignmentResult pairs an assignment with its execution outcome.
// A failed dispatch records Err without discarding sibling results.
type AssignmentResult struct {
	Assignment Assignment `json:"assignment"`
	Output     string     `json:"output,omitempty"`
	Err        string     `json:"error,omitempty"`
}

// Failed reports whether this assignment's dispatch errored
func (r AssignmentResult) Failed() bool {
	return r.Err != ""
}

// RouteResult is the complete outcome of routing one goal
type RouteResult struct {
	Goal         string             `json:"goal"`
	Space        string             `json:"space"`
	Instructions []string           `json:"instructions"`
	Assignments  []AssignmentResult `json:"assignments"`

	// Standalone two-page blocks, present only when exactly two pages
	// were selected and the goal asked for them
	Impact       string `json:"impact,omitempty"`
	TestStrategy string `json:"test_strategy,omitempty"`

	Reasoning string `json:"reasoning"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// Complete reports whether every assignment dispatched successfully
func (r *RouteResult) Complete() bool {
	return r.Failed == 0
}
