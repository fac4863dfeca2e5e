// ABOUTME: Executor interface over the backend AI tool collaborators
// ABOUTME: One operation per tool plus the content-type oracle
package tools

import (
	"context"

	"github.com/GaneshEEE/agentmode/internal/models"
)

// SearchResult is the AI powered search response
type SearchResult struct {
	Response string `json:"response"`
}

// CodeResult is the code assistant response. Original is populated by a
// zero-instruction priming call; Modified or Converted by a real one.
type CodeResult struct {
	OriginalCode  string `json:"original_code,omitempty"`
	ModifiedCode  string `json:"modified_code,omitempty"`
	ConvertedCode string `json:"converted_code,omitempty"`
}

// ImageList is the set of image URLs found on a page
type ImageList struct {
	Images []string `json:"images"`
}

// ImageSummaryResult is one image's summary
type ImageSummaryResult struct {
	Summary string `json:"summary"`
}

// VideoSummary is the video summarizer response
type VideoSummary struct {
	Summary    string   `json:"summary"`
	Quotes     []string `json:"quotes"`
	Timestamps []string `json:"timestamps"`
	QA         string   `json:"qa"`
}

// ImpactReport is the two-page impact analyzer response
type ImpactReport struct {
	LinesAdded       int     `json:"lines_added"`
	LinesRemoved     int     `json:"lines_removed"`
	FilesChanged     int     `json:"files_changed"`
	PercentageChange float64 `json:"percentage_change"`
	RiskLevel        string  `json:"risk_level"`
	RiskScore        float64 `json:"risk_score"`
	Diff             string  `json:"diff"`
	Analysis         string  `json:"impact_analysis"`
}

// TestReport is the two-page test support response
type TestReport struct {
	Strategy string `json:"test_strategy"`
}

// Executor is the surface the router dispatches to. Implementations are
// collaborators: the router owns none of their semantics.
type Executor interface {
	// ContentType is the content-type oracle; callers treat a failed
	// lookup as text
	ContentType(ctx context.Context, space, page string) (models.ContentType, error)

	Search(ctx context.Context, space string, pages []string, query string) (*SearchResult, error)

	// CodeAssistant with an empty instruction is a priming call that
	// returns the page's original code
	CodeAssistant(ctx context.Context, space, page, instruction string) (*CodeResult, error)

	GetImages(ctx context.Context, space, page string) (*ImageList, error)
	ImageSummary(ctx context.Context, space, page, imageURL string) (*ImageSummaryResult, error)
	VideoSummarizer(ctx context.Context, space, page string) (*VideoSummary, error)

	ImpactAnalyzer(ctx context.Context, space, oldPage, newPage, question string) (*ImpactReport, error)
	TestSupport(ctx context.Context, space, codePage, testInputPage, question string) (*TestReport, error)
}
