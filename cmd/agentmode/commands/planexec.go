// ABOUTME: Plan-only executor for dry runs and keyless MCP serving
// ABOUTME: Answers the content-type oracle locally, refuses dispatches
package commands

import (
	"context"
	"fmt"

	"github.com/GaneshEEE/agentmode/internal/models"
	"github.com/GaneshEEE/agentmode/internal/tools"
)

// planExecutor classifies content types from titles and rejects every
// tool dispatch. Good enough for planning; routing through it records a
// per-assignment error instead of producing output.
type planExecutor struct{}

var errNoExecutor = fmt.Errorf("tool execution unavailable: OPENAI_API_KEY not set")

func (planExecutor) ContentType(ctx context.Context, space, page string) (models.ContentType, error) {
	return tools.DetectContentType(page), nil
}

func (planExecutor) Search(ctx context.Context, space string, pages []string, query string) (*tools.SearchResult, error) {
	return nil, errNoExecutor
}

func (planExecutor) CodeAssistant(ctx context.Context, space, page, instruction string) (*tools.CodeResult, error) {
	return nil, errNoExecutor
}

func (planExecutor) GetImages(ctx context.Context, space, page string) (*tools.ImageList, error) {
	return nil, errNoExecutor
}

func (planExecutor) ImageSummary(ctx context.Context, space, page, imageURL string) (*tools.ImageSummaryResult, error) {
	return nil, errNoExecutor
}

func (planExecutor) VideoSummarizer(ctx context.Context, space, page string) (*tools.VideoSummary, error) {
	return nil, errNoExecutor
}

func (planExecutor) ImpactAnalyzer(ctx context.Context, space, oldPage, newPage, question string) (*tools.ImpactReport, error) {
	return nil, errNoExecutor
}

func (planExecutor) TestSupport(ctx context.Context, space, codePage, testInputPage, question string) (*tools.TestReport, error) {
	return nil, errNoExecutor
}
