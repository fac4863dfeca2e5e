// ABOUTME: Tool enumeration for the Agent Mode router
// ABOUTME: Defines the fixed set of backend AI tools goals can route to
package models

// Tool identifies one of the backend AI capabilities
type Tool string

const (
	// ToolSearch - AI powered search over page text
	ToolSearch Tool = "ai_powered_search"

	// ToolCodeAssistant - code modification (optimize, fix, refactor, ...)
	ToolCodeAssistant Tool = "code_assistant"

	// ToolImageInsights - chart/diagram/image summarization
	ToolImageInsights Tool = "image_insights"

	// ToolVideoSummarizer - video summary, quotes and timestamps
	ToolVideoSummarizer Tool = "video_summarizer"

	// ToolImpactAnalyzer - two-page change/impact analysis
	ToolImpactAnalyzer Tool = "impact_analyzer"

	// ToolTestSupport - two-page test strategy generation
	ToolTestSupport Tool = "test_support"
)

// AllTools lists every routable tool in display order
var AllTools = []Tool{
	ToolSearch,
	ToolCodeAssistant,
	ToolImageInsights,
	ToolVideoSummarizer,
	ToolImpactAnalyzer,
	ToolTestSupport,
}

// IsValid reports whether the tool is one of the known capabilities
func (t Tool) IsValid() bool {
	switch t {
	case ToolSearch, ToolCodeAssistant, ToolImageInsights,
		ToolVideoSummarizer, ToolImpactAnalyzer, ToolTestSupport:
		return true
	}
	return false
}

// Display returns a human-readable tool name for summaries and tab titles
func (t Tool) Display() string {
	switch t {
	case ToolSearch:
		return "AI Powered Search"
	case ToolCodeAssistant:
		return "Code Assistant"
	case ToolImageInsights:
		return "Image Insights"
	case ToolVideoSummarizer:
		return "Video Summarizer"
	case ToolImpactAnalyzer:
		return "Impact Analyzer"
	case ToolTestSupport:
		return "Test Support"
	}
	return string(t)
}
